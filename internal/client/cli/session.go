package cli

import "github.com/RichiMaiden/menacor-vital/internal/client/models"

// Session is the explicit login state held by the App: populated on login,
// cleared on logout. There is deliberately no package-level current user.
type Session struct {
	user *models.User
}

func (s *Session) LoggedIn() bool { return s.user != nil }

func (s *Session) User() *models.User { return s.user }

func (s *Session) Username() string {
	if s.user == nil {
		return ""
	}
	return s.user.Username
}

func (s *Session) Begin(u *models.User) { s.user = u }

func (s *Session) End() { s.user = nil }
