// Package services contains application services for the Menacor Vital
// client: account handling, vital-sign bookkeeping and the outbox sync
// driver. Services own validation and the outbox append; repositories stay
// dumb storage.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/outbox"
	"github.com/RichiMaiden/menacor-vital/internal/client/repositories/users"
	"github.com/RichiMaiden/menacor-vital/internal/common"
)

// RegisterInput carries the raw registration form fields. Optional fields
// may be empty; the service maps them to NULL.
type RegisterInput struct {
	Username  string
	Password  string
	FullName  string
	Birthdate string
	Email     string
}

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Register: validate, insert locally, append the replication entry.
//     Missing/malformed fields surface as *common.ValidationError with one
//     message per problem; a taken username surfaces as common.ErrDuplicateUser.
//   - Login: exact username+password match against the local store;
//     common.ErrNotFound on a miss. Passwords are stored and compared in
//     plain text — existing behavior of the system being reimplemented,
//     kept deliberately (see DESIGN.md).
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (int64, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
}

type authService struct {
	users  users.Repository
	outbox outbox.Repository
}

// NewAuthService constructs an AuthService over the given repositories.
func NewAuthService(users users.Repository, outbox outbox.Repository) AuthService {
	return &authService{users: users, outbox: outbox}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (int64, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Password = strings.TrimSpace(in.Password)
	in.Birthdate = strings.TrimSpace(in.Birthdate)

	var msgs []string
	if in.Username == "" {
		msgs = append(msgs, "usuario es obligatorio")
	}
	if in.Password == "" {
		msgs = append(msgs, "contraseña es obligatoria")
	}
	switch {
	case in.Birthdate == "":
		msgs = append(msgs, "fecha de nacimiento es obligatoria")
	case !models.ValidISODate(in.Birthdate):
		msgs = append(msgs, "fecha inválida, usa AAAA-MM-DD")
	}
	if err := common.NewValidationError(msgs); err != nil {
		return 0, err
	}

	user := &models.User{
		Username:  in.Username,
		Password:  in.Password,
		FullName:  models.OptionalString(in.FullName),
		Birthdate: in.Birthdate,
		Email:     models.OptionalString(in.Email),
	}

	// Duplicate detection rides on the unique constraint inside Create;
	// there is intentionally no existence pre-check.
	id, err := s.users.Create(ctx, user)
	if err != nil {
		return 0, err
	}

	payload, err := models.EncodePayload(models.UserPayload{
		Username:  user.Username,
		Password:  user.Password,
		FullName:  user.FullName,
		Birthdate: user.Birthdate,
		Email:     user.Email,
	})
	if err != nil {
		return 0, err
	}

	// The insert above and this append are separate commits. A crash in
	// between leaves the account local-only forever; accepted durability
	// tier for this application.
	if _, err := s.outbox.Enqueue(ctx, models.EntityKindUser, id, models.ActionCreate, payload); err != nil {
		return 0, fmt.Errorf("enqueue user replication: %w", err)
	}

	return id, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	return s.users.GetByCredentials(ctx, strings.TrimSpace(username), strings.TrimSpace(password))
}
