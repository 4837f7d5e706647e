package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Register(ctx context.Context) error {
	s.calls = append(s.calls, "register")
	return nil
}

func (s *stubExec) Login(ctx context.Context) error {
	s.calls = append(s.calls, "login")
	return nil
}

func (s *stubExec) Logout(ctx context.Context) error {
	s.calls = append(s.calls, "logout")
	return nil
}

func (s *stubExec) AddVital(ctx context.Context) error {
	s.calls = append(s.calls, "add")
	return nil
}

func (s *stubExec) List(ctx context.Context) error {
	s.calls = append(s.calls, "list")
	return nil
}

func (s *stubExec) Export(ctx context.Context, path string) error {
	s.calls = append(s.calls, "export:"+path)
	return nil
}

func (s *stubExec) Sync(ctx context.Context) error {
	s.calls = append(s.calls, "sync")
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()

	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(t *testing.T, exec *stubExec, script string) []string {
	t.Helper()

	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "(sin sesión)" }, scanner)
	return *lines
}

func TestREPLDispatch(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "register\nlogin\nadd\nl\nlist\nsync\nlogout\nexit\n")

	assert.Equal(t, []string{"register", "login", "add", "list", "list", "sync", "logout"}, exec.calls)
}

func TestREPLExportPath(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "export\nexport datos.csv\nquit\n")

	assert.Equal(t, []string{"export:", "export:datos.csv"}, exec.calls)
}

func TestREPLUnknownCommand(t *testing.T) {
	exec := &stubExec{}
	out := runScript(t, exec, "frobnicate\nexit\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestREPLBlankLinesIgnored(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "\n   \nsync\nexit\n")

	assert.Equal(t, []string{"sync"}, exec.calls)
}

func TestREPLHelpDependsOnSession(t *testing.T) {
	out := runScript(t, &stubExec{}, "help\nexit\n")
	assert.Contains(t, out, "Available commands: register, login, exit")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, out, "Available commands: add, (l)ist, export [path], sync, logout, exit")
}

func TestREPLExitsOnEOF(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "sync\n")

	assert.Equal(t, []string{"sync"}, exec.calls)
}
