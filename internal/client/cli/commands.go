package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/RichiMaiden/menacor-vital/internal/client/models"
	"github.com/RichiMaiden/menacor-vital/internal/client/services"
	"github.com/RichiMaiden/menacor-vital/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

const defaultExportFile = "historial_vital.csv"

// Register prompts for the registration form, creates the account locally
// and — matching the original UI flow — logs the new user in and triggers a
// best-effort sync.
//
// Validation problems are shown as a message list; a taken username gets its
// own message. Neither is treated as a program error.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Usuario", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Nombre completo (opcional)", os.Stdout)
	if err != nil {
		return err
	}
	birthdate, err := getTextWithDefault(a.reader, "Fecha de nacimiento (AAAA-MM-DD)", today(), os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email (opcional)", os.Stdout)
	if err != nil {
		return err
	}

	id, err := a.authService.Register(ctx, services.RegisterInput{
		Username:  username,
		Password:  password,
		FullName:  fullName,
		Birthdate: birthdate,
		Email:     email,
	})
	if err != nil {
		var ve *common.ValidationError
		switch {
		case errors.As(err, &ve):
			for _, msg := range ve.Messages {
				printlnFn("•", msg)
			}
			return nil
		case errors.Is(err, common.ErrDuplicateUser):
			printlnFn("El nombre de usuario ya existe. Elegí otro.")
			return nil
		default:
			printlnFn("Error al registrar:", err)
			return err
		}
	}

	printlnFn(fmt.Sprintf("Usuario creado (id=%d).", id))

	user, err := a.authService.Login(ctx, username, password)
	if err == nil {
		a.session.Begin(user)
		printlnFn("Sesión iniciada.")
	}

	a.syncAndReport(ctx)
	return nil
}

// Login prompts for credentials and authenticates against the local store.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Usuario", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Credenciales inválidas.")
			return nil
		}
		printlnFn("Error:", err)
		return err
	}

	a.session.Begin(user)
	printlnFn("Bienvenido,", user.Username)
	return nil
}

// Logout clears the session. Local data stays on disk.
func (a *App) Logout(ctx context.Context) error {
	a.session.End()
	printlnFn("Sesión cerrada.")
	return nil
}

// AddVital prompts for one reading and saves it. Unparseable pressure or
// glucose input is kept as empty values rather than rejected, so a reading
// that is just a note still lands. A best-effort sync follows the save.
func (a *App) AddVital(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	date, err := getTextWithDefault(a.reader, "Fecha (AAAA-MM-DD)", today(), os.Stdout)
	if err != nil {
		return err
	}
	pressure, err := getSimpleText(a.reader, "Presión (ej. 120/80)", os.Stdout)
	if err != nil {
		return err
	}
	glucose, err := getSimpleText(a.reader, "Glucosa (mg/dL)", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := getSimpleText(a.reader, "Notas", os.Stdout)
	if err != nil {
		return err
	}

	id, err := a.vitalService.Add(ctx, a.session.User(), date, pressure, glucose, notes)
	if err != nil {
		printlnFn("Error al guardar:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Dato guardado localmente (id=%d). Sincronizando...", id))
	a.syncAndReport(ctx)
	return nil
}

// List prints the reading history, newest first.
func (a *App) List(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	rows, err := a.vitalService.List(ctx, a.session.User().ID)
	if err != nil {
		printlnFn("Error:", err)
		return err
	}
	if len(rows) == 0 {
		printlnFn("Sin registros todavía.")
		return nil
	}
	for _, v := range rows {
		printlnFn(formatVital(v))
	}
	return nil
}

// Export writes the CSV history to path (default historial_vital.csv).
func (a *App) Export(ctx context.Context, path string) error {
	if !a.requireLogin() {
		return nil
	}
	if path == "" {
		path = defaultExportFile
	}

	f, err := os.Create(path)
	if err != nil {
		printlnFn("Error al guardar:", err)
		return err
	}
	defer f.Close()

	if err := a.vitalService.ExportCSV(ctx, a.session.User().ID, f); err != nil {
		printlnFn("Error al exportar:", err)
		return err
	}

	printlnFn("CSV guardado en", path)
	return nil
}

// Sync pushes pending records to the backend on explicit user request.
func (a *App) Sync(ctx context.Context) error {
	a.syncAndReport(ctx)
	return nil
}

func (a *App) syncAndReport(ctx context.Context) {
	n := a.syncService.SyncIfPossible(ctx)
	if n > 0 {
		printlnFn(fmt.Sprintf("Sincronizados %d registros.", n))
	} else {
		printlnFn("Nada sincronizado (¿backend accesible?).")
	}
}

func (a *App) requireLogin() bool {
	if a.session.LoggedIn() {
		return true
	}
	printlnFn("Debes iniciar sesión primero.")
	return false
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// formatVital renders one history line, skipping absent measurements the way
// the original card view did.
func formatVital(v models.Vital) string {
	s := v.Date
	if v.Systolic != nil {
		s += fmt.Sprintf("  PA: %d", *v.Systolic)
		if v.Diastolic != nil {
			s += fmt.Sprintf("/%d", *v.Diastolic)
		}
	}
	if v.Glucose != nil {
		s += fmt.Sprintf("  Glucosa: %g mg/dL", *v.Glucose)
	}
	if v.Notes != nil {
		s += "  Notas: " + *v.Notes
	}
	return s
}
