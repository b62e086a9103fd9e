package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/essgate/internal/db"
	"github.com/terraincognita07/essgate/internal/secrets"
	"github.com/terraincognita07/essgate/internal/services"
	"github.com/terraincognita07/essgate/internal/session"
)

func TestGenerateTemporaryPasswordMinimumLength(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("generateTemporaryPassword minimum len = %d, want 8", len(password))
	}
}

func TestGenerateTemporaryPasswordAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	password, err := generateTemporaryPassword(24)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 24 {
		t.Fatalf("generateTemporaryPassword len = %d, want 24", len(password))
	}

	for _, char := range password {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
}

type adminTestEnv struct {
	mobile    *services.MobileAuthService
	directory *services.DirectoryService
}

func newAdminTestEnv(t *testing.T) *adminTestEnv {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "essgate-cli.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("load sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	box, err := secrets.NewBox([]byte("cli-test-secret-key-0123456789abcdef"))
	if err != nil {
		t.Fatalf("create secret box: %v", err)
	}
	sessions, err := session.NewManager([]byte("cli-test-session-key-0123456789abcd"), time.Hour)
	if err != nil {
		t.Fatalf("create session manager: %v", err)
	}

	store := db.NewServiceStore(database)
	env := &adminTestEnv{
		mobile: services.NewMobileAuthService(services.MobileAuthDependencies{
			Store:    store,
			Box:      box,
			Sessions: sessions,
		}),
		directory: services.NewDirectoryService(store, box),
	}

	ctx := context.Background()
	var out bytes.Buffer
	if err := RunCreateAccount(ctx, env.directory, strings.NewReader(""), &out, services.CreateAccountInput{
		Username: "jdoe",
		Email:    "jdoe@example.com",
	}, false); err != nil {
		t.Fatalf("create account: %v", err)
	}
	if err := RunCreateEmployee(ctx, env.directory, strings.NewReader("pin-4821\npin-4821\n"), &out, services.CreateEmployeeInput{
		ID:              "HR-EMP-00001",
		AccountUsername: "jdoe",
		AllowESS:        true,
	}, true); err != nil {
		t.Fatalf("create employee: %v", err)
	}
	return env
}

func (env *adminTestEnv) login(t *testing.T, password string, deviceID string) services.Result {
	t.Helper()
	return env.mobile.Login(context.Background(), services.LoginInput{
		Identifier:  "jdoe",
		AppPassword: password,
		DeviceID:    deviceID,
	})
}

func TestRunCreateEmployeePromptsForAppPassword(t *testing.T) {
	env := newAdminTestEnv(t)

	result := env.login(t, "pin-4821", "device-A")
	if !result.Success {
		t.Fatalf("expected prompted app password to work, got %q", result.Message)
	}
}

func TestRunCreateAccountRejectsDuplicates(t *testing.T) {
	env := newAdminTestEnv(t)

	var out bytes.Buffer
	err := RunCreateAccount(context.Background(), env.directory, strings.NewReader(""), &out, services.CreateAccountInput{
		Username: "jdoe",
		Email:    "other@example.com",
	}, false)
	if !errors.Is(err, services.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRunSetAppPasswordGenerateForcesReset(t *testing.T) {
	env := newAdminTestEnv(t)

	var out bytes.Buffer
	err := RunSetAppPassword(context.Background(), env.mobile, strings.NewReader(""), &out, SetAppPasswordOptions{
		EmployeeID: "HR-EMP-00001",
		Generate:   true,
	})
	if err != nil {
		t.Fatalf("RunSetAppPassword() error = %v", err)
	}

	temporaryPassword := ""
	for _, line := range strings.Split(out.String(), "\n") {
		if value, ok := strings.CutPrefix(line, "Temporary password: "); ok {
			temporaryPassword = value
		}
	}
	if len(temporaryPassword) != 12 {
		t.Fatalf("expected a 12-character temporary password in output, got %q", out.String())
	}

	result := env.login(t, temporaryPassword, "device-A")
	if !result.Success {
		t.Fatalf("expected temporary password to work, got %q", result.Message)
	}
	if !result.Data.RequirePasswordReset {
		t.Fatal("expected generated password to require a reset")
	}
}

func TestRunSetAppPasswordPrompt(t *testing.T) {
	env := newAdminTestEnv(t)

	var out bytes.Buffer
	err := RunSetAppPassword(context.Background(), env.mobile, strings.NewReader("pin-7777\npin-7777\n"), &out, SetAppPasswordOptions{
		EmployeeID: "HR-EMP-00001",
	})
	if err != nil {
		t.Fatalf("RunSetAppPassword() error = %v", err)
	}
	if strings.Contains(out.String(), "pin-7777") {
		t.Fatal("expected prompted password not to be printed")
	}

	result := env.login(t, "pin-7777", "device-A")
	if !result.Success || result.Data.RequirePasswordReset {
		t.Fatalf("expected prompted password without reset flag, got %+v", result)
	}
}

func TestRunSetAppPasswordRejectsMismatchAndConflictingFlags(t *testing.T) {
	env := newAdminTestEnv(t)
	var out bytes.Buffer

	err := RunSetAppPassword(context.Background(), env.mobile, strings.NewReader("pin-1\npin-2\n"), &out, SetAppPasswordOptions{
		EmployeeID: "HR-EMP-00001",
	})
	if !errors.Is(err, errPasswordMismatch) {
		t.Fatalf("expected errPasswordMismatch, got %v", err)
	}

	err = RunSetAppPassword(context.Background(), env.mobile, strings.NewReader(""), &out, SetAppPasswordOptions{
		EmployeeID: "HR-EMP-00001",
		Password:   "pin-1",
		Generate:   true,
	})
	if err == nil {
		t.Fatal("expected --generate with --password to fail")
	}

	err = RunSetAppPassword(context.Background(), env.mobile, strings.NewReader(""), &out, SetAppPasswordOptions{
		EmployeeID: "HR-EMP-99999",
		Password:   "pin-1",
	})
	if err == nil {
		t.Fatal("expected unknown employee to fail")
	}
}

func TestRunResetDevice(t *testing.T) {
	env := newAdminTestEnv(t)

	if result := env.login(t, "pin-4821", "device-A"); !result.Success {
		t.Fatalf("first login failed: %q", result.Message)
	}
	if result := env.login(t, "pin-4821", "device-B"); result.Success {
		t.Fatal("expected second device to be refused before reset")
	}

	var out bytes.Buffer
	if err := RunResetDevice(context.Background(), env.mobile, &out, "HR-EMP-00001"); err != nil {
		t.Fatalf("RunResetDevice() error = %v", err)
	}
	if !strings.Contains(out.String(), "HR-EMP-00001") {
		t.Fatalf("unexpected output %q", out.String())
	}

	if result := env.login(t, "pin-4821", "device-B"); !result.Success {
		t.Fatalf("expected new device after reset, got %q", result.Message)
	}

	if err := RunResetDevice(context.Background(), env.mobile, &out, "HR-EMP-99999"); err == nil {
		t.Fatal("expected unknown employee to fail")
	}
	if err := RunResetDevice(context.Background(), env.mobile, &out, " "); err == nil {
		t.Fatal("expected blank employee id to fail")
	}
}
