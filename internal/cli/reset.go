package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/essgate/internal/models"
	"github.com/terraincognita07/essgate/internal/security"
	"github.com/terraincognita07/essgate/internal/services"
)

// OperatorUsername is recorded as the actor for changes made from the CLI.
const OperatorUsername = "essgate-cli"

// MobileAdmin is the subset of the mobile auth service the admin commands use.
type MobileAdmin interface {
	ResetDeviceID(ctx context.Context, session services.SessionContext, employeeID string) services.Result
	SetAppPassword(ctx context.Context, session services.SessionContext, employeeID string, newPassword string, requireReset bool) services.Result
}

type SetAppPasswordOptions struct {
	EmployeeID string
	Password   string
	// Generate creates a random temporary password and forces a reset on
	// the next mobile login.
	Generate bool
}

func operatorSession() services.SessionContext {
	return services.SessionContext{Username: OperatorUsername, Role: models.RoleSystemManager}
}

func RunResetDevice(ctx context.Context, mobile MobileAdmin, out io.Writer, employeeID string) error {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return errors.New("employee id is required")
	}

	result := mobile.ResetDeviceID(ctx, operatorSession(), employeeID)
	if !result.Success {
		return fmt.Errorf("reset device for %s: %s", employeeID, result.Message)
	}

	fmt.Fprintf(out, "Device binding cleared for %s\n", employeeID)
	fmt.Fprintln(out, "The next mobile login registers a new device.")
	return nil
}

func RunSetAppPassword(ctx context.Context, mobile MobileAdmin, in io.Reader, out io.Writer, options SetAppPasswordOptions) error {
	employeeID := strings.TrimSpace(options.EmployeeID)
	if employeeID == "" {
		return errors.New("employee id is required")
	}
	if options.Generate && options.Password != "" {
		return errors.New("--generate and --password are mutually exclusive")
	}

	password := options.Password
	requireReset := false
	switch {
	case options.Generate:
		temporaryPassword, err := generateTemporaryPassword(12)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}
		password = temporaryPassword
		requireReset = true
	case password == "":
		prompted, err := promptNewPassword(in, out, "App password")
		if err != nil {
			return err
		}
		password = prompted
	}

	result := mobile.SetAppPassword(ctx, operatorSession(), employeeID, password, requireReset)
	if !result.Success {
		return fmt.Errorf("set app password for %s: %s", employeeID, result.Message)
	}

	fmt.Fprintf(out, "App password updated for %s\n", employeeID)
	if requireReset {
		fmt.Fprintf(out, "Temporary password: %s\n", password)
		fmt.Fprintln(out, "Employee must reset the password after the next mobile login.")
	}
	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
