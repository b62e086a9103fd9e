package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/terraincognita07/essgate/internal/models"
	"github.com/terraincognita07/essgate/internal/services"
)

// Directory provisions accounts and employees.
type Directory interface {
	CreateAccount(ctx context.Context, input services.CreateAccountInput) (models.Account, error)
	CreateEmployee(ctx context.Context, input services.CreateEmployeeInput) (models.Employee, error)
}

// RunCreateAccount creates an account. With promptPassword set the console
// password is read from in.
func RunCreateAccount(ctx context.Context, directory Directory, in io.Reader, out io.Writer, input services.CreateAccountInput, promptPassword bool) error {
	if promptPassword && input.Password == "" {
		password, err := promptNewPassword(in, out, "Console password")
		if err != nil {
			return err
		}
		input.Password = password
	}

	account, err := directory.CreateAccount(ctx, input)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	fmt.Fprintf(out, "Account %s created (role: %s)\n", account.Username, account.Role)
	return nil
}

// RunCreateEmployee creates the employee record linked to an existing
// account. With promptPassword set the app password is read from in.
func RunCreateEmployee(ctx context.Context, directory Directory, in io.Reader, out io.Writer, input services.CreateEmployeeInput, promptPassword bool) error {
	if promptPassword && input.AppPassword == "" {
		password, err := promptNewPassword(in, out, "App password")
		if err != nil {
			return err
		}
		input.AppPassword = password
	}

	employee, err := directory.CreateEmployee(ctx, input)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}

	fmt.Fprintf(out, "Employee %s created for %s\n", employee.ID, employee.AccountUsername)
	if !employee.AllowESS {
		fmt.Fprintln(out, "Self service is disabled; pass --allow-ess to enable mobile login.")
	}
	return nil
}
