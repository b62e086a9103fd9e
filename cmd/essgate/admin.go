package main

import (
	"github.com/spf13/cobra"
	"github.com/terraincognita07/essgate/internal/cli"
	"github.com/terraincognita07/essgate/internal/services"
)

func newCreateAccountCommand() *cobra.Command {
	input := services.CreateAccountInput{}
	var withPassword bool

	cmd := &cobra.Command{
		Use:   "create-account",
		Short: "Create a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openEnvironment(cmd)
			if err != nil {
				return err
			}
			defer rt.close()
			return cli.RunCreateAccount(cmd.Context(), rt.directory, cmd.InOrStdin(), cmd.OutOrStdout(), input, withPassword)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Username, "username", "", "account username")
	flags.StringVar(&input.Email, "email", "", "account email")
	flags.StringVar(&input.FullName, "full-name", "", "display name")
	flags.StringVar(&input.Role, "role", "", "employee, hr_manager or system_manager (default employee)")
	flags.BoolVar(&withPassword, "with-password", false, "prompt for a console password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newCreateEmployeeCommand() *cobra.Command {
	input := services.CreateEmployeeInput{}
	var promptPassword bool

	cmd := &cobra.Command{
		Use:   "create-employee",
		Short: "Create the employee record for an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openEnvironment(cmd)
			if err != nil {
				return err
			}
			defer rt.close()
			return cli.RunCreateEmployee(cmd.Context(), rt.directory, cmd.InOrStdin(), cmd.OutOrStdout(), input, promptPassword)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.ID, "id", "", "employee id")
	flags.StringVar(&input.AccountUsername, "account", "", "username of the linked account")
	flags.StringVar(&input.EmployeeName, "name", "", "employee name")
	flags.StringVar(&input.AppID, "app-id", "", "optional mobile app login id")
	flags.BoolVar(&input.AllowESS, "allow-ess", false, "enable mobile self service")
	flags.StringVar(&input.AppPassword, "app-password", "", "app password (prompted when --prompt-password is set)")
	flags.BoolVar(&promptPassword, "prompt-password", false, "prompt for the app password without echo")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func newSetAppPasswordCommand() *cobra.Command {
	options := cli.SetAppPasswordOptions{}

	cmd := &cobra.Command{
		Use:   "set-app-password <employee-id>",
		Short: "Set an employee's app password",
		Long: `Set an employee's app password. Without --password the password is
prompted for without echo. --generate prints a random temporary password and
requires the employee to reset it after the next login.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openEnvironment(cmd)
			if err != nil {
				return err
			}
			defer rt.close()
			options.EmployeeID = args[0]
			return cli.RunSetAppPassword(cmd.Context(), rt.mobile, cmd.InOrStdin(), cmd.OutOrStdout(), options)
		},
	}

	cmd.Flags().StringVar(&options.Password, "password", "", "new app password")
	cmd.Flags().BoolVar(&options.Generate, "generate", false, "generate a temporary password")
	return cmd
}

func newResetDeviceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-device <employee-id>",
		Short: "Clear an employee's registered device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openEnvironment(cmd)
			if err != nil {
				return err
			}
			defer rt.close()
			return cli.RunResetDevice(cmd.Context(), rt.mobile, cmd.OutOrStdout(), args[0])
		},
	}
}
