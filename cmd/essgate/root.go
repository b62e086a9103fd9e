package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/terraincognita07/essgate/internal/config"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "essgate",
		Short: "Device-bound mobile login for employee self service",
		Long: `essgate serves the mobile login API: employees sign in with an app
password from a single registered device and receive API credentials.
The admin subcommands provision accounts and manage app passwords and
device bindings.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("db-driver", "", "database driver: sqlite or postgres (env DB_DRIVER)")
	flags.String("db-path", "", "SQLite database file (env DB_PATH)")
	flags.String("database-dsn", "", "PostgreSQL connection string (env DATABASE_DSN)")
	flags.String("log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	flags.String("log-format", "", "text or json (env LOG_FORMAT)")

	root.AddCommand(
		newServeCommand(),
		newCreateAccountCommand(),
		newCreateEmployeeCommand(),
		newSetAppPasswordCommand(),
		newResetDeviceCommand(),
	)
	return root
}

// loadConfig reads the environment and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	applyFlagOverrides(cmd.Flags(), &cfg)
	return cfg, nil
}

func applyFlagOverrides(flags *pflag.FlagSet, cfg *config.Config) {
	overrides := map[string]*string{
		"db-driver":    &cfg.DBDriver,
		"db-path":      &cfg.DBPath,
		"database-dsn": &cfg.DatabaseDSN,
		"log-level":    &cfg.LogLevel,
		"log-format":   &cfg.LogFormat,
	}
	for name, target := range overrides {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		*target = flag.Value.String()
	}
}
