package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/approvals/internal/server"
	"github.com/goto/approvals/internal/store"
	"github.com/goto/approvals/internal/store/postgres"
)

func ServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Server management",
		Example: heredoc.Doc(`
			$ approvals server start
			$ approvals server migrate -c config.yaml
		`),
	}

	cmd.AddCommand(startCommand(), migrateCommand())
	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}

func startCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the http server and the scheduled jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return server.RunServer(&cfg)
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.DB.Driver == store.DriverMemory {
				return fmt.Errorf("nothing to migrate for the %q driver", store.DriverMemory)
			}

			s, err := postgres.NewStore(&cfg.DB)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Migrate(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migration finished")
			return nil
		},
	}
}

func loadConfig(cmd *cobra.Command) (server.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return server.Config{}, fmt.Errorf("getting config flag value: %w", err)
	}
	cfg, err := server.LoadConfig(configFile)
	if err != nil {
		return server.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
