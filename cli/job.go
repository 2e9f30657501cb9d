package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/goto/approvals/internal/server"
	"github.com/goto/approvals/jobs"
	"github.com/goto/approvals/pkg/log"
	"github.com/goto/approvals/plugins/notifiers"
)

var jobTypes = []string{
	string(jobs.TypeEscalateOverdueApprovals),
	string(jobs.TypePendingApprovalsReminder),
}

func JobCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "job",
		Aliases: []string{"jobs"},
		Short:   "Inspect and trigger background jobs",
		Example: heredoc.Doc(`
			$ approvals job list
			$ approvals job run escalate_overdue_approvals --dry-run
		`),
	}

	cmd.AddCommand(listJobsCmd(), runJobCmd())
	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}

func listJobsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the jobs the server schedules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tENABLED\tINTERVAL")
			scheduled := map[jobs.Type]jobs.Job{}
			for _, j := range server.ScheduledJobs(cfg.Jobs) {
				scheduled[j.Type] = j
			}
			for _, t := range jobTypes {
				j, ok := scheduled[jobs.Type(t)]
				interval := "-"
				if ok && j.Interval > 0 {
					interval = j.Interval.String()
				}
				fmt.Fprintf(w, "%s\t%t\t%s\n", t, ok && j.Enabled, interval)
			}
			return w.Flush()
		},
	}
}

func runJobCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run <type>",
		Short: "Run one tick of a job against the configured store",
		Example: heredoc.Doc(`
			$ approvals job run escalate_overdue_approvals
			$ approvals job run pending_approvals_reminder -c config.yaml
		`),
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: jobTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := log.NewCtxLoggerWithSaltLogger(log.NewSaltLogger(cfg.LogLevel, cfg.LogFormat), nil)
			notifier, err := notifiers.NewClient(&cfg.Notifier, logger)
			if err != nil {
				return fmt.Errorf("initializing notifier: %w", err)
			}
			services, err := server.InitServices(server.ServiceDeps{
				Config:    &cfg,
				Logger:    logger,
				Validator: validator.New(),
				Notifier:  notifier,
			})
			if err != nil {
				return fmt.Errorf("initializing services: %w", err)
			}
			defer services.Close()

			t := jobs.Type(args[0])
			jobCfg := jobs.Config{}
			for k, v := range cfg.Jobs[t].Config {
				jobCfg[k] = v
			}
			if dryRun {
				jobCfg["dry_run"] = true
			}

			h := jobs.NewHandler(logger, services.ApprovalService, notifier)
			if err := h.Run(cmd.Context(), t, jobCfg); err != nil {
				return fmt.Errorf("running job %q: %w", t, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what the job would do without changing anything")
	return cmd
}
