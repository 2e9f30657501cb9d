package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "approvals <command> <subcommand> [flags]",
		Short:         "Multi-level approval workflows",
		Long:          "Route requests through configurable approval levels with delegation and escalation.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: heredoc.Doc(`
			$ approvals server start -c config.yaml
			$ approvals template apply -f leave.yaml
			$ approvals job run escalate_overdue_approvals
		`),
	}

	cmd.AddCommand(
		ServerCommand(),
		JobCmd(),
		TemplateCmd(),
	)

	return cmd
}
