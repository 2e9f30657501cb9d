package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goto/approvals/core/template"
	"github.com/goto/approvals/domain"
	"github.com/goto/approvals/internal/server"
	"github.com/goto/approvals/pkg/audit"
	"github.com/goto/approvals/pkg/log"
)

func TemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"templates"},
		Short:   "Manage flow templates",
		Example: heredoc.Doc(`
			$ approvals template apply -f leave.yaml
		`),
	}

	cmd.AddCommand(applyTemplateCmd())
	cmd.PersistentFlags().StringP("config", "c", "./config.yaml", "Config file path")
	cmd.MarkPersistentFlagFilename("config")

	return cmd
}

func applyTemplateCmd() *cobra.Command {
	var filePath, actor string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create a flow template or store a new version of it",
		Example: heredoc.Doc(`
			$ approvals template apply -f leave.yaml --actor admin@example.com
		`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := readTemplate(filePath)
			if err != nil {
				return err
			}

			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := log.NewCtxLoggerWithSaltLogger(log.NewSaltLogger(config.LogLevel, config.LogFormat), nil)
			services, err := server.InitServices(server.ServiceDeps{
				Config:    &config,
				Logger:    logger,
				Validator: validator.New(),
			})
			if err != nil {
				return fmt.Errorf("initializing services: %w", err)
			}
			defer services.Close()

			ctx := audit.WithActor(context.Background(), actor)
			created, err := applyTemplate(ctx, services.TemplateService, t)
			if err != nil {
				return err
			}

			verb := "updated"
			if created {
				verb = "created"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "template %q %s, version %d\n", t.ID, verb, t.Version)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the template yaml file")
	cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&actor, "actor", domain.SystemActorName, "User recorded in the audit trail")

	return cmd
}

type templateApplier interface {
	GetOne(ctx context.Context, id string, version uint) (*domain.FlowTemplate, error)
	Create(context.Context, *domain.FlowTemplate) error
	Update(context.Context, *domain.FlowTemplate) error
}

func applyTemplate(ctx context.Context, svc templateApplier, t *domain.FlowTemplate) (bool, error) {
	if t.ID == "" {
		return true, svc.Create(ctx, t)
	}

	if _, err := svc.GetOne(ctx, t.ID, 0); err != nil {
		if errors.Is(err, template.ErrTemplateNotFound) {
			return true, svc.Create(ctx, t)
		}
		return false, err
	}
	return false, svc.Update(ctx, t)
}

func readTemplate(path string) (*domain.FlowTemplate, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file: %w", err)
	}

	var t domain.FlowTemplate
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("parsing template file: %w", err)
	}
	return &t, nil
}
