package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/goto/salt/config"

	"github.com/goto/approvals/internal/store"
	"github.com/goto/approvals/jobs"
	"github.com/goto/approvals/pkg/opentelemetry"
	"github.com/goto/approvals/plugins/notifiers"
)

type DefaultAuth struct {
	HeaderKey string `mapstructure:"header_key" default:"X-Auth-Email"`
}

type Auth struct {
	Default DefaultAuth `mapstructure:"default"`
}

type ApprovalConfig struct {
	NotificationTimeout time.Duration `mapstructure:"notification_timeout" default:"10s"`
}

type Config struct {
	Port            int           `mapstructure:"port" default:"8080"`
	LogLevel        string        `mapstructure:"log_level" default:"info"`
	LogFormat       string        `mapstructure:"log_format" default:"json"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"10s"`

	DB        store.Config           `mapstructure:"db"`
	Notifier  notifiers.Config       `mapstructure:"notifier"`
	Approval  ApprovalConfig         `mapstructure:"approval"`
	Jobs      map[jobs.Type]jobs.Job `mapstructure:"jobs"`
	Telemetry opentelemetry.Config   `mapstructure:"telemetry"`
	Auth      Auth                   `mapstructure:"auth"`
}

func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	loader := config.NewLoader(config.WithFile(configFile))

	if err := loader.Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			fmt.Println(err)
			return cfg, nil
		}
		return Config{}, err
	}

	return cfg, nil
}
