// Package postgrestest starts a disposable PostgreSQL container for repository tests
package postgrestest

import (
	"context"
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/goto/approvals/internal/store"
	"github.com/goto/approvals/internal/store/postgres"
	"github.com/goto/approvals/pkg/log"
)

const (
	user     = "test_user"
	password = "test_pass"
	dbName   = "test_db"
)

func NewTestStore(logger log.Logger) (*postgres.Store, *dockertest.Pool, *dockertest.Resource, error) {
	ctx := context.Background()

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not create dockertest pool: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "14-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=" + password,
			"POSTGRES_USER=" + user,
			"POSTGRES_DB=" + dbName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start resource: %w", err)
	}

	cfg := &store.Config{
		Driver:   store.DriverPostgres,
		Host:     "localhost",
		User:     user,
		Password: password,
		Name:     dbName,
		Port:     resource.GetPort("5432/tcp"),
		SslMode:  "disable",
		LogLevel: "silent",
	}

	// container is killed after two minutes in case the test is interrupted
	if err := resource.Expire(120); err != nil {
		return nil, nil, nil, err
	}

	pool.MaxWait = 60 * time.Second
	var st *postgres.Store
	if err := pool.Retry(func() error {
		st, err = postgres.NewStore(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := st.DB().DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	if err := st.Migrate(); err != nil {
		return nil, nil, nil, fmt.Errorf("migrating test store: %w", err)
	}
	logger.Info(ctx, "postgres test store is ready", "port", cfg.Port)

	return st, pool, resource, nil
}

func PurgeTestDocker(pool *dockertest.Pool, resource *dockertest.Resource) error {
	if err := pool.Purge(resource); err != nil {
		return fmt.Errorf("could not purge resource: %w", err)
	}
	return nil
}
