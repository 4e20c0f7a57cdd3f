// Package helpers starts throwaway databases and servers for the integration suite.
package helpers

import (
	"fmt"
	"log"
	"time"

	"jobtracker_backend/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

const postgresPassword = "jobtracker"

// Postgres is a disposable Postgres container with a migrated schema.
type Postgres struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	DB       *gorm.DB
	DSN      string
}

// StartPostgres runs postgres:16-alpine and waits until it accepts connections.
// The container is removed after expire even if Close is never called.
func StartPostgres(expire time.Duration) (*Postgres, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not construct docker pool: %w", err)
	}
	if err := pool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=jobtracker_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}
	_ = resource.Expire(uint(expire.Seconds()))

	dsn := fmt.Sprintf("postgres://postgres:%s@%s/jobtracker_test?sslmode=disable",
		postgresPassword, resource.GetHostPort("5432/tcp"))

	var db *gorm.DB
	pool.MaxWait = 90 * time.Second
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = database.Open(database.DriverPostgres, dsn, "test")
		return openErr
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}

	log.Printf("postgres container ready at %s", resource.GetHostPort("5432/tcp"))
	return &Postgres{pool: pool, resource: resource, DB: db, DSN: dsn}, nil
}

// Close drops the connection pool and removes the container.
func (p *Postgres) Close() {
	_ = database.Close(p.DB)
	if err := p.pool.Purge(p.resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}
}
