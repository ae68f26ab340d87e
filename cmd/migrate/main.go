// Command migrate applies the schema in db/migrations.
// Usage: migrate [up|down|steps N|version]
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"

	"mrtrack/internal/config"
	"mrtrack/internal/logging"
)

const usage = "Usage: migrate [up|down|steps N|version]"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Get().WithError(err).Fatal("failed to load config")
	}
	log := logging.Init(cfg.Log)

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	m, err := migrate.New("file://db/migrations", cfg.DB.DSN())
	if err != nil {
		log.WithError(err).Fatal("failed to create migrate instance")
	}
	defer m.Close()

	if err := apply(m, log, os.Args[1:]); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
}

func apply(m *migrate.Migrate, log *logrus.Logger, args []string) error {
	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up: %w", err)
		}
		log.Info("migrations applied successfully")

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down: %w", err)
		}
		log.Info("migrations reverted successfully")

	case "steps":
		if len(args) < 2 {
			return errors.New("steps requires a number argument")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid steps argument: %w", err)
		}
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("steps: %w", err)
		}
		log.WithField("steps", n).Info("applied migration steps")

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("version: %w", err)
		}
		log.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("schema version")

	default:
		return fmt.Errorf("unknown command %q; %s", args[0], usage)
	}
	return nil
}
