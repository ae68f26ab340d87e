// Command seed writes the demo dataset into PostgreSQL.
// Usage: seed [doctors.xlsx]
//
// With a workbook argument the doctor roster is read from its first sheet
// instead of the built-in list. Re-running skips rows that already exist.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"mrtrack/internal/analytics"
	"mrtrack/internal/config"
	"mrtrack/internal/domain"
	"mrtrack/internal/logging"
	"mrtrack/internal/mockdata"
	"mrtrack/internal/repository/postgres"
	"mrtrack/internal/service"
	"mrtrack/internal/xlsx"
)

func main() {
	if err := run(); err != nil {
		logging.Get().WithError(err).Fatal("seed failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logging.Init(cfg.Log)

	doctors, err := rosterDoctors(os.Args[1:])
	if err != nil {
		return err
	}

	loc, err := cfg.App.Location()
	if err != nil {
		return err
	}
	today := cfg.Seed.Today
	if today == "" {
		today = service.NewCalendar(analytics.WithLocation(loc)).Today()
	}

	data, err := mockdata.Generator{
		Seed:         cfg.Seed.Value,
		Today:        today,
		VisitDays:    cfg.Seed.VisitDays,
		ApprovalDays: cfg.Seed.ApprovalDays,
		Doctors:      doctors,
	}.Generate()
	if err != nil {
		return fmt.Errorf("generate dataset: %w", err)
	}
	users, err := service.DemoUsers(data.FieldReps, cfg.Seed.AdminPassword, cfg.Seed.RepPassword)
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repos := service.Repositories{
		Doctors:    postgres.NewDoctorRepo(db),
		Products:   postgres.NewProductRepo(db),
		FieldReps:  postgres.NewFieldRepRepo(db),
		Visits:     postgres.NewVisitRepo(db),
		ShopVisits: postgres.NewShopVisitRepo(db),
		Approvals:  postgres.NewApprovalRepo(db),
		Users:      postgres.NewUserRepo(db),
		Tasks:      postgres.NewTaskRepo(db),
	}
	res, err := service.PersistDataset(context.Background(), repos, data, users)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"today":   today,
		"seed":    cfg.Seed.Value,
		"written": res.Written,
		"skipped": res.Skipped,
	}).Info("seed complete")
	return nil
}

// rosterDoctors returns nil when no workbook is given so the generator
// falls back to its built-in roster.
func rosterDoctors(args []string) ([]domain.Doctor, error) {
	if len(args) == 0 {
		return nil, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	doctors, err := xlsx.ReadDoctors(f)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", args[0], err)
	}
	logging.Get().WithField("doctors", len(doctors)).Info("loaded doctor roster")
	return doctors, nil
}
