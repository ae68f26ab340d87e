package service

import (
	"context"
	"errors"
	"fmt"

	"mrtrack/internal/analytics"
	"mrtrack/internal/domain"
)

// AdminUsername is the login of the seeded back-office account.
const AdminUsername = "admin"

// DemoUsers builds the logins for a seeded roster: one admin plus one MR
// user per field rep, keyed by the rep's username. Inactive reps get an
// inactive login.
func DemoUsers(reps []domain.FieldRep, adminPassword, repPassword string) ([]domain.User, error) {
	adminHash, err := HashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("seeding admin: %w", err)
	}
	repHash, err := HashPassword(repPassword)
	if err != nil {
		return nil, fmt.Errorf("seeding reps: %w", err)
	}

	users := make([]domain.User, 0, len(reps)+1)
	users = append(users, domain.User{
		ID:           "u-admin",
		Username:     AdminUsername,
		PasswordHash: adminHash,
		FullName:     "Admin",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	})
	for i := range reps {
		rep := &reps[i]
		if rep.Username == "" {
			continue
		}
		users = append(users, domain.User{
			ID:           "u-" + rep.ID,
			Username:     rep.Username,
			PasswordHash: repHash,
			FullName:     rep.Name,
			Role:         domain.RoleMR,
			FieldRepID:   rep.ID,
			IsActive:     rep.IsActive(),
		})
	}
	return users, nil
}

// SeedResult counts what PersistDataset wrote and skipped.
type SeedResult struct {
	Written int
	Skipped int
}

// PersistDataset writes data and users through repos in dependency order.
// Rows whose id or username already exists are skipped, so the seed can be
// re-run against a populated database.
func PersistDataset(ctx context.Context, repos Repositories, data *analytics.Dataset, users []domain.User) (SeedResult, error) {
	var res SeedResult
	write := func(kind, id string, err error) error {
		switch {
		case err == nil:
			res.Written++
		case errors.Is(err, domain.ErrDuplicateID), errors.Is(err, domain.ErrDuplicateUsername):
			res.Skipped++
		default:
			return fmt.Errorf("seeding %s %s: %w", kind, id, err)
		}
		return nil
	}

	for i := range data.Products {
		if err := write("product", data.Products[i].ID, repos.Products.Create(ctx, &data.Products[i])); err != nil {
			return res, err
		}
	}
	for i := range data.Doctors {
		if err := write("doctor", data.Doctors[i].ID, repos.Doctors.Create(ctx, &data.Doctors[i])); err != nil {
			return res, err
		}
	}
	for i := range data.FieldReps {
		if err := write("field rep", data.FieldReps[i].ID, repos.FieldReps.Create(ctx, &data.FieldReps[i])); err != nil {
			return res, err
		}
	}
	for i := range users {
		if err := write("user", users[i].Username, repos.Users.Create(ctx, &users[i])); err != nil {
			return res, err
		}
	}
	for i := range data.Visits {
		if err := write("visit", data.Visits[i].ID, repos.Visits.Create(ctx, &data.Visits[i])); err != nil {
			return res, err
		}
	}
	for i := range data.ShopVisits {
		if err := write("shop visit", data.ShopVisits[i].ID, repos.ShopVisits.Create(ctx, &data.ShopVisits[i])); err != nil {
			return res, err
		}
	}
	for i := range data.Approvals {
		if err := write("approval", data.Approvals[i].ID, repos.Approvals.Create(ctx, &data.Approvals[i])); err != nil {
			return res, err
		}
	}
	if repos.Tasks != nil {
		for i := range data.Tasks {
			if err := write("task", data.Tasks[i].ID, repos.Tasks.Create(ctx, &data.Tasks[i])); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}
