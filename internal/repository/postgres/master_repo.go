package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

type doctorRow struct {
	ID             string          `db:"id"`
	Name           string          `db:"name"`
	Qualification  string          `db:"qualification"`
	Specialization string          `db:"specialization"`
	Town           string          `db:"town"`
	Area           string          `db:"area"`
	Phone          string          `db:"phone"`
	Email          string          `db:"email"`
	CreatedAt      string          `db:"created_at"`
	Lat            sql.NullFloat64 `db:"lat"`
	Lng            sql.NullFloat64 `db:"lng"`
}

func (r *doctorRow) toDomain() domain.Doctor {
	d := domain.Doctor{
		ID:             r.ID,
		Name:           r.Name,
		Qualification:  r.Qualification,
		Specialization: r.Specialization,
		Town:           r.Town,
		Area:           r.Area,
		Phone:          r.Phone,
		Email:          r.Email,
		CreatedAt:      r.CreatedAt,
	}
	if r.Lat.Valid && r.Lng.Valid {
		d.Location = &domain.GeoPoint{Lat: r.Lat.Float64, Lng: r.Lng.Float64}
	}
	return d
}

const doctorColumns = `id, name, qualification, specialization, town, area, phone, email, created_at, lat, lng`

type doctorRepo struct {
	db *sqlx.DB
}

// NewDoctorRepo creates a new PostgreSQL-backed DoctorRepository.
func NewDoctorRepo(db *sqlx.DB) port.DoctorRepository {
	return &doctorRepo{db: db}
}

func (r *doctorRepo) Create(ctx context.Context, doctor *domain.Doctor) error {
	var lat, lng sql.NullFloat64
	if doctor.Location != nil {
		lat = sql.NullFloat64{Float64: doctor.Location.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: doctor.Location.Lng, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO doctors (`+doctorColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		doctor.ID, doctor.Name, doctor.Qualification, doctor.Specialization, doctor.Town, doctor.Area,
		doctor.Phone, doctor.Email, doctor.CreatedAt, lat, lng)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("doctorRepo.Create: %w", err)
	}
	return nil
}

func (r *doctorRepo) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	var row doctorRow
	err := r.db.GetContext(ctx, &row, `SELECT `+doctorColumns+` FROM doctors WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("doctorRepo.GetByID: %w", err)
	}
	d := row.toDomain()
	return &d, nil
}

func (r *doctorRepo) List(ctx context.Context) ([]domain.Doctor, error) {
	var rows []doctorRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+doctorColumns+` FROM doctors ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("doctorRepo.List: %w", err)
	}
	doctors := make([]domain.Doctor, len(rows))
	for i := range rows {
		doctors[i] = rows[i].toDomain()
	}
	return doctors, nil
}

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO products (id, name, category, status, description)
		 VALUES (:id, :name, :category, :status, :description)`, product)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("productRepo.Create: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.GetContext(ctx, &p,
		`SELECT id, name, category, status, description FROM products WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	err := r.db.SelectContext(ctx, &products,
		`SELECT id, name, category, status, description FROM products ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("productRepo.List: %w", err)
	}
	return products, nil
}

func (r *productRepo) UpdateStatus(ctx context.Context, id string, status domain.ProductStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE products SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("productRepo.UpdateStatus: %w", err)
	}
	return requireRow(res, "productRepo.UpdateStatus")
}

const fieldRepColumns = `id, name, username, email, phone, territory, hq, status, joined_date`

type fieldRepRepo struct {
	db *sqlx.DB
}

// NewFieldRepRepo creates a new PostgreSQL-backed FieldRepRepository.
func NewFieldRepRepo(db *sqlx.DB) port.FieldRepRepository {
	return &fieldRepRepo{db: db}
}

func (r *fieldRepRepo) Create(ctx context.Context, rep *domain.FieldRep) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO field_reps (`+fieldRepColumns+`)
		 VALUES (:id, :name, :username, :email, :phone, :territory, :hq, :status, :joined_date)`, rep)
	if err != nil {
		if isDuplicateKey(err) {
			if containsConstraint(err, "username") {
				return domain.ErrDuplicateUsername
			}
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("fieldRepRepo.Create: %w", err)
	}
	return nil
}

func (r *fieldRepRepo) GetByID(ctx context.Context, id string) (*domain.FieldRep, error) {
	var rep domain.FieldRep
	err := r.db.GetContext(ctx, &rep, `SELECT `+fieldRepColumns+` FROM field_reps WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fieldRepRepo.GetByID: %w", err)
	}
	return &rep, nil
}

func (r *fieldRepRepo) List(ctx context.Context) ([]domain.FieldRep, error) {
	reps := make([]domain.FieldRep, 0)
	if err := r.db.SelectContext(ctx, &reps, `SELECT `+fieldRepColumns+` FROM field_reps ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("fieldRepRepo.List: %w", err)
	}
	return reps, nil
}

func (r *fieldRepRepo) UpdateStatus(ctx context.Context, id string, status domain.FieldRepStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE field_reps SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("fieldRepRepo.UpdateStatus: %w", err)
	}
	return requireRow(res, "fieldRepRepo.UpdateStatus")
}
