package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

type visitRow struct {
	ID                  string  `db:"id"`
	DoctorID            string  `db:"doctor_id"`
	DoctorName          string  `db:"doctor_name"`
	FieldRepID          string  `db:"field_rep_id"`
	FieldRepName        string  `db:"field_rep_name"`
	Date                string  `db:"date"`
	Time                string  `db:"time"`
	Lat                 float64 `db:"lat"`
	Lng                 float64 `db:"lng"`
	Notes               string  `db:"notes"`
	ProductsPromoted    []byte  `db:"products_promoted"`
	BusinessGenerated   int64   `db:"business_generated"`
	ProductWiseBusiness []byte  `db:"product_wise_business"`
}

func (r *visitRow) toDomain() (domain.DoctorVisit, error) {
	v := domain.DoctorVisit{
		ID:                r.ID,
		DoctorID:          r.DoctorID,
		DoctorName:        r.DoctorName,
		FieldRepID:        r.FieldRepID,
		FieldRepName:      r.FieldRepName,
		Date:              r.Date,
		Time:              r.Time,
		Location:          domain.GeoPoint{Lat: r.Lat, Lng: r.Lng},
		Notes:             r.Notes,
		BusinessGenerated: r.BusinessGenerated,
		ProductsPromoted:  []string{},
	}
	if len(r.ProductsPromoted) > 0 {
		if err := json.Unmarshal(r.ProductsPromoted, &v.ProductsPromoted); err != nil {
			return v, fmt.Errorf("decoding products_promoted of %s: %w", r.ID, err)
		}
	}
	if len(r.ProductWiseBusiness) > 0 {
		if err := json.Unmarshal(r.ProductWiseBusiness, &v.ProductWiseBusiness); err != nil {
			return v, fmt.Errorf("decoding product_wise_business of %s: %w", r.ID, err)
		}
	}
	return v, nil
}

type visitRepo struct {
	db *sqlx.DB
}

// NewVisitRepo creates a new PostgreSQL-backed VisitRepository.
func NewVisitRepo(db *sqlx.DB) port.VisitRepository {
	return &visitRepo{db: db}
}

func (r *visitRepo) Create(ctx context.Context, visit *domain.DoctorVisit) error {
	promoted := visit.ProductsPromoted
	if promoted == nil {
		promoted = []string{}
	}
	promotedJSON, err := json.Marshal(promoted)
	if err != nil {
		return fmt.Errorf("visitRepo.Create marshal products: %w", err)
	}
	var breakdown any
	if len(visit.ProductWiseBusiness) > 0 {
		b, err := json.Marshal(visit.ProductWiseBusiness)
		if err != nil {
			return fmt.Errorf("visitRepo.Create marshal breakdown: %w", err)
		}
		breakdown = string(b)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO doctor_visits (id, doctor_id, doctor_name, field_rep_id, field_rep_name, date, time,
			lat, lng, notes, products_promoted, business_generated, product_wise_business)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		visit.ID, visit.DoctorID, visit.DoctorName, visit.FieldRepID, visit.FieldRepName,
		visit.Date, visit.Time, visit.Location.Lat, visit.Location.Lng, visit.Notes,
		string(promotedJSON), visit.BusinessGenerated, breakdown)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("visitRepo.Create: %w", err)
	}
	return nil
}

func (r *visitRepo) List(ctx context.Context) ([]domain.DoctorVisit, error) {
	var rows []visitRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, doctor_id, doctor_name, field_rep_id, field_rep_name, date, time, lat, lng, notes,
			products_promoted, business_generated, product_wise_business
		 FROM doctor_visits ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("visitRepo.List: %w", err)
	}
	visits := make([]domain.DoctorVisit, len(rows))
	for i := range rows {
		v, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("visitRepo.List: %w", err)
		}
		visits[i] = v
	}
	return visits, nil
}

func (r *visitRepo) CountByFieldRepAndDate(ctx context.Context, fieldRepID, date string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM doctor_visits WHERE field_rep_id = $1 AND date = $2`, fieldRepID, date)
	if err != nil {
		return 0, fmt.Errorf("visitRepo.CountByFieldRepAndDate: %w", err)
	}
	return n, nil
}

type shopVisitRepo struct {
	db *sqlx.DB
}

// NewShopVisitRepo creates a new PostgreSQL-backed ShopVisitRepository.
func NewShopVisitRepo(db *sqlx.DB) port.ShopVisitRepository {
	return &shopVisitRepo{db: db}
}

func (r *shopVisitRepo) Create(ctx context.Context, visit *domain.ShopVisit) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO shop_visits (id, shop_name, location, field_rep_id, field_rep_name, date, time, notes, contact_person)
		 VALUES (:id, :shop_name, :location, :field_rep_id, :field_rep_name, :date, :time, :notes, :contact_person)`,
		visit)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("shopVisitRepo.Create: %w", err)
	}
	return nil
}

const shopVisitColumns = `id, shop_name, location, field_rep_id, field_rep_name, date, time, notes, contact_person`

func (r *shopVisitRepo) List(ctx context.Context) ([]domain.ShopVisit, error) {
	visits := make([]domain.ShopVisit, 0)
	if err := r.db.SelectContext(ctx, &visits, `SELECT `+shopVisitColumns+` FROM shop_visits ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("shopVisitRepo.List: %w", err)
	}
	return visits, nil
}

func (r *shopVisitRepo) ListByFieldRep(ctx context.Context, fieldRepID, date string) ([]domain.ShopVisit, error) {
	visits := make([]domain.ShopVisit, 0)
	err := r.db.SelectContext(ctx, &visits,
		`SELECT `+shopVisitColumns+`
		 FROM shop_visits
		 WHERE field_rep_id = $1 AND ($2 = '' OR date = $2)
		 ORDER BY seq`, fieldRepID, date)
	if err != nil {
		return nil, fmt.Errorf("shopVisitRepo.ListByFieldRep: %w", err)
	}
	return visits, nil
}

func (r *shopVisitRepo) CountByFieldRepAndDate(ctx context.Context, fieldRepID, date string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM shop_visits WHERE field_rep_id = $1 AND date = $2`, fieldRepID, date)
	if err != nil {
		return 0, fmt.Errorf("shopVisitRepo.CountByFieldRepAndDate: %w", err)
	}
	return n, nil
}
