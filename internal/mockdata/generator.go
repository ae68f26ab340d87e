// Package mockdata builds a reproducible demo dataset: the reference roster
// plus a randomised visit, shop call, approval and task history driven by an
// explicit seed.
package mockdata

import (
	"fmt"
	"math/rand/v2"

	"mrtrack/internal/analytics"
	"mrtrack/internal/domain"
)

const (
	DefaultVisitDays    = 30
	DefaultApprovalDays = 14

	hqAllowance     = 500
	rejectionReason = "Expense receipts missing"
	approverName    = "Admin"
	visitNote       = "Discussed new products"
	shopNote        = "Stock check"
	taskNote        = "Follow up on samples"
)

// taskOffsets are the days, relative to Today, that each active rep has an
// assigned visit. Past tasks are seeded as completed.
var taskOffsets = []int{-1, 0, 0, 1, 3}

// Generator synthesises a Dataset. Two generators with the same fields
// produce identical datasets.
type Generator struct {
	Seed         uint64
	Today        string // calendar day the history ends on
	VisitDays    int
	ApprovalDays int

	// Optional roster overrides; the built-in roster is used when nil.
	Doctors   []domain.Doctor
	Products  []domain.Product
	FieldReps []domain.FieldRep
}

// Generate builds the dataset. Today must be a valid calendar day.
func (g Generator) Generate() (*analytics.Dataset, error) {
	today, ok := domain.ParseDate(g.Today)
	if !ok {
		return nil, fmt.Errorf("mockdata: %w: %q", domain.ErrInvalidDate, g.Today)
	}
	visitDays := g.VisitDays
	if visitDays <= 0 {
		visitDays = DefaultVisitDays
	}
	approvalDays := g.ApprovalDays
	if approvalDays <= 0 {
		approvalDays = DefaultApprovalDays
	}

	data := &analytics.Dataset{
		Doctors:   g.Doctors,
		Products:  g.Products,
		FieldReps: g.FieldReps,
	}
	if data.Doctors == nil {
		data.Doctors = Doctors()
	}
	if data.Products == nil {
		data.Products = Products()
	}
	if data.FieldReps == nil {
		data.FieldReps = FieldReps()
	}
	if len(data.Doctors) == 0 {
		return nil, fmt.Errorf("mockdata: doctor roster is empty")
	}

	rng := rand.New(rand.NewPCG(g.Seed, g.Seed^0x9e3779b97f4a7c15))

	visitsPerDay := make(map[string]int)
	shopsPerDay := make(map[string]int)
	for i := 0; i < visitDays; i++ {
		date := domain.FormatDate(today.AddDate(0, 0, -i))
		for r := range data.FieldReps {
			rep := &data.FieldReps[r]
			count := rng.IntN(3) + 2
			for v := 0; v < count; v++ {
				data.Visits = append(data.Visits, g.visit(rng, data, rep, date, v))
			}
			visitsPerDay[date+"|"+rep.ID] += count

			calls := rng.IntN(2)
			for s := 0; s < calls; s++ {
				data.ShopVisits = append(data.ShopVisits, shopVisit(rng, rep, date, s))
			}
			shopsPerDay[date+"|"+rep.ID] += calls
		}
	}

	for i := 0; i < approvalDays; i++ {
		date := domain.FormatDate(today.AddDate(0, 0, -i))
		for r := range data.FieldReps {
			rep := &data.FieldReps[r]
			key := date + "|" + rep.ID
			data.Approvals = append(data.Approvals, approval(rng, rep, date, i, visitsPerDay[key], shopsPerDay[key]))
		}
	}

	for r := range data.FieldReps {
		rep := &data.FieldReps[r]
		if !rep.IsActive() {
			continue
		}
		for n, offset := range taskOffsets {
			t, err := task(rng, data, rep, g.Today, offset, n)
			if err != nil {
				return nil, err
			}
			data.Tasks = append(data.Tasks, t)
		}
	}

	return data, nil
}

func (g Generator) visit(rng *rand.Rand, data *analytics.Dataset, rep *domain.FieldRep, date string, n int) domain.DoctorVisit {
	doctor := data.Doctors[rng.IntN(len(data.Doctors))]

	promoted := make([]string, 0, 3)
	for p := range data.Products {
		if rng.Float64() > 0.5 && len(promoted) < 3 && data.Products[p].IsActive() {
			promoted = append(promoted, data.Products[p].ID)
		}
	}

	v := domain.DoctorVisit{
		ID:           fmt.Sprintf("visit-%s-%s-%d", date, rep.ID, n),
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Name,
		FieldRepID:   rep.ID,
		FieldRepName: rep.Name,
		Date:         date,
		Time:         fmt.Sprintf("%02d:%02d", 9+n*2, rng.IntN(60)),
		Location: domain.GeoPoint{
			Lat: 19.076 + rng.Float64()*0.1,
			Lng: 72.877 + rng.Float64()*0.1,
		},
		ProductsPromoted:  promoted,
		BusinessGenerated: int64(rng.IntN(10000) + 1000),
	}
	if rng.Float64() > 0.5 {
		v.Notes = visitNote
	}
	return v
}

// shopVisit builds the n-th chemist call of the day, after the doctor round.
func shopVisit(rng *rand.Rand, rep *domain.FieldRep, date string, n int) domain.ShopVisit {
	sh := shops[rng.IntN(len(shops))]
	sv := domain.ShopVisit{
		ID:            fmt.Sprintf("shop-%s-%s-%d", date, rep.ID, n),
		ShopName:      sh.name,
		Location:      sh.area,
		FieldRepID:    rep.ID,
		FieldRepName:  rep.Name,
		Date:          date,
		Time:          fmt.Sprintf("%02d:%02d", 17+n, rng.IntN(60)),
		ContactPerson: sh.contact,
	}
	if rng.Float64() > 0.5 {
		sv.Notes = shopNote
	}
	return sv
}

// task assigns a doctor visit offset days from today. Tasks dated before
// today are already completed.
func task(rng *rand.Rand, data *analytics.Dataset, rep *domain.FieldRep, today string, offset, n int) (domain.Task, error) {
	date, ok := domain.AddDays(today, offset)
	if !ok {
		return domain.Task{}, fmt.Errorf("mockdata: %w: %q", domain.ErrInvalidDate, today)
	}
	assigned, _ := domain.AddDays(today, min(offset, 0)-1)
	doctor := data.Doctors[rng.IntN(len(data.Doctors))]

	t := domain.Task{
		ID:              fmt.Sprintf("task-%s-%d", rep.ID, n),
		FieldRepID:      rep.ID,
		FieldRepName:    rep.Name,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		DoctorSpecialty: doctor.Specialization,
		Date:            date,
		Time:            fmt.Sprintf("%02d:%02d", 10+rng.IntN(7), 15*rng.IntN(4)),
		Notes:           taskNote,
		Status:          domain.TaskStatusPending,
		AssignedBy:      approverName,
		CreatedAt:       assigned,
	}
	if offset < 0 {
		_ = t.Complete(date)
	}
	return t, nil
}

// approval builds the day's report. The two most recent days stay pending;
// older days are approved about nine times in ten and rejected otherwise.
func approval(rng *rand.Rand, rep *domain.FieldRep, date string, daysAgo, visitCount, shopCount int) domain.DailyApproval {
	expense := &domain.DailyExpense{
		ID:            fmt.Sprintf("exp-%s-%s", date, rep.ID),
		FieldRepID:    rep.ID,
		FieldRepName:  rep.Name,
		Date:          date,
		HQAllowance:   hqAllowance,
		FareAllowance: int64(rng.IntN(500) + 200),
	}
	if rng.Float64() > 0.7 {
		expense.OtherExpenses = int64(rng.IntN(200))
	}
	expense.Recompute()

	a := domain.DailyApproval{
		ID:             fmt.Sprintf("approval-%s-%s", date, rep.ID),
		FieldRepID:     rep.ID,
		FieldRepName:   rep.Name,
		Date:           date,
		VisitCount:     visitCount,
		ShopVisitCount: shopCount,
		Expense:        expense,
		Status:         domain.ApprovalStatusPending,
	}
	if daysAgo > 1 {
		if rng.Float64() > 0.1 {
			_ = a.Approve(approverName, date)
		} else {
			_ = a.Reject(rejectionReason)
		}
	}
	return a
}
