package service_test

import (
	"context"
	"sync"
	"time"

	"mrtrack/internal/analytics"
	"mrtrack/internal/domain"
	"mrtrack/internal/port"
	"mrtrack/internal/repository/memory"
	"mrtrack/internal/service"
)

// testToday is the fixed calendar day every service test runs on.
const testToday = "2024-03-15"

var (
	adminActor = service.Actor{UserID: "u-admin", Username: "admin", Name: "Admin", Role: domain.RoleAdmin}
	rahulActor = service.Actor{UserID: "u-mr1", Username: "rahul.kumar", Name: "Rahul Kumar", Role: domain.RoleMR, FieldRepID: "mr1"}
)

func testCalendar() service.Calendar {
	return service.NewCalendar(analytics.WithClock(func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}))
}

func expense(rep, date string, hq, fare, other int64) *domain.DailyExpense {
	e := &domain.DailyExpense{
		ID:            "exp-" + date + "-" + rep,
		FieldRepID:    rep,
		Date:          date,
		HQAllowance:   hq,
		FareAllowance: fare,
		OtherExpenses: other,
	}
	e.Recompute()
	return e
}

// testDataset is a small roster with a handful of visits and reports.
func testDataset() *analytics.Dataset {
	return &analytics.Dataset{
		Doctors: []domain.Doctor{
			{ID: "d1", Name: "Dr. Rajesh Sharma", Location: &domain.GeoPoint{Lat: 19.1362, Lng: 72.8296}},
			{ID: "d2", Name: "Dr. Priya Patel", Location: &domain.GeoPoint{Lat: 19.0596, Lng: 72.8295}},
		},
		Products: []domain.Product{
			{ID: "p1", Name: "Cardiocare Plus", Status: domain.ProductStatusActive},
			{ID: "p2", Name: "Neurofit 500", Status: domain.ProductStatusActive},
			{ID: "p3", Name: "Respira Syrup", Status: domain.ProductStatusInactive},
		},
		FieldReps: []domain.FieldRep{
			{ID: "mr1", Name: "Rahul Kumar", Username: "rahul.kumar", Email: "rahul@riddhi.com", Status: domain.FieldRepStatusActive},
			{ID: "mr2", Name: "Pooja Sharma", Username: "pooja.sharma", Email: "pooja@riddhi.com", Status: domain.FieldRepStatusInactive},
		},
		Visits: []domain.DoctorVisit{
			{ID: "v1", DoctorID: "d1", DoctorName: "Dr. Rajesh Sharma", FieldRepID: "mr1", FieldRepName: "Rahul Kumar", Date: "2024-03-15", ProductsPromoted: []string{"p1"}, BusinessGenerated: 1000},
			{ID: "v2", DoctorID: "d2", DoctorName: "Dr. Priya Patel", FieldRepID: "mr1", FieldRepName: "Rahul Kumar", Date: "2024-03-10", ProductsPromoted: []string{"p1", "p2"}, BusinessGenerated: 3000},
			{ID: "v3", DoctorID: "d1", DoctorName: "Dr. Rajesh Sharma", FieldRepID: "mr2", FieldRepName: "Pooja Sharma", Date: "2024-02-20", ProductsPromoted: []string{"p2"}, BusinessGenerated: 500},
		},
		Approvals: []domain.DailyApproval{
			{ID: "a1", FieldRepID: "mr1", FieldRepName: "Rahul Kumar", Date: "2024-03-14", VisitCount: 0, Expense: expense("mr1", "2024-03-14", 500, 200, 0), Status: domain.ApprovalStatusPending},
			{ID: "a2", FieldRepID: "mr2", FieldRepName: "Pooja Sharma", Date: "2024-03-01", VisitCount: 0, Expense: expense("mr2", "2024-03-01", 500, 300, 0), Status: domain.ApprovalStatusApproved, ApprovedBy: "Admin", ApprovedAt: "2024-03-02"},
		},
	}
}

// memoryRepos returns repositories over a fresh in-memory copy of testDataset.
func memoryRepos() service.Repositories {
	store := memory.NewStore()
	store.Load(testDataset(), nil)
	return service.Repositories{
		Doctors:    memory.NewDoctorRepo(store),
		Products:   memory.NewProductRepo(store),
		FieldReps:  memory.NewFieldRepRepo(store),
		Visits:     memory.NewVisitRepo(store),
		ShopVisits: memory.NewShopVisitRepo(store),
		Approvals:  memory.NewApprovalRepo(store),
		Users:      memory.NewUserRepo(store),
		Tasks:      memory.NewTaskRepo(store),
	}
}

// interleavingApprovals runs between once, right after the first read of an
// approval, so a test can land a competing write between a service's read
// and its own write.
type interleavingApprovals struct {
	port.ApprovalRepository
	once    sync.Once
	between func()
}

func (r *interleavingApprovals) GetByID(ctx context.Context, id string) (*domain.DailyApproval, error) {
	a, err := r.ApprovalRepository.GetByID(ctx, id)
	r.once.Do(r.between)
	return a, err
}

func (r *interleavingApprovals) GetByFieldRepAndDate(ctx context.Context, fieldRepID, date string) (*domain.DailyApproval, error) {
	a, err := r.ApprovalRepository.GetByFieldRepAndDate(ctx, fieldRepID, date)
	r.once.Do(r.between)
	return a, err
}

// approveInStore approves id directly through repo, as a second admin would.
func approveInStore(repo port.ApprovalRepository, id string) {
	a, err := repo.GetByID(context.Background(), id)
	if err != nil {
		panic(err)
	}
	if err := a.Approve("Admin", testToday); err != nil {
		panic(err)
	}
	if err := repo.Decide(context.Background(), a); err != nil {
		panic(err)
	}
}
