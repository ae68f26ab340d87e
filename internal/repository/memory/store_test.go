package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrtrack/internal/analytics"
	"mrtrack/internal/domain"
	"mrtrack/internal/repository/memory"
)

func seededStore() *memory.Store {
	s := memory.NewStore()
	s.Load(&analytics.Dataset{
		Doctors:   []domain.Doctor{{ID: "d1", Name: "Dr. A", Location: &domain.GeoPoint{Lat: 19, Lng: 72}}},
		Products:  []domain.Product{{ID: "p1", Name: "P1", Status: domain.ProductStatusActive}},
		FieldReps: []domain.FieldRep{{ID: "mr1", Name: "Rahul", Username: "rahul"}},
		Visits: []domain.DoctorVisit{
			{ID: "v1", DoctorID: "d1", FieldRepID: "mr1", Date: "2024-01-10", ProductsPromoted: []string{"p1"}},
		},
		Approvals: []domain.DailyApproval{
			{ID: "a1", FieldRepID: "mr1", Date: "2024-01-10", Status: domain.ApprovalStatusPending,
				Expense: &domain.DailyExpense{ID: "e1", HQAllowance: 500, TotalExpense: 500}},
		},
	}, []domain.User{{ID: "u1", Username: "Admin", Role: domain.RoleAdmin, IsActive: true}})
	return s
}

func TestDoctorRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewDoctorRepo(seededStore())

	d, err := repo.GetByID(ctx, "d1")
	require.NoError(t, err)
	d.Location.Lat = 0

	again, err := repo.GetByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 19.0, again.Location.Lat)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repo.Create(ctx, &domain.Doctor{ID: "d1"}), domain.ErrDuplicateID)
	require.NoError(t, repo.Create(ctx, &domain.Doctor{ID: "d2"}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "d2", all[1].ID)
}

func TestFieldRepRepo_DuplicateUsername(t *testing.T) {
	repo := memory.NewFieldRepRepo(seededStore())
	err := repo.Create(context.Background(), &domain.FieldRep{ID: "mr9", Username: "rahul"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestVisitRepo_AppendOnlyOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewVisitRepo(seededStore())

	require.NoError(t, repo.Create(ctx, &domain.DoctorVisit{ID: "v2", Date: "2023-12-01"}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.DoctorVisit{ID: "v2"}), domain.ErrDuplicateID)

	visits, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "v1", visits[0].ID)
	assert.Equal(t, "v2", visits[1].ID)

	n, err := repo.CountByFieldRepAndDate(ctx, "mr1", "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	visits[0].ProductsPromoted[0] = "mutated"
	again, _ := repo.List(ctx)
	assert.Equal(t, "p1", again[0].ProductsPromoted[0])
}

func TestShopVisitRepo_ListByFieldRep(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewShopVisitRepo(seededStore())

	require.NoError(t, repo.Create(ctx, &domain.ShopVisit{ID: "s1", FieldRepID: "mr1", Date: "2024-01-10"}))
	require.NoError(t, repo.Create(ctx, &domain.ShopVisit{ID: "s2", FieldRepID: "mr1", Date: "2024-01-11"}))
	require.NoError(t, repo.Create(ctx, &domain.ShopVisit{ID: "s3", FieldRepID: "mr2", Date: "2024-01-10"}))

	all, err := repo.ListByFieldRep(ctx, "mr1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	n, err := repo.CountByFieldRepAndDate(ctx, "mr1", "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	none, err := repo.ListByFieldRep(ctx, "mr9", "")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestApprovalRepo_DecideAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewApprovalRepo(seededStore())

	a, err := repo.GetByFieldRepAndDate(ctx, "mr1", "2024-01-10")
	require.NoError(t, err)
	require.NoError(t, a.Approve("Admin", "2024-01-11"))
	a.Expense.FareAllowance = 999

	stored, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalStatusPending, stored.Status)
	assert.Zero(t, stored.Expense.FareAllowance)

	require.NoError(t, repo.Decide(ctx, a))
	stored, err = repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalStatusApproved, stored.Status)
	assert.Equal(t, "Admin", stored.ApprovedBy)
	assert.Zero(t, stored.Expense.FareAllowance)

	err = repo.Create(ctx, &domain.DailyApproval{ID: "a2", FieldRepID: "mr1", Date: "2024-01-10"})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	assert.ErrorIs(t, repo.Decide(ctx, &domain.DailyApproval{ID: "nope"}), domain.ErrNotFound)
}

func TestApprovalRepo_DecidedDayRejectsLaterWrites(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewApprovalRepo(seededStore())

	stale, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)

	first := *stale
	require.NoError(t, first.Reject("No receipts"))
	require.NoError(t, repo.Decide(ctx, &first))

	second := *stale
	require.NoError(t, second.Approve("Admin", "2024-01-11"))
	assert.ErrorIs(t, repo.Decide(ctx, &second), domain.ErrApprovalNotPending)

	err = repo.SetExpense(ctx, "a1", &domain.DailyExpense{ID: "e1", HQAllowance: 900, TotalExpense: 900})
	assert.ErrorIs(t, err, domain.ErrApprovalNotPending)

	require.NoError(t, repo.IncrementCounts(ctx, "mr1", "2024-01-10", 1, 1))

	stored, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalStatusRejected, stored.Status)
	assert.Equal(t, "No receipts", stored.RejectionReason)
	assert.Equal(t, int64(500), stored.Expense.TotalExpense)
	assert.Zero(t, stored.VisitCount)
	assert.Zero(t, stored.ShopVisitCount)
}

func TestApprovalRepo_PendingWrites(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewApprovalRepo(seededStore())

	require.NoError(t, repo.SetExpense(ctx, "a1", &domain.DailyExpense{ID: "e1", HQAllowance: 600, TotalExpense: 600}))
	require.NoError(t, repo.IncrementCounts(ctx, "mr1", "2024-01-10", 2, 0))
	require.NoError(t, repo.IncrementCounts(ctx, "mr1", "2024-01-10", 0, 1))
	require.NoError(t, repo.IncrementCounts(ctx, "mr1", "2024-01-11", 5, 5))

	stored, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(600), stored.Expense.TotalExpense)
	assert.Equal(t, 2, stored.VisitCount)
	assert.Equal(t, 1, stored.ShopVisitCount)

	assert.ErrorIs(t, repo.SetExpense(ctx, "nope", &domain.DailyExpense{}), domain.ErrNotFound)
}

func TestUserRepo_GetByUsernameIgnoresCase(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepo(seededStore())

	u, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	assert.ErrorIs(t, repo.Create(ctx, &domain.User{ID: "u2", Username: "ADMIN"}), domain.ErrDuplicateUsername)

	_, err = repo.GetByID(ctx, "u9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatusToggles(t *testing.T) {
	ctx := context.Background()
	s := seededStore()
	products := memory.NewProductRepo(s)
	reps := memory.NewFieldRepRepo(s)

	require.NoError(t, products.UpdateStatus(ctx, "p1", domain.ProductStatusInactive))
	p, err := products.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, p.IsActive())
	assert.ErrorIs(t, products.UpdateStatus(ctx, "p9", domain.ProductStatusActive), domain.ErrNotFound)

	require.NoError(t, reps.UpdateStatus(ctx, "mr1", domain.FieldRepStatusInactive))
	rep, err := reps.GetByID(ctx, "mr1")
	require.NoError(t, err)
	assert.False(t, rep.IsActive())
	assert.ErrorIs(t, reps.UpdateStatus(ctx, "mr9", domain.FieldRepStatusActive), domain.ErrNotFound)
}

func TestUserRepo_FieldRepLogin(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepo(seededStore())
	require.NoError(t, repo.Create(ctx, &domain.User{ID: "u2", Username: "rahul", FieldRepID: "mr1", Role: domain.RoleMR, IsActive: true}))

	u, err := repo.GetByFieldRepID(ctx, "mr1")
	require.NoError(t, err)
	assert.Equal(t, "u2", u.ID)

	_, err = repo.GetByFieldRepID(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.SetPassword(ctx, "u2", "new-hash"))
	require.NoError(t, repo.SetActiveForFieldRep(ctx, "mr1", false))
	require.NoError(t, repo.SetActiveForFieldRep(ctx, "mr9", false))
	u, err = repo.GetByUsername(ctx, "RAHUL")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", u.PasswordHash)
	assert.False(t, u.IsActive)

	assert.ErrorIs(t, repo.SetPassword(ctx, "missing", "x"), domain.ErrNotFound)
}

func TestTaskRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepo(memory.NewStore())

	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "t1", FieldRepID: "mr1", Status: domain.TaskStatusPending}))
	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "t2", FieldRepID: "mr1", Status: domain.TaskStatusPending}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.Task{ID: "t1"}), domain.ErrDuplicateID)

	stale, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	require.NoError(t, stale.Complete("2024-03-15"))
	require.NoError(t, repo.Complete(ctx, stale))
	assert.ErrorIs(t, repo.Complete(ctx, stale), domain.ErrTaskNotPending)
	assert.ErrorIs(t, repo.Complete(ctx, &domain.Task{ID: "t9"}), domain.ErrNotFound)

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, got.Status)
	assert.Equal(t, "2024-03-15", got.CompletedAt)

	require.NoError(t, repo.Delete(ctx, "t1"))
	assert.ErrorIs(t, repo.Delete(ctx, "t1"), domain.ErrNotFound)
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "t2", all[0].ID)
}

func TestShopVisitRepo_List(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	s.Load(&analytics.Dataset{ShopVisits: []domain.ShopVisit{{ID: "s1", FieldRepID: "mr1", Date: "2024-01-10"}}}, nil)
	repo := memory.NewShopVisitRepo(s)
	require.NoError(t, repo.Create(ctx, &domain.ShopVisit{ID: "s2", FieldRepID: "mr2", Date: "2024-01-11"}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "s1", all[0].ID)
}
