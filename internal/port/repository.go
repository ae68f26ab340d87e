package port

import (
	"context"

	"mrtrack/internal/domain"
)

// DoctorRepository defines the contract for the doctor roster.
// List returns doctors in insertion order.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) error
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
	List(ctx context.Context) ([]domain.Doctor, error)
}

// ProductRepository defines the contract for the product catalogue.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProductStatus) error
}

// FieldRepRepository defines the contract for the field rep roster.
type FieldRepRepository interface {
	Create(ctx context.Context, rep *domain.FieldRep) error
	GetByID(ctx context.Context, id string) (*domain.FieldRep, error)
	List(ctx context.Context) ([]domain.FieldRep, error)
	UpdateStatus(ctx context.Context, id string, status domain.FieldRepStatus) error
}

// VisitRepository is the append-only doctor visit log.
// List returns visits in the order they were recorded.
type VisitRepository interface {
	Create(ctx context.Context, visit *domain.DoctorVisit) error
	List(ctx context.Context) ([]domain.DoctorVisit, error)
	CountByFieldRepAndDate(ctx context.Context, fieldRepID, date string) (int, error)
}

// ShopVisitRepository is the append-only shop visit log.
// An empty date matches every day.
type ShopVisitRepository interface {
	Create(ctx context.Context, visit *domain.ShopVisit) error
	List(ctx context.Context) ([]domain.ShopVisit, error)
	ListByFieldRep(ctx context.Context, fieldRepID, date string) ([]domain.ShopVisit, error)
	CountByFieldRepAndDate(ctx context.Context, fieldRepID, date string) (int, error)
}

// ApprovalRepository persists daily approvals together with their expense.
// There is at most one approval per rep per day. Every write after Create
// applies only while the stored approval is still pending, so a decided day
// can never be reopened by a stale copy.
type ApprovalRepository interface {
	Create(ctx context.Context, approval *domain.DailyApproval) error
	// SetExpense replaces the expense of a pending approval.
	// It returns ErrApprovalNotPending once the approval has been decided.
	SetExpense(ctx context.Context, id string, expense *domain.DailyExpense) error
	// Decide stores the status and audit fields of a decided approval.
	// It returns ErrApprovalNotPending if another decision got there first.
	Decide(ctx context.Context, approval *domain.DailyApproval) error
	// IncrementCounts adds to the activity counts of a pending rep-day.
	// A missing or decided approval is left untouched.
	IncrementCounts(ctx context.Context, fieldRepID, date string, visits, shopVisits int) error
	GetByID(ctx context.Context, id string) (*domain.DailyApproval, error)
	GetByFieldRepAndDate(ctx context.Context, fieldRepID, date string) (*domain.DailyApproval, error)
	List(ctx context.Context) ([]domain.DailyApproval, error)
}

// UserRepository defines the contract for login identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByFieldRepID(ctx context.Context, fieldRepID string) (*domain.User, error)
	SetPassword(ctx context.Context, id, passwordHash string) error
	// SetActiveForFieldRep toggles the login bound to a rep. A rep without a
	// login is not an error.
	SetActiveForFieldRep(ctx context.Context, fieldRepID string, active bool) error
}

// TaskRepository persists assigned visit tasks. List returns tasks in
// creation order.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	// Complete stores the completion of a task that is still pending.
	// It returns ErrTaskNotPending if the task was already completed.
	Complete(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}
