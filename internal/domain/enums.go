package domain

// UserRole defines who is calling the API.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleMR    UserRole = "mr"
)

// ProductStatus marks whether a product is currently promoted.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// FieldRepStatus marks whether a medical representative is on the roster.
type FieldRepStatus string

const (
	FieldRepStatusActive   FieldRepStatus = "active"
	FieldRepStatusInactive FieldRepStatus = "inactive"
)

// ApprovalStatus is the lifecycle of a rep's daily report.
// pending moves to exactly one of approved or rejected and stays there.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// ValidApprovalStatuses is used to validate status filters.
var ValidApprovalStatuses = map[ApprovalStatus]bool{
	ApprovalStatusPending:  true,
	ApprovalStatusApproved: true,
	ApprovalStatusRejected: true,
}

// IsTerminal reports whether no further transition is allowed.
func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// TaskStatus is the lifecycle of an assigned visit task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// TrackingStatus is a rep's working state on one day.
type TrackingStatus string

const (
	TrackingWorking  TrackingStatus = "working"
	TrackingOff      TrackingStatus = "off"
	TrackingInactive TrackingStatus = "inactive"
)
