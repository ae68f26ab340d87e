package domain

import "strings"

// GeoPoint is a WGS-84 latitude/longitude pair in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Doctor is a prescriber on the visit roster.
type Doctor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Qualification  string    `json:"qualification"`
	Specialization string    `json:"specialization"`
	Town           string    `json:"town"`
	Area           string    `json:"area"`
	Phone          string    `json:"phone,omitempty"`
	Email          string    `json:"email,omitempty"`
	CreatedAt      string    `json:"created_at"`
	Location       *GeoPoint `json:"location,omitempty"`
}

// Product is a promoted pharmaceutical product.
type Product struct {
	ID          string        `db:"id" json:"id"`
	Name        string        `db:"name" json:"name"`
	Category    string        `db:"category" json:"category"`
	Status      ProductStatus `db:"status" json:"status"`
	Description string        `db:"description" json:"description,omitempty"`
}

// IsActive reports whether the product is currently promoted.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// FieldRep is a medical representative working a territory.
type FieldRep struct {
	ID         string         `db:"id" json:"id"`
	Name       string         `db:"name" json:"name"`
	Username   string         `db:"username" json:"username"`
	Email      string         `db:"email" json:"email"`
	Phone      string         `db:"phone" json:"phone"`
	Territory  string         `db:"territory" json:"territory"`
	HQ         string         `db:"hq" json:"hq,omitempty"`
	Status     FieldRepStatus `db:"status" json:"status"`
	JoinedDate string         `db:"joined_date" json:"joined_date"`
}

// IsActive reports whether the rep is on the active roster.
func (r *FieldRep) IsActive() bool {
	return r.Status == FieldRepStatusActive
}

// ProductAmount is one line of a visit's per-product business breakdown.
type ProductAmount struct {
	ProductID string `json:"product_id"`
	Amount    int64  `json:"amount"`
}

// DoctorVisit is an append-only record of a rep calling on a doctor.
// Date is a calendar day (YYYY-MM-DD) and BusinessGenerated is in whole rupees.
type DoctorVisit struct {
	ID                  string          `json:"id"`
	DoctorID            string          `json:"doctor_id"`
	DoctorName          string          `json:"doctor_name"`
	FieldRepID          string          `json:"field_rep_id"`
	FieldRepName        string          `json:"field_rep_name"`
	Date                string          `json:"date"`
	Time                string          `json:"time"`
	Location            GeoPoint        `json:"location"`
	Notes               string          `json:"notes,omitempty"`
	ProductsPromoted    []string        `json:"products_promoted"`
	BusinessGenerated   int64           `json:"business_generated"`
	ProductWiseBusiness []ProductAmount `json:"product_wise_business,omitempty"`
}

// Promotes reports whether productID is in the visit's promoted set.
func (v *DoctorVisit) Promotes(productID string) bool {
	for _, id := range v.ProductsPromoted {
		if id == productID {
			return true
		}
	}
	return false
}

// ShopVisit records a rep calling on a chemist or medical shop.
type ShopVisit struct {
	ID            string `db:"id" json:"id"`
	ShopName      string `db:"shop_name" json:"shop_name"`
	Location      string `db:"location" json:"location"`
	FieldRepID    string `db:"field_rep_id" json:"field_rep_id"`
	FieldRepName  string `db:"field_rep_name" json:"field_rep_name"`
	Date          string `db:"date" json:"date"`
	Time          string `db:"time" json:"time"`
	Notes         string `db:"notes" json:"notes,omitempty"`
	ContactPerson string `db:"contact_person" json:"contact_person,omitempty"`
}

// DailyExpense is one rep's claim for one calendar day.
// TotalExpense is derived; call Recompute after touching any component.
type DailyExpense struct {
	ID                string `db:"id" json:"id"`
	FieldRepID        string `db:"field_rep_id" json:"field_rep_id"`
	FieldRepName      string `db:"field_rep_name" json:"field_rep_name"`
	Date              string `db:"date" json:"date"`
	HQAllowance       int64  `db:"hq_allowance" json:"hq_allowance"`
	FareAllowance     int64  `db:"fare_allowance" json:"fare_allowance"`
	OtherExpenses     int64  `db:"other_expenses" json:"other_expenses"`
	OtherExpensesNote string `db:"other_expenses_note" json:"other_expenses_note,omitempty"`
	TotalExpense      int64  `db:"total_expense" json:"total_expense"`
}

// Recompute sets TotalExpense to the sum of its three components.
func (e *DailyExpense) Recompute() {
	e.TotalExpense = e.HQAllowance + e.FareAllowance + e.OtherExpenses
}

// DailyApproval is the per-rep, per-day report an admin signs off.
type DailyApproval struct {
	ID              string         `json:"id"`
	FieldRepID      string         `json:"field_rep_id"`
	FieldRepName    string         `json:"field_rep_name"`
	Date            string         `json:"date"`
	VisitCount      int            `json:"visit_count"`
	ShopVisitCount  int            `json:"shop_visit_count"`
	Expense         *DailyExpense  `json:"expense"`
	Status          ApprovalStatus `json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	ApprovedBy      string         `json:"approved_by,omitempty"`
	ApprovedAt      string         `json:"approved_at,omitempty"`
}

// Approve moves a pending report to approved, stamping the approver and day.
func (a *DailyApproval) Approve(approvedBy, approvedAt string) error {
	if a.Status != ApprovalStatusPending {
		return ErrApprovalNotPending
	}
	a.Status = ApprovalStatusApproved
	a.ApprovedBy = approvedBy
	a.ApprovedAt = approvedAt
	a.RejectionReason = ""
	return nil
}

// Reject moves a pending report to rejected. The reason must not be blank.
func (a *DailyApproval) Reject(reason string) error {
	if a.Status != ApprovalStatusPending {
		return ErrApprovalNotPending
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrRejectionReasonRequired
	}
	a.Status = ApprovalStatusRejected
	a.RejectionReason = reason
	a.ApprovedBy = ""
	a.ApprovedAt = ""
	return nil
}

// User is a login identity. MR users are bound to one FieldRep.
type User struct {
	ID           string   `db:"id" json:"id"`
	Username     string   `db:"username" json:"username"`
	PasswordHash string   `db:"password_hash" json:"-"`
	FullName     string   `db:"full_name" json:"full_name"`
	Role         UserRole `db:"role" json:"role"`
	FieldRepID   string   `db:"field_rep_id" json:"field_rep_id,omitempty"`
	IsActive     bool     `db:"is_active" json:"is_active"`
}

// Task is a doctor visit an admin has assigned to a rep for a given day.
type Task struct {
	ID              string     `db:"id" json:"id"`
	FieldRepID      string     `db:"field_rep_id" json:"field_rep_id"`
	FieldRepName    string     `db:"field_rep_name" json:"field_rep_name"`
	DoctorID        string     `db:"doctor_id" json:"doctor_id"`
	DoctorName      string     `db:"doctor_name" json:"doctor_name"`
	DoctorSpecialty string     `db:"doctor_specialty" json:"doctor_specialty,omitempty"`
	Date            string     `db:"date" json:"date"`
	Time            string     `db:"time" json:"time,omitempty"`
	Notes           string     `db:"notes" json:"notes,omitempty"`
	Status          TaskStatus `db:"status" json:"status"`
	AssignedBy      string     `db:"assigned_by" json:"assigned_by"`
	CreatedAt       string     `db:"created_at" json:"created_at"`
	CompletedAt     string     `db:"completed_at" json:"completed_at,omitempty"`
}

// Complete marks a pending task done on the given day.
func (t *Task) Complete(day string) error {
	if t.Status != TaskStatusPending {
		return ErrTaskNotPending
	}
	t.Status = TaskStatusCompleted
	t.CompletedAt = day
	return nil
}
