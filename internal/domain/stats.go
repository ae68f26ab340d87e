package domain

// ProductPromotionStat counts the visits that promoted a product.
type ProductPromotionStat struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Count       int    `json:"count"`
}

// DoctorBusinessStat totals the business generated across visits to a doctor.
type DoctorBusinessStat struct {
	DoctorID      string `json:"doctor_id"`
	DoctorName    string `json:"doctor_name"`
	TotalBusiness int64  `json:"total_business"`
	VisitCount    int    `json:"visit_count"`
}

// FieldRepBusinessStat totals a rep's business and the incentive it earns.
type FieldRepBusinessStat struct {
	FieldRepID    string `json:"field_rep_id"`
	FieldRepName  string `json:"field_rep_name"`
	TotalBusiness int64  `json:"total_business"`
	VisitCount    int    `json:"visit_count"`
	Incentive     int64  `json:"incentive"`
}

// DoctorDistance is a doctor annotated with the distance from a reference point.
// DistanceKm is nil when the doctor has no recorded coordinates.
type DoctorDistance struct {
	Doctor
	DistanceKm *float64 `json:"distance_km"`
}

// PromotionCounts are a product's promoting visits in three windows.
type PromotionCounts struct {
	ProductID string `json:"product_id"`
	Today     int    `json:"today"`
	Week      int    `json:"week"`
	Month     int    `json:"month"`
}

// CoverageStats summarises how much of the roster a rep has reached.
type CoverageStats struct {
	FieldRepID     string   `json:"field_rep_id"`
	DoctorsCovered int      `json:"doctors_covered"`
	TotalDoctors   int      `json:"total_doctors"`
	ProductSpread  int      `json:"product_spread"`
	MissedDoctors  []string `json:"missed_doctors"`
}

// DoctorActivity is the recency view of a doctor shown on the rep's doctor list.
type DoctorActivity struct {
	DoctorID        string `json:"doctor_id"`
	WeeklyVisits    int    `json:"weekly_visits"`
	LastVisitDate   string `json:"last_visit_date,omitempty"`
	VisitedThisWeek bool   `json:"visited_this_week"`
}

// MonthlyExpenseSummary rolls up a month of daily expenses and their approval states.
type MonthlyExpenseSummary struct {
	Month      string `json:"month"`
	FieldRepID string `json:"field_rep_id,omitempty"`
	TotalHQ    int64  `json:"total_hq"`
	TotalFare  int64  `json:"total_fare"`
	TotalOther int64  `json:"total_other"`
	Total      int64  `json:"total"`
	Approved   int    `json:"approved"`
	Pending    int    `json:"pending"`
	Rejected   int    `json:"rejected"`
	Days       int    `json:"days"`
}

// ApprovalFilter narrows the approval list. Zero values match everything.
type ApprovalFilter struct {
	Status     ApprovalStatus
	FieldRepID string
	Search     string
}

// ApprovalCounts tallies approvals by status across the whole log.
type ApprovalCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// ApprovalList is a filtered approval list with log-wide status counts.
type ApprovalList struct {
	Counts    ApprovalCounts  `json:"counts"`
	Approvals []DailyApproval `json:"approvals"`
}

// DashboardSummary backs the admin dashboard cards.
type DashboardSummary struct {
	Date              string `json:"date"`
	VisitsToday       int    `json:"visits_today"`
	ActiveFieldReps   int    `json:"active_field_reps"`
	TotalFieldReps    int    `json:"total_field_reps"`
	PendingApprovals  int    `json:"pending_approvals"`
	BusinessThisMonth int64  `json:"business_this_month"`
	ActiveProducts    int    `json:"active_products"`
	TotalDoctors      int    `json:"total_doctors"`
}

// TaskFilter narrows the task list. Zero values match everything.
// Search matches the rep or doctor name, case-insensitively.
type TaskFilter struct {
	FieldRepID string
	Status     TaskStatus
	Search     string
}

// TaskCounts tallies tasks by status within the caller's scope.
type TaskCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// TaskList is a filtered task list with scope-wide counts.
type TaskList struct {
	Counts TaskCounts `json:"counts"`
	Tasks  []Task     `json:"tasks"`
}

// TaskAgenda is a rep's view of today's and later assignments.
type TaskAgenda struct {
	Date         string `json:"date"`
	Today        []Task `json:"today"`
	Upcoming     []Task `json:"upcoming"`
	PendingToday int    `json:"pending_today"`
}

// TrackingFilter narrows the daily tracking rows. Zero values match everything.
type TrackingFilter struct {
	Territory string
	Status    TrackingStatus
	Search    string
}

// RepDay is one rep's activity on one day. FirstPunch and LastPunch are the
// earliest and latest HH:MM across the day's doctor and shop visits.
type RepDay struct {
	FieldRepID   string         `json:"field_rep_id"`
	FieldRepName string         `json:"field_rep_name"`
	Territory    string         `json:"territory"`
	Status       TrackingStatus `json:"status"`
	DoctorVisits int            `json:"doctor_visits"`
	ShopVisits   int            `json:"shop_visits"`
	FirstPunch   string         `json:"first_punch,omitempty"`
	LastPunch    string         `json:"last_punch,omitempty"`
}

// DailyTracking is the admin's live view of every rep on one day.
type DailyTracking struct {
	Date         string        `json:"date"`
	Working      int           `json:"working"`
	Reps         []RepDay      `json:"reps"`
	DoctorVisits []DoctorVisit `json:"doctor_visits"`
	ShopVisits   []ShopVisit   `json:"shop_visits"`
}
