package handler

import "mrtrack/internal/domain"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"rahul.kumar"`
	Password string `json:"password" binding:"required" example:"temp123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateDoctorRequest represents the add doctor request body.
type CreateDoctorRequest struct {
	ID             string           `json:"id" example:"d9"`
	Name           string           `json:"name" binding:"required" example:"Dr. Anil Rao"`
	Qualification  string           `json:"qualification" example:"MBBS, MD"`
	Specialization string           `json:"specialization" example:"Cardiologist"`
	Town           string           `json:"town" example:"Mumbai"`
	Area           string           `json:"area" example:"Andheri West"`
	Phone          string           `json:"phone" example:"+91 98200 11223"`
	Email          string           `json:"email" example:"anil.rao@example.com"`
	Location       *domain.GeoPoint `json:"location"`
}

// CreateProductRequest represents the add product request body.
type CreateProductRequest struct {
	ID          string `json:"id" example:"p7"`
	Name        string `json:"name" binding:"required" example:"Gastrowell 40"`
	Category    string `json:"category" example:"Gastro"`
	Status      string `json:"status" example:"active" enums:"active,inactive"`
	Description string `json:"description" example:"Pantoprazole 40mg tablets"`
}

// CreateFieldRepRequest represents the onboard field rep request body.
type CreateFieldRepRequest struct {
	ID        string `json:"id" example:"mr5"`
	Name      string `json:"name" binding:"required" example:"Anita Nair"`
	Username  string `json:"username" binding:"required" example:"anita.nair"`
	Email     string `json:"email" example:"anita.nair@example.com"`
	Phone     string `json:"phone" example:"+91 98100 44556"`
	Territory string `json:"territory" example:"Mumbai South"`
	HQ        string `json:"hq" example:"Mumbai"`
	Password  string `json:"password" example:"welcome1"`
}

// RecordVisitRequest represents the log doctor visit request body.
type RecordVisitRequest struct {
	FieldRepID          string                 `json:"field_rep_id" example:"mr1"`
	DoctorID            string                 `json:"doctor_id" binding:"required" example:"d1"`
	Date                string                 `json:"date" example:"2024-03-15"`
	Time                string                 `json:"time" example:"10:30"`
	Location            domain.GeoPoint        `json:"location"`
	Notes               string                 `json:"notes" example:"Discussed new dosage chart"`
	ProductsPromoted    []string               `json:"products_promoted" example:"p1,p2"`
	BusinessGenerated   int64                  `json:"business_generated" example:"4500"`
	ProductWiseBusiness []domain.ProductAmount `json:"product_wise_business"`
}

// RecordShopVisitRequest represents the log shop visit request body.
type RecordShopVisitRequest struct {
	FieldRepID    string `json:"field_rep_id" example:"mr1"`
	ShopName      string `json:"shop_name" binding:"required" example:"Apollo Pharmacy"`
	Location      string `json:"location" example:"Andheri West"`
	Date          string `json:"date" example:"2024-03-15"`
	Time          string `json:"time" example:"16:00"`
	Notes         string `json:"notes" example:"Stock check"`
	ContactPerson string `json:"contact_person" example:"Mr. Shah"`
}

// SubmitExpenseRequest represents the daily expense request body.
type SubmitExpenseRequest struct {
	FieldRepID        string `json:"field_rep_id" example:"mr1"`
	Date              string `json:"date" example:"2024-03-15"`
	HQAllowance       int64  `json:"hq_allowance" example:"300"`
	FareAllowance     int64  `json:"fare_allowance" example:"250"`
	OtherExpenses     int64  `json:"other_expenses" example:"150"`
	OtherExpensesNote string `json:"other_expenses_note" example:"Parking"`
}

// RejectRequest represents the reject approval request body.
type RejectRequest struct {
	Reason string `json:"reason" example:"Fare allowance exceeds policy"`
}

// SetStatusRequest represents the status toggle body for products and field reps.
type SetStatusRequest struct {
	Status string `json:"status" binding:"required" example:"inactive" enums:"active,inactive"`
}

// AssignTaskRequest represents the assign task request body.
type AssignTaskRequest struct {
	FieldRepID string `json:"field_rep_id" binding:"required" example:"mr1"`
	DoctorID   string `json:"doctor_id" binding:"required" example:"d3"`
	Date       string `json:"date" example:"2024-03-18"`
	Time       string `json:"time" example:"11:00"`
	Notes      string `json:"notes" example:"Follow up on sample request"`
}

// --- Response Types ---

// Response is the generic success envelope used in swagger annotations.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
	Meta    *ListMeta   `json:"meta,omitempty"`
}

// ErrorResponseBody is the error envelope used in swagger annotations.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
