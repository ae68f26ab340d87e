package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "mrtrack/docs" // registers the OpenAPI document with swag

	"mrtrack/internal/domain"
	"mrtrack/internal/handler"
	"mrtrack/internal/middleware"
	"mrtrack/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Health    *handler.HealthHandler
	Doctor    *handler.DoctorHandler
	Product   *handler.ProductHandler
	FieldRep  *handler.FieldRepHandler
	Visit     *handler.VisitHandler
	Expense   *handler.ExpenseHandler
	Approval  *handler.ApprovalHandler
	Analytics *handler.AnalyticsHandler
	Report    *handler.ReportHandler
	Task      *handler.TaskHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(log *logrus.Logger, corsOrigins []string, authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT bound to a field rep for MR users
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc), middleware.FieldRepGuard())
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	doctors := protected.Group("/doctors")
	doctors.GET("", h.Doctor.List)
	doctors.GET("/nearby", h.Doctor.Nearby)
	doctors.GET("/:id", h.Doctor.GetByID)
	doctors.GET("/:id/visits", h.Doctor.Visits)
	doctors.GET("/:id/activity", h.Doctor.Activity)
	doctors.POST("", adminOnly, h.Doctor.Create)

	products := protected.Group("/products")
	products.GET("", h.Product.List)
	products.GET("/:id/promotions", h.Product.Promotions)
	products.POST("", adminOnly, h.Product.Create)
	products.PATCH("/:id/status", adminOnly, h.Product.SetStatus)

	reps := protected.Group("/field-reps")
	reps.GET("", adminOnly, h.FieldRep.List)
	reps.POST("", adminOnly, h.FieldRep.Create)
	reps.PATCH("/:id/status", adminOnly, h.FieldRep.SetStatus)
	reps.POST("/:id/reset-password", adminOnly, h.FieldRep.ResetPassword)
	reps.GET("/:id", h.FieldRep.GetByID)
	reps.GET("/:id/visits", h.FieldRep.Visits)
	reps.GET("/:id/coverage", h.FieldRep.Coverage)
	reps.GET("/:id/expenses", h.FieldRep.Expenses)
	reps.GET("/:id/expenses/summary", h.FieldRep.ExpenseSummary)

	protected.POST("/visits", h.Visit.RecordVisit)
	protected.POST("/shop-visits", h.Visit.RecordShopVisit)
	protected.GET("/shop-visits", h.Visit.ListShopVisits)
	protected.PUT("/expenses", h.Expense.Submit)

	tasks := protected.Group("/tasks")
	tasks.GET("", h.Task.List)
	tasks.GET("/agenda", h.Task.Agenda)
	tasks.POST("", adminOnly, h.Task.Assign)
	tasks.PATCH("/:id/complete", h.Task.Complete)
	tasks.DELETE("/:id", adminOnly, h.Task.Delete)

	approvals := protected.Group("/approvals")
	approvals.GET("", h.Approval.List)
	approvals.GET("/:id", h.Approval.GetByID)
	approvals.POST("/:id/approve", adminOnly, h.Approval.Approve)
	approvals.POST("/:id/reject", adminOnly, h.Approval.Reject)

	analytics := protected.Group("/analytics")
	analytics.GET("/products", adminOnly, h.Analytics.Products)
	analytics.GET("/doctors", adminOnly, h.Analytics.Doctors)
	analytics.GET("/field-reps", adminOnly, h.Analytics.FieldReps)
	analytics.GET("/dashboard", adminOnly, h.Analytics.Dashboard)
	analytics.GET("/tracking", adminOnly, h.Analytics.Tracking)
	analytics.GET("/expenses/summary", h.Analytics.ExpenseSummary)

	reports := protected.Group("/reports")
	reports.GET("/workbook", adminOnly, h.Report.Workbook)
	reports.GET("/visits.csv", h.Report.VisitsCSV)

	return r
}
