package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mrtrack/internal/domain"
	"mrtrack/internal/service"
)

// ProductHandler handles the product catalogue.
type ProductHandler struct {
	masterService    service.MasterService
	analyticsService service.AnalyticsService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(masterService service.MasterService, analyticsService service.AnalyticsService) *ProductHandler {
	return &ProductHandler{masterService: masterService, analyticsService: analyticsService}
}

// List handles GET /api/v1/products
// @Summary List products
// @Description Field reps only see products that are currently promoted.
// @Tags products
// @Produce json
// @Success 200 {object} Response{data=[]domain.Product}
// @Security BearerAuth
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	actor, ok := extractActor(c)
	if !ok {
		return
	}

	products, err := h.masterService.ListProducts(c.Request.Context(), actor)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, products, len(products))
}

// Create handles POST /api/v1/products
// @Summary Add a product
// @Tags products
// @Accept json
// @Produce json
// @Param body body CreateProductRequest true "Product"
// @Success 201 {object} Response{data=domain.Product}
// @Failure 400 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var input service.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.masterService.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, product)
}

// SetStatus handles PATCH /api/v1/products/:id/status
// @Summary Start or stop promoting a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body SetStatusRequest true "Status"
// @Success 200 {object} Response{data=domain.Product}
// @Failure 400 {object} ErrorResponseBody
// @Failure 404 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /products/{id}/status [patch]
func (h *ProductHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.masterService.SetProductStatus(c.Request.Context(), c.Param("id"), domain.ProductStatus(req.Status))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, product)
}

// Promotions handles GET /api/v1/products/:id/promotions
// @Summary Promoting visits today, this week and this month
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} Response{data=domain.PromotionCounts}
// @Failure 401 {object} ErrorResponseBody
// @Security BearerAuth
// @Router /products/{id}/promotions [get]
func (h *ProductHandler) Promotions(c *gin.Context) {
	counts, err := h.analyticsService.ProductPromotions(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, counts)
}
