package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scholarstream/scholarstream/internal/app/models"
	"github.com/scholarstream/scholarstream/internal/app/models/dto"
	"github.com/scholarstream/scholarstream/internal/app/services"
	"github.com/scholarstream/scholarstream/internal/middleware"
	"github.com/scholarstream/scholarstream/internal/pkg/helpers"
)

// ScholarshipController handles scholarship listing endpoints
type ScholarshipController struct {
	scholarshipService services.ScholarshipService
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService services.ScholarshipService) *ScholarshipController {
	return &ScholarshipController{
		scholarshipService: scholarshipService,
	}
}

// Create publishes a new scholarship listing
// @Summary Create a scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Scholarship true "Scholarship data"
// @Success 201 {object} dto.CreatedScholarshipResponse
// @Failure 400 {object} dto.MessageResponse "Validation error"
// @Failure 403 {object} dto.MessageResponse "Forbidden"
// @Router /create-scholarship [post]
func (c *ScholarshipController) Create(ctx *gin.Context) {
	var scholarship models.Scholarship
	if err := ctx.ShouldBindJSON(&scholarship); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid scholarship payload"})
		return
	}

	if ident, ok := middleware.IdentityFromContext(ctx); ok {
		email := ident.Email
		scholarship.PostedByEmail = &email
	}

	id, err := c.scholarshipService.CreateScholarship(ctx, &scholarship)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedScholarshipResponse{
		ScholarshipID: id,
		Message:       "Scholarship Posted Successfully.",
	})
}

// List returns a paginated page of scholarships, newest updates first
// @Summary List scholarships
// @Tags scholarships
// @Produce json
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ScholarshipListResponse
// @Router /scholarships [get]
func (c *ScholarshipController) List(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	result, err := c.scholarshipService.ListScholarships(ctx, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// ListSorted returns all scholarships ordered by a whitelisted field
// @Summary List scholarships sorted by a field
// @Tags scholarships
// @Produce json
// @Param sort query string true "One of scholarshipCategory, universityWorldRank, degree, tuitionFees"
// @Success 200 {array} models.Scholarship
// @Failure 400 {object} dto.MessageResponse "Unsupported sort field"
// @Router /filtered [get]
func (c *ScholarshipController) ListSorted(ctx *gin.Context) {
	sortField := ctx.Query("sort")

	scholarships, err := c.scholarshipService.ListScholarshipsSorted(ctx, sortField)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, scholarships)
}

// Search performs a case-insensitive substring search
// @Summary Search scholarships
// @Description Matches the query against scholarship name, university name, country, city and degree
// @Tags scholarships
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} models.Scholarship
// @Failure 400 {object} dto.MessageResponse "Empty query"
// @Router /searched [get]
func (c *ScholarshipController) Search(ctx *gin.Context) {
	query := ctx.Query("q")

	scholarships, err := c.scholarshipService.SearchScholarships(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, scholarships)
}

// Details returns a single scholarship by ID
// @Summary Get scholarship details
// @Tags scholarships
// @Produce json
// @Param id path int true "Scholarship ID"
// @Success 200 {object} models.Scholarship
// @Failure 404 {object} dto.MessageResponse "Scholarship not found"
// @Router /scholarship-details/{id} [get]
func (c *ScholarshipController) Details(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Scholarship ID must be a valid number"})
		return
	}

	scholarship, err := c.scholarshipService.GetScholarshipByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, scholarship)
}

// Update applies a partial update to a scholarship
// @Summary Update a scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Scholarship ID"
// @Param request body models.ScholarshipUpdate true "Fields to change"
// @Success 200 {object} models.Scholarship
// @Failure 404 {object} dto.MessageResponse "Scholarship not found"
// @Router /update-scholarship/{id} [patch]
func (c *ScholarshipController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Scholarship ID must be a valid number"})
		return
	}

	var update models.ScholarshipUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid update payload"})
		return
	}

	if err := c.scholarshipService.UpdateScholarship(ctx, id, &update); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	scholarship, err := c.scholarshipService.GetScholarshipByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, scholarship)
}

// Delete removes a scholarship listing
// @Summary Delete a scholarship
// @Tags scholarships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Scholarship ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse "Scholarship not found"
// @Router /scholarships/{id} [delete]
func (c *ScholarshipController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Scholarship ID must be a valid number"})
		return
	}

	if err := c.scholarshipService.DeleteScholarship(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Scholarship deleted."})
}

func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}
