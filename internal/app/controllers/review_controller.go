package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scholarstream/scholarstream/internal/app/models/dto"
	"github.com/scholarstream/scholarstream/internal/app/services"
	"github.com/scholarstream/scholarstream/internal/middleware"
)

// ReviewController handles scholarship reviews
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// Create posts a review for a scholarship
// @Summary Create a review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReviewRequest true "Review data"
// @Success 201 {object} dto.CreatedReviewResponse
// @Failure 400 {object} dto.MessageResponse "Invalid rating"
// @Router /reviews [post]
func (c *ReviewController) Create(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "unauthorized access."})
		return
	}

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid review payload"})
		return
	}

	id, err := c.reviewService.CreateReview(ctx, ident, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreatedReviewResponse{
		ReviewID: id,
		Message:  "Review added.",
	})
}

// List returns reviews, optionally scoped to one scholarship
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param scholarshipId query int false "Scholarship ID"
// @Success 200 {array} models.Review
// @Router /reviews [get]
func (c *ReviewController) List(ctx *gin.Context) {
	var scholarshipID *int64
	if raw := ctx.Query("scholarshipId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Scholarship ID must be a valid number"})
			return
		}
		scholarshipID = &id
	}

	reviews, err := c.reviewService.ListReviews(ctx, scholarshipID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// Delete removes a review
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse "Review not found"
// @Router /reviews/{id} [delete]
func (c *ReviewController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Review ID must be a valid number"})
		return
	}

	if err := c.reviewService.DeleteReview(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Review deleted."})
}
