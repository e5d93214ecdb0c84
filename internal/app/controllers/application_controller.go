package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scholarstream/scholarstream/internal/app/models/dto"
	"github.com/scholarstream/scholarstream/internal/app/services"
	"github.com/scholarstream/scholarstream/internal/middleware"
)

// ApplicationController handles the payment and application workflow
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// CreateCheckoutSession starts a hosted checkout for an application fee
// @Summary Create a payment checkout session
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckoutSessionRequest true "Scholarship and fee"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} dto.PaymentResponse "Invalid fee"
// @Failure 502 {object} dto.PaymentResponse "Payment provider unavailable"
// @Router /payment-checkout-session [post]
func (c *ApplicationController) CreateCheckoutSession(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.PaymentResponse{Success: false, Message: "unauthorized access."})
		return
	}

	var req dto.CheckoutSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.PaymentResponse{Success: false, Message: "Invalid checkout payload"})
		return
	}

	url, err := c.applicationService.CreateCheckoutSession(ctx, ident, req)
	if err != nil {
		middleware.HandlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PaymentResponse{Success: true, URL: url})
}

// SavePendingSession records an unpaid application before checkout completes
// @Summary Save a pending application
// @Description Idempotent; a repeat call for the same scholarship returns the existing application
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckoutSessionRequest true "Scholarship and fee"
// @Success 200 {object} dto.SavedSessionResponse
// @Router /save-payment-session [post]
func (c *ApplicationController) SavePendingSession(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.PaymentResponse{Success: false, Message: "unauthorized access."})
		return
	}

	var req dto.CheckoutSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.PaymentResponse{Success: false, Message: "Invalid session payload"})
		return
	}

	applicationID, created, err := c.applicationService.SavePendingSession(ctx, ident, req)
	if err != nil {
		middleware.HandlePaymentError(ctx, err)
		return
	}

	message := "Payment session saved."
	if !created {
		message = "Payment session already saved."
	}
	ctx.JSON(http.StatusOK, dto.SavedSessionResponse{
		Success:       true,
		ApplicationID: applicationID,
		Message:       message,
	})
}

// VerifyPayment reconciles a checkout session against the stored application
// @Summary Verify a completed payment
// @Description Fetches the session from the provider and records the outcome; safe to call repeatedly
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} dto.VerifiedPaymentResponse
// @Failure 404 {object} dto.PaymentResponse "No matching application"
// @Failure 502 {object} dto.PaymentResponse "Payment provider unavailable"
// @Router /payment/verify [get]
func (c *ApplicationController) VerifyPayment(ctx *gin.Context) {
	sessionID := ctx.Query("session_id")

	application, err := c.applicationService.VerifyPayment(ctx, sessionID)
	if err != nil {
		middleware.HandlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.VerifiedPaymentResponse{
		Success:     true,
		Application: application,
	})
}

// PaymentHistory lists applications for an email, defaulting to the caller's
// @Summary Get payment history
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email query string false "Account email, defaults to the caller's"
// @Success 200 {array} models.Application
// @Router /payment-history [get]
func (c *ApplicationController) PaymentHistory(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "unauthorized access."})
		return
	}

	email := ctx.Query("email")
	if email == "" {
		email = ident.Email
	}

	applications, err := c.applicationService.History(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// ListMine lists all of the caller's applications
// @Summary List the caller's applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Application
// @Router /applications [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "unauthorized access."})
		return
	}

	applications, err := c.applicationService.History(ctx, ident.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// DeletePending cancels an unpaid application
// @Summary Delete a pending application
// @Description Only unpaid, unsubmitted applications can be removed
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param scholarshipId path int true "Scholarship ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse "No pending application for this scholarship"
// @Router /applications/{scholarshipId} [delete]
func (c *ApplicationController) DeletePending(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "unauthorized access."})
		return
	}

	scholarshipID, err := strconv.ParseInt(ctx.Param("scholarshipId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Scholarship ID must be a valid number"})
		return
	}

	if err := c.applicationService.DeletePending(ctx, ident, scholarshipID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Application deleted."})
}

// ListPaid lists all paid applications across users
// @Summary List paid applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Application
// @Router /applications/paid [get]
func (c *ApplicationController) ListPaid(ctx *gin.Context) {
	applications, err := c.applicationService.PaidApplications(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// SetFeedback attaches moderator feedback to an application
// @Summary Set application feedback
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.FeedbackRequest true "Feedback text"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse "Application not found"
// @Router /applications/feedback/{id} [patch]
func (c *ApplicationController) SetFeedback(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Application ID must be a valid number"})
		return
	}

	var req dto.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid feedback payload"})
		return
	}

	if err := c.applicationService.SetFeedback(ctx, id, req.Feedback); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Feedback saved."})
}

// FeedbackByEmail lists a user's applications that carry feedback
// @Summary List applications with feedback for a user
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param email path string true "Applicant email"
// @Success 200 {array} models.Application
// @Router /applications/feedback/{email} [get]
func (c *ApplicationController) FeedbackByEmail(ctx *gin.Context) {
	email := ctx.Param("email")

	applications, err := c.applicationService.FeedbackByEmail(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, applications)
}
