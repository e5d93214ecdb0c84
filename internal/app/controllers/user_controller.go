package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/scholarstream/scholarstream/internal/app/models/dto"
	"github.com/scholarstream/scholarstream/internal/app/services"
	"github.com/scholarstream/scholarstream/internal/middleware"
	"github.com/scholarstream/scholarstream/internal/pkg/helpers"
)

// UserController handles registration and role operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register handles first-time user registration
// @Summary Register the authenticated identity
// @Description Creates the platform account for the verified identity with the default student role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterRequest false "Optional profile fields"
// @Success 201 {object} dto.MessageResponse "Registration successful"
// @Success 200 {object} dto.MessageResponse "User already exists"
// @Failure 401 {object} dto.MessageResponse "Unauthorized"
// @Router /registration [post]
func (c *UserController) Register(ctx *gin.Context) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "unauthorized access."})
		return
	}

	// Body is optional; only extra profile fields come from it.
	var req dto.RegisterRequest
	_ = ctx.ShouldBindJSON(&req)

	created, err := c.userService.Register(ctx, ident, req.PhotoURL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "user already exists"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Registration Successful."})
}

// GetUserRole returns the stored user record for an email
// @Summary Get a user's role record
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} models.User
// @Failure 404 {object} dto.MessageResponse "User not found"
// @Router /users/role/{email} [get]
func (c *UserController) GetUserRole(ctx *gin.Context) {
	email := ctx.Param("email")

	user, err := c.userService.GetUserByEmail(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// ListUsers returns a page of registered users
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.UserListResponse
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	users, err := c.userService.ListUsers(ctx, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// UpdateUserRole changes a user's role
// @Summary Change a user's role
// @Description Sets the role for a user; admin only
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateRoleRequest true "New role"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Invalid role or ID"
// @Failure 403 {object} dto.MessageResponse "Forbidden"
// @Failure 404 {object} dto.MessageResponse "User not found"
// @Router /users/role/{id} [patch]
func (c *UserController) UpdateUserRole(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "User ID must be a valid number"})
		return
	}

	var req dto.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid role payload"})
		return
	}

	if err := c.userService.UpdateUserRole(ctx, id, req.Role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Role updated."})
}
