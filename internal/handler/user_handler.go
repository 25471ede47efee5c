package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/models"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/service"
	appErrors "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/errors"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/response"
)

// UserHandler exposes user endpoints.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler constructs the user handler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// RegisterRoutes mounts the user endpoints on the group.
func (h *UserHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/search", h.Search)
	g.GET("/walkers", h.Walkers)
	g.GET("/top-walkers", h.TopWalkers)
	g.GET("/owners", h.Owners)
	g.GET("/email/:email", h.GetByEmail)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.DELETE("/:id/hard", h.HardDelete)
	g.GET("/:id/dogs", h.Dogs)
	g.GET("/:id/stats", h.Stats)
}

func userFilterFromQuery(c *gin.Context) (models.UserFilter, error) {
	var filter models.UserFilter

	if role := queryString(c, "role"); role != nil {
		r := models.UserRole(*role)
		if r != models.RoleOwner && r != models.RoleWalker {
			return filter, appErrors.Clone(appErrors.ErrInvalidArgument, "role must be owner or walker")
		}
		filter.Role = &r
	}
	filter.Location = queryString(c, "location")

	active, err := queryBool(c, "is_active")
	if err != nil {
		return filter, err
	}
	filter.Active = active

	minRating, err := queryFloat(c, "min_rating")
	if err != nil {
		return filter, err
	}
	filter.MinRating = minRating

	limit, err := queryInt(c, "limit")
	if err != nil {
		return filter, err
	}
	filter.Limit = limit

	offset, err := queryInt(c, "offset")
	if err != nil {
		return filter, err
	}
	filter.Offset = offset

	return filter, nil
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param role query string false "Filter by role (owner or walker)"
// @Param location query string false "Filter by location substring"
// @Param is_active query bool false "Filter by active state"
// @Param min_rating query number false "Minimum rating"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	filter, err := userFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	users, err := h.users.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(users), users)
}

// Search godoc
// @Summary Search users by name, email, location or bio
// @Tags users
// @Produce json
// @Param q query string true "Search term"
// @Param role query string false "Restrict to a role"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	filter, err := userFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	term := c.Query("q")
	users, err := h.users.Search(c.Request.Context(), term, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SearchResults(c, term, len(users), users)
}

// Walkers godoc
// @Summary List walkers
// @Tags users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users/walkers [get]
func (h *UserHandler) Walkers(c *gin.Context) {
	filter, err := userFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	users, err := h.users.Walkers(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(users), users)
}

// TopWalkers godoc
// @Summary List the highest rated walkers
// @Tags users
// @Produce json
// @Param limit query int false "Number of walkers to return (default 10)"
// @Success 200 {object} response.Envelope
// @Router /users/top-walkers [get]
func (h *UserHandler) TopWalkers(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		response.Error(c, err)
		return
	}
	users, err := h.users.TopWalkers(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(users), users)
}

// Owners godoc
// @Summary List owners
// @Tags users
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users/owners [get]
func (h *UserHandler) Owners(c *gin.Context) {
	filter, err := userFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	users, err := h.users.Owners(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(users), users)
}

// Get godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// GetByEmail godoc
// @Summary Get a user by email
// @Tags users
// @Produce json
// @Param email path string true "Email address"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/email/{email} [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// Create godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid JSON body"))
		return
	}
	user, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User created successfully", user)
}

// Update godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body service.UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid JSON body"))
		return
	}
	user, err := h.users.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// Delete godoc
// @Summary Deactivate a user and their dogs
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "User deleted successfully")
}

// HardDelete godoc
// @Summary Permanently remove a user and their dogs
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id}/hard [delete]
func (h *UserHandler) HardDelete(c *gin.Context) {
	if err := h.users.HardDelete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "User permanently deleted")
}

// Dogs godoc
// @Summary List a user's dogs
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id}/dogs [get]
func (h *UserHandler) Dogs(c *gin.Context) {
	dogs, err := h.users.Dogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(dogs), dogs)
}

// Stats godoc
// @Summary Get a user's dog statistics
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /users/{id}/stats [get]
func (h *UserHandler) Stats(c *gin.Context) {
	report, err := h.users.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report)
}
