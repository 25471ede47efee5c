package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/models"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/internal/service"
	appErrors "github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/errors"
	"github.com/Ry3n-Huang/PawPal-Cloud-Computing-Project/pkg/response"
)

// DogHandler exposes dog endpoints.
type DogHandler struct {
	dogs *service.DogService
}

// NewDogHandler constructs the dog handler.
func NewDogHandler(dogs *service.DogService) *DogHandler {
	return &DogHandler{dogs: dogs}
}

// RegisterRoutes mounts the dog endpoints on the group.
func (h *DogHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/search", h.Search)
	g.GET("/friendly", h.Friendly)
	g.GET("/high-energy", h.HighEnergy)
	g.GET("/senior", h.Senior)
	g.GET("/size/:size", h.BySize)
	g.GET("/energy/:level", h.ByEnergyLevel)
	g.GET("/breed/:breed", h.ByBreed)
	g.GET("/owner/:ownerId", h.ByOwner)
	g.GET("/stats/breeds", h.BreedStats)
	g.GET("/stats/sizes", h.SizeStats)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.DELETE("/:id/hard", h.HardDelete)
	g.GET("/:id/owner", h.Owner)
}

func dogFilterFromQuery(c *gin.Context) (models.DogFilter, error) {
	var filter models.DogFilter

	filter.OwnerID = queryString(c, "owner_id")
	if size := queryString(c, "size"); size != nil {
		s := models.DogSize(*size)
		switch s {
		case models.SizeSmall, models.SizeMedium, models.SizeLarge, models.SizeExtraLarge:
			filter.Size = &s
		default:
			return filter, appErrors.Clone(appErrors.ErrInvalidArgument, "size must be one of: small, medium, large, extra_large")
		}
	}
	filter.Breed = queryString(c, "breed")
	if level := queryString(c, "energy_level"); level != nil {
		e := models.EnergyLevel(*level)
		switch e {
		case models.EnergyLow, models.EnergyMedium, models.EnergyHigh:
			filter.EnergyLevel = &e
		default:
			return filter, appErrors.Clone(appErrors.ErrInvalidArgument, "energy_level must be one of: low, medium, high")
		}
	}

	friendlyDogs, err := queryBool(c, "friendly_with_dogs")
	if err != nil {
		return filter, err
	}
	filter.FriendlyWithOtherDogs = friendlyDogs

	friendlyChildren, err := queryBool(c, "friendly_with_children")
	if err != nil {
		return filter, err
	}
	filter.FriendlyWithChildren = friendlyChildren

	minAge, err := queryInt(c, "min_age")
	if err != nil {
		return filter, err
	}
	filter.MinAge = minAge

	maxAge, err := queryInt(c, "max_age")
	if err != nil {
		return filter, err
	}
	filter.MaxAge = maxAge

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
// @Summary List dogs
// @Tags dogs
// @Produce json
// @Param owner_id query string false "Filter by owner"
// @Param size query string false "Filter by size"
// @Param breed query string false "Filter by breed substring"
// @Param energy_level query string false "Filter by energy level"
// @Param friendly_with_dogs query bool false "Filter by dog friendliness"
// @Param friendly_with_children query bool false "Filter by child friendliness"
// @Param min_age query int false "Minimum age"
// @Param max_age query int false "Maximum age"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dogs [get]
func (h *DogHandler) List(c *gin.Context) {
	filter, err := dogFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dogs, err := h.dogs.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(dogs), dogs)
}

// Search godoc
// @Summary Search dogs by name, breed or temperament
// @Tags dogs
// @Produce json
// @Param q query string true "Search term"
// @Param size query string false "Restrict to a size"
// @Param energy_level query string false "Restrict to an energy level"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dogs/search [get]
func (h *DogHandler) Search(c *gin.Context) {
	filter, err := dogFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	term := c.Query("q")
	dogs, err := h.dogs.Search(c.Request.Context(), term, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SearchResults(c, term, len(dogs), dogs)
}

// Friendly godoc
// @Summary List dogs friendly with both other dogs and children
// @Tags dogs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dogs/friendly [get]
func (h *DogHandler) Friendly(c *gin.Context) {
	filter, err := dogFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dogs, err := h.dogs.Friendly(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(dogs), dogs)
}

// HighEnergy godoc
// @Summary List high-energy dogs
// @Tags dogs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dogs/high-energy [get]
func (h *DogHandler) HighEnergy(c *gin.Context) {
	filter, err := dogFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dogs, err := h.dogs.HighEnergy(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(dogs), dogs)
}

// Senior godoc
// @Summary List senior dogs
// @Tags dogs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dogs/senior [get]
func (h *DogHandler) Senior(c *gin.Context) {
	filter, err := dogFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dogs, err := h.dogs.Senior(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(dogs), dogs)
}

// BySize godoc
// @Summary List dogs of one size category
// @Tags dogs
// @Produce json
// @Param size path string true "Size (small, medium, large, extra_large)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dogs/size/{size} [get]
func (h *DogHandler) BySize(c *gin.Context) {
	filter, err := dogFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dogs, err := h.dogs.BySize(c.Request.Context(), c.Param("size"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(dogs), dogs)
}

// ByEnergyLevel godoc
// @Summary List dogs of one energy level
// @Tags dogs
// @Produce json
// @Param level path string true "Energy level (low, medium, high)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dogs/energy/{level} [get]
func (h *DogHandler) ByEnergyLevel(c *gin.Context) {
	filter, err := dogFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dogs, err := h.dogs.ByEnergyLevel(c.Request.Context(), c.Param("level"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(dogs), dogs)
}

// ByBreed godoc
// @Summary List dogs of one breed
// @Tags dogs
// @Produce json
// @Param breed path string true "Breed fragment"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dogs/breed/{breed} [get]
func (h *DogHandler) ByBreed(c *gin.Context) {
	filter, err := dogFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dogs, err := h.dogs.ByBreed(c.Request.Context(), c.Param("breed"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(dogs), dogs)
}

// ByOwner godoc
// @Summary List the dogs of one owner
// @Tags dogs
// @Produce json
// @Param ownerId path string true "Owner ID"
// @Success 200 {object} response.Envelope
// @Router /dogs/owner/{ownerId} [get]
func (h *DogHandler) ByOwner(c *gin.Context) {
	filter, err := dogFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	dogs, err := h.dogs.ByOwner(c.Request.Context(), c.Param("ownerId"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(dogs), dogs)
}

// BreedStats godoc
// @Summary Aggregate dogs per breed
// @Tags dogs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dogs/stats/breeds [get]
func (h *DogHandler) BreedStats(c *gin.Context) {
	stats, err := h.dogs.BreedStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(stats), stats)
}

// SizeStats godoc
// @Summary Aggregate dogs per size
// @Tags dogs
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dogs/stats/sizes [get]
func (h *DogHandler) SizeStats(c *gin.Context) {
	stats, err := h.dogs.SizeStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, len(stats), stats)
}

// Get godoc
// @Summary Get a dog by ID
// @Tags dogs
// @Produce json
// @Param id path string true "Dog ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dogs/{id} [get]
func (h *DogHandler) Get(c *gin.Context) {
	dog, err := h.dogs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dog)
}

// Owner godoc
// @Summary Get the owner of a dog
// @Tags dogs
// @Produce json
// @Param id path string true "Dog ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dogs/{id}/owner [get]
func (h *DogHandler) Owner(c *gin.Context) {
	owner, err := h.dogs.Owner(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, owner)
}

// Create godoc
// @Summary Register a dog
// @Tags dogs
// @Accept json
// @Produce json
// @Param dog body service.CreateDogRequest true "Dog payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dogs [post]
func (h *DogHandler) Create(c *gin.Context) {
	var req service.CreateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid JSON body"))
		return
	}
	dog, err := h.dogs.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Dog created successfully", dog)
}

// Update godoc
// @Summary Update a dog
// @Tags dogs
// @Accept json
// @Produce json
// @Param id path string true "Dog ID"
// @Param dog body service.UpdateDogRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dogs/{id} [put]
func (h *DogHandler) Update(c *gin.Context) {
	var req service.UpdateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid JSON body"))
		return
	}
	dog, err := h.dogs.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dog)
}

// Delete godoc
// @Summary Deactivate a dog
// @Tags dogs
// @Produce json
// @Param id path string true "Dog ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dogs/{id} [delete]
func (h *DogHandler) Delete(c *gin.Context) {
	if err := h.dogs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Dog deleted successfully")
}

// HardDelete godoc
// @Summary Permanently remove a dog
// @Tags dogs
// @Produce json
// @Param id path string true "Dog ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /dogs/{id}/hard [delete]
func (h *DogHandler) HardDelete(c *gin.Context) {
	if err := h.dogs.HardDelete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Dog permanently deleted")
}
