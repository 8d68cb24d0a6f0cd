package venue

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"fyyur/internal/domain"
	"fyyur/internal/pkg/response"
)

const notFoundMessage = "Venue not found"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	venues := r.Group("/venues")
	{
		venues.GET("", h.List)
		venues.POST("/search", h.Search)
		venues.GET("/create", h.CreateForm)
		venues.POST("/create", h.Create)
		venues.GET("/:id", h.Get)
		venues.DELETE("/:id", h.Delete)
		venues.GET("/:id/edit", h.EditForm)
		venues.POST("/:id/edit", h.Update)
	}
}

// List handles GET /venues
func (h *Handler) List(c *gin.Context) {
	areas, err := h.service.Directory(c.Request.Context())
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "venues.html", areas, "")
}

// Search handles POST /venues/search
func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FromError(c, domain.NewValidationError("search_term", "malformed request"), notFoundMessage)
		return
	}

	res, err := h.service.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "search_venues.html", res, "")
}

// Get handles GET /venues/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	d, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "venue.html", d, "")
}

// CreateForm handles GET /venues/create
func (h *Handler) CreateForm(c *gin.Context) {
	response.Success(c, http.StatusOK, "venue_form.html", &domain.Venue{}, "")
}

// Create handles POST /venues/create
func (h *Handler) Create(c *gin.Context) {
	req, ok := bindVenue(c)
	if !ok {
		return
	}

	d, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusCreated, "venue.html", d,
		fmt.Sprintf("Venue %s was successfully listed!", d.Name))
}

// EditForm handles GET /venues/:id/edit
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "venue_form.html", v, "")
}

// Update handles POST /venues/:id/edit
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindVenue(c)
	if !ok {
		return
	}

	d, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "venue.html", d,
		fmt.Sprintf("Venue %s was successfully updated!", d.Name))
}

// Delete handles DELETE /venues/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "home.html", gin.H{"id": id}, "Venue was successfully deleted.")
}

// parseID treats a malformed id like an absent one.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.NotFound(c, notFoundMessage)
		return 0, false
	}
	return id, true
}

func bindVenue(c *gin.Context) (VenueRequest, bool) {
	var req VenueRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FromError(c, domain.NewValidationError("body", "malformed request"), notFoundMessage)
		return req, false
	}
	if c.ContentType() != binding.MIMEJSON {
		req.SeekingTalent = c.PostForm("seeking_talent") != ""
		// the form template sends genres as one comma-separated field
		if vals := c.PostFormArray("genres"); len(vals) == 1 {
			req.Genres = domain.SplitGenres(vals[0])
		}
	}
	return req, true
}
