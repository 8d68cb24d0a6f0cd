package show

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fyyur/internal/domain"
	"fyyur/internal/pkg/response"
)

const notFoundMessage = "Show not found"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	shows := r.Group("/shows")
	{
		shows.GET("", h.List)
		shows.GET("/create", h.CreateForm)
		shows.POST("/create", h.Create)
	}
}

// List handles GET /shows
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusOK, "shows.html", list, "")
}

// CreateForm handles GET /shows/create
func (h *Handler) CreateForm(c *gin.Context) {
	response.Success(c, http.StatusOK, "show_form.html", nil, "")
}

// Create handles POST /shows/create and answers with the updated listing.
func (h *Handler) Create(c *gin.Context) {
	var req ShowRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FromError(c, domain.NewValidationError("body", "artist_id and venue_id must be numbers"), notFoundMessage)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.service.Create(ctx, req); err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}

	list, err := h.service.List(ctx)
	if err != nil {
		response.FromError(c, err, notFoundMessage)
		return
	}
	response.Success(c, http.StatusCreated, "shows.html", list, "Show was successfully listed!")
}
