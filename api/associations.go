package api

import (
	"net/http"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/PilarGuataquira/202214-BaseProject/internal/service/associations"
	"github.com/gin-gonic/gin"
)

// AssociationHandler serves the airports of one airline. It shares the
// airlines group, so the airline id is bound as :id.
type AssociationHandler struct {
	service associations.AssociationUseCase
}

func NewAssociationHandler(service associations.AssociationUseCase) *AssociationHandler {
	return &AssociationHandler{service: service}
}

func (h *AssociationHandler) Register(router *gin.RouterGroup) {
	router.GET("/:id/airports", h.list)
	router.PUT("/:id/airports", h.replace)
	router.POST("/:id/airports/:airportId", h.add)
	router.GET("/:id/airports/:airportId", h.find)
	router.DELETE("/:id/airports/:airportId", h.remove)
}

func (h *AssociationHandler) add(c *gin.Context) {
	airline, err := h.service.AddAirport(c.Request.Context(), c.Param("id"), c.Param("airportId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirlineResponse(*airline))
}

func (h *AssociationHandler) find(c *gin.Context) {
	airport, err := h.service.FindAirport(c.Request.Context(), c.Param("id"), c.Param("airportId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirportResponse(*airport))
}

func (h *AssociationHandler) list(c *gin.Context) {
	list, err := h.service.ListAirports(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirportResponses(list))
}

func (h *AssociationHandler) replace(c *gin.Context) {
	var refs []airportRef
	if err := c.ShouldBindJSON(&refs); err != nil {
		writeBindError(c, err)
		return
	}

	requested := make([]domain.Airport, 0, len(refs))
	for _, ref := range refs {
		requested = append(requested, domain.Airport{ID: ref.ID})
	}

	airline, err := h.service.ReplaceAirports(c.Request.Context(), c.Param("id"), requested)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirlineResponse(*airline))
}

func (h *AssociationHandler) remove(c *gin.Context) {
	if err := h.service.RemoveAirport(c.Request.Context(), c.Param("id"), c.Param("airportId")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
