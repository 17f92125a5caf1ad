package api

import (
	"net/http"

	"github.com/PilarGuataquira/202214-BaseProject/internal/service/airlines"
	"github.com/gin-gonic/gin"
)

type AirlineHandler struct {
	service airlines.AirlineUseCase
}

func NewAirlineHandler(service airlines.AirlineUseCase) *AirlineHandler {
	return &AirlineHandler{service: service}
}

func (h *AirlineHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *AirlineHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirlineResponses(list))
}

func (h *AirlineHandler) get(c *gin.Context) {
	airline, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirlineResponse(*airline))
}

func (h *AirlineHandler) create(c *gin.Context) {
	input, ok := bindAirline(c)
	if !ok {
		return
	}
	airline, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirlineResponse(*airline))
}

func (h *AirlineHandler) update(c *gin.Context) {
	input, ok := bindAirline(c)
	if !ok {
		return
	}
	airline, err := h.service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirlineResponse(*airline))
}

func (h *AirlineHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindAirline(c *gin.Context) (airlines.AirlineInput, bool) {
	var req airlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return airlines.AirlineInput{}, false
	}
	foundedAt, err := req.foundedAt()
	if err != nil {
		writeError(c, err)
		return airlines.AirlineInput{}, false
	}
	return airlines.AirlineInput{
		Name:        req.Name,
		Description: req.Description,
		FoundedAt:   foundedAt,
		Website:     req.Website,
	}, true
}
