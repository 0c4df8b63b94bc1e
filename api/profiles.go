package api

import (
	"net/http"
	"strconv"

	"github.com/avelov/flightdesk/internal/service/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service profile.ProfileUseCase
}

func NewProfileHandler(service profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Register(router *gin.RouterGroup) {
	router.GET("/:id", h.get)
}

func (h *ProfileHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
