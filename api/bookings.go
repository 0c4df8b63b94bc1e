package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avelov/flightdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type BookingHandler struct {
	service  booking.BookingUseCase
	validate *validator.Validate
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service, validate: newValidator()}
}

// Register wires the booking routes. The admin group stands in for the
// privileged caller; authentication itself is owned by an outer layer.
func (h *BookingHandler) Register(router, admin *gin.RouterGroup) {
	router.GET("/:id", h.detail)
	router.PUT("/:id", h.selfUpdate)
	admin.PUT("/:id", h.staffUpdate)
}

func (h *BookingHandler) detail(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *BookingHandler) staffUpdate(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req booking.StaffUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validationDetail(verrs)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.StaffUpdate(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) selfUpdate(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	// Owners may change passenger count only. Unknown keys (date in
	// particular) reject the whole request instead of being ignored.
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	var req booking.SelfUpdateInput
	if err := dec.Decode(&req); err != nil {
		if field := unknownFieldName(err); field != "" {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{field: "is not writable"}})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validationDetail(verrs)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.SelfUpdate(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
