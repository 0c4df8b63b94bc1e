package api

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/avelov/flightdesk/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// newValidator reports failures under json field names so validation
// details match the payload the caller sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationDetail renders validator failures as a field → reason map.
func validationDetail(errs validator.ValidationErrors) gin.H {
	fields := gin.H{}
	for _, err := range errs {
		name := err.Field()
		switch err.ActualTag() {
		case "required":
			fields[name] = "is required"
		case "gt":
			fields[name] = "must be a positive integer"
		case "datetime=2006-01-02":
			fields[name] = "must be a date in format 2006-01-02"
		default:
			fields[name] = "is not valid"
		}
	}
	return fields
}

// respondError translates service errors into the HTTP outcomes the
// boundary defines: not-found, per-field validation, uniqueness
// conflict on username, and fatal integrity faults.
func respondError(c *gin.Context, err error) {
	var fieldErr *domain.FieldError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"username": "already taken"}})
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Reason}})
	case errors.Is(err, domain.ErrFlightIntegrity):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// unknownFieldName pulls the offending key out of an unknown-field
// decode error ('json: unknown field "date"').
func unknownFieldName(err error) string {
	msg := err.Error()
	const marker = `unknown field "`
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	rest := msg[i+len(marker):]
	if j := strings.Index(rest, `"`); j >= 0 {
		return rest[:j]
	}
	return ""
}
