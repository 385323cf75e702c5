package resp

import (
	"errors"
	"net/http"

	"campusfood/pkg/apperr"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Error bodies are always {"error": "..."} -- the shape every client of this
// API parses.

func OK(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data gin.H) {
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"error": msg})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// Error maps the apperr taxonomy onto HTTP codes in one place so controllers
// never reinvent the mapping.
func Error(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		BadRequest(c, err.Error())
	case apperr.IsInvalidTransition(err):
		Conflict(c, err.Error())
	case errors.Is(err, apperr.ErrVendorMismatch):
		Conflict(c, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		Forbidden(c, "forbidden")
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "not found")
	default:
		ServerError(c, err)
	}
}
