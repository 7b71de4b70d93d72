package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/Xebarter/Manziz/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps the application error taxonomy onto HTTP statuses. Validation
// failures carry the full field map so forms can attribute every violation.
func Error(c *gin.Context, err error) {
	var (
		vErr *apperr.ValidationError
		aErr *apperr.AuthError
		gErr *apperr.GatewayError
		nErr *apperr.NetworkError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "validation failed", "fields": vErr.Fields})
	case errors.Is(err, apperr.ErrEmptyCart):
		BadRequest(c, "cart is empty")
	case errors.Is(err, apperr.ErrNotFound):
		NotFound(c, "not found")
	case errors.As(err, &aErr):
		Unauthorized(c, aErr.Reason)
	case errors.As(err, &gErr):
		log.Printf("gateway error: %v", gErr)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "payment provider error, please try again"})
	case errors.As(err, &nErr):
		log.Printf("network error: %v", nErr)
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "service temporarily unreachable, please retry"})
	default:
		log.Printf("internal error: %v", err)
		ServerError(c, err)
	}
}
