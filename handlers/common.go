package handlers

import (
	"net/http"

	"gallery/services"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Error string `json:"error"`
}

var (
	OKResponse = Response{}
)

// Abort maps a service error onto the HTTP status the clients expect.
func Abort(c *gin.Context, err error) {
	switch services.KindOf(err) {
	case services.KindInvalidInput:
		c.JSON(http.StatusBadRequest, Response{err.Error()})
	case services.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, Response{err.Error()})
	case services.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
	case services.KindNotFound:
		c.JSON(http.StatusNotFound, Response{err.Error()})
	case services.KindConflict:
		c.JSON(http.StatusConflict, Response{err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
	}
}
