package api

import (
	"net/http"

	"github.com/PilarGuataquira/202214-BaseProject/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func statusFor(err error) int {
	switch domain.Kind(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindPreconditionFailed:
		return http.StatusPreconditionFailed
	case domain.KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError hides the cause of unclassified errors from the client.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, errorResponse{StatusCode: status, Message: message})
}

func writeBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{StatusCode: http.StatusBadRequest, Message: err.Error()})
}
