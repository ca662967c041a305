package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response represents a standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error sends an error response. err may be nil.
func Error(c *gin.Context, code int, message string, err error) {
	resp := Response{
		Code:    code,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(code, resp)
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string, err error) {
	Error(c, http.StatusInternalServerError, message, err)
}
