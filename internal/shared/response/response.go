package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Envelope statuses
const (
	StatusSuccess = "success" // normal outcome
	StatusFail    = "fail"    // client-correctable condition (not found, duplicate, bad input)
	StatusError   = "error"   // unexpected failure
)

// Envelope is the uniform JSON wrapper of every API response.
type Envelope struct {
	Status  string      `json:"status" example:"success"`
	Results *int        `json:"results,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{
		Status: StatusSuccess,
		Data:   data,
	})
}

// SuccessList writes {status, results, <key>: items}. The list key is part of the
// public contract so it is passed in rather than nested under data.
func SuccessList(c *gin.Context, key string, results int, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"status":  StatusSuccess,
		"results": results,
		key:       items,
	})
}

// SuccessStatus writes {"status":"success"} without payload.
func SuccessStatus(c *gin.Context, statusCode int) {
	c.JSON(statusCode, Envelope{Status: StatusSuccess})
}

// ID writes a bare numeric identifier as the response body.
func ID(c *gin.Context, statusCode int, id int64) {
	c.String(statusCode, strconv.FormatInt(id, 10))
}

// NoContent writes the status only.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Status:  StatusFail,
		Message: message,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Status:  StatusError,
		Message: message,
	})
}

// Common error responses
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
