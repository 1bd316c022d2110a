package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status values of the response envelope. 4xx responses carry "fail",
// 5xx responses carry "error".
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope is the standardized API response body.
type Envelope struct {
	Status  string      `json:"status"`
	Results *int        `json:"results,omitempty"`
	Message string      `json:"message,omitempty"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful JSON response with the given status code and data.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{
		Status: StatusSuccess,
		Data:   data,
	})
}

// SuccessWithCount sends a successful list response with a results count.
func SuccessWithCount(c *gin.Context, statusCode int, count int, data interface{}) {
	c.JSON(statusCode, Envelope{
		Status:  StatusSuccess,
		Results: &count,
		Data:    data,
	})
}

// SuccessWithMessage sends a successful response carrying a human message.
func SuccessWithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// SuccessWithToken sends a successful auth response with a bearer token.
func SuccessWithToken(c *gin.Context, statusCode int, token string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Status: StatusSuccess,
		Token:  token,
		Data:   data,
	})
}

// Fail sends an error response for the given error code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, Envelope{
		Status:  failStatus(statusCode),
		Message: GetMessage(code),
	})
}

// FailWithFields sends a validation error response carrying per-field details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, Envelope{
		Status:  failStatus(statusCode),
		Message: GetMessage(code),
		Data:    gin.H{"fields": fields},
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, Envelope{
		Status:  failStatus(statusCode),
		Message: GetMessage(code),
	})
}

func failStatus(statusCode int) string {
	if statusCode >= http.StatusInternalServerError {
		return StatusError
	}
	return StatusFail
}
