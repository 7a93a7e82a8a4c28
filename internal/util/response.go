package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the payload section of the uniform envelope.
type Response map[string]interface{}

// Business error codes. Clients classify failures by this code (or the HTTP
// status), never by matching message text.
const (
	CodeOK         = 0
	CodeValidation = 40001
	CodeAuth       = 40101
	CodeNotFound   = 40401
	CodeConflict   = 40901
	CodeServer     = 50001
)

// Success writes the uniform success envelope, merging payload keys at the
// top level: {"success": true, ...payload}.
func Success(c *gin.Context, status int, message string, data Response) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes the uniform error envelope: {"success": false, "code", "message"}.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"code":    code,
		"message": msg,
	})
}

// ValidationError writes a 400 envelope enumerating every failing field.
func ValidationError(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"code":    CodeValidation,
		"message": "Validation error",
		"errors":  errs,
	})
}
