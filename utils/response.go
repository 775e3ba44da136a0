package utils

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Error writes the standard JSON error body. A stack trace is attached only
// in debug mode so production responses never leak internals.
func Error(ctx *gin.Context, status int, message string) {
	body := gin.H{"message": message}
	if gin.Mode() == gin.DebugMode {
		body["stack"] = string(debug.Stack())
	}
	ctx.JSON(status, body)
}
