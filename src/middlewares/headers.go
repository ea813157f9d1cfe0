package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func SecureHeaders(ctx *gin.Context) {
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("X-Frame-Options", "DENY")
}

func RequestID(ctx *gin.Context) {
	id := ctx.GetHeader("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Set("request_id", id)
	ctx.Header("X-Request-ID", id)
}
