package middlewares

import (
	"net/http"

	"transferd/src/types"
	"transferd/src/utils"

	"github.com/gin-gonic/gin"
)

func setClaims(ctx *gin.Context, claims *types.Claims) {
	ctx.Set("id", claims.UserID)
	ctx.Set("email", claims.Email)
	ctx.Set("role", claims.Role)
}

func Authenticated(ctx *gin.Context) {
	claims, err := utils.UserFromRequest(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	setClaims(ctx, claims)
}

func AdminOnly(ctx *gin.Context) {
	claims, err := utils.UserFromRequest(ctx)
	if err != nil || claims.Role != types.ROLE_ADMIN {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}
	setClaims(ctx, claims)
}
