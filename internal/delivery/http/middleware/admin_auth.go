package middleware

import (
	"context"
	"net/http"
	"standeal-backend/internal/delivery/http/response"
	"standeal-backend/internal/domain"
	"standeal-backend/pkg/security"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminAuthMiddleware guards the lead lists with an HS256 bearer token.
// Without a configured secret the lists are switched off entirely.
func AdminAuthMiddleware(secret string, secLog *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			response.Error(c, http.StatusServiceUnavailable, "Acces administrativ neconfigurat", nil)
			c.Abort()
			return
		}

		tokenString, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenString == "" {
			denyAdmin(c, secLog, "missing_token")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			denyAdmin(c, secLog, "invalid_token")
			return
		}

		subject, _ := token.Claims.GetSubject()
		if subject == "" {
			subject = "admin"
		}
		c.Set(string(domain.KeyAdminSubject), subject)
		ctx := context.WithValue(c.Request.Context(), domain.KeyAdminSubject, subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func denyAdmin(c *gin.Context, secLog *security.SecurityLogger, reason string) {
	if secLog != nil {
		secLog.LogUnauthorizedAccess(
			c.Request.Context(),
			c.ClientIP(),
			c.GetString(string(domain.KeyRequestID)),
			c.FullPath(),
			reason,
		)
	}
	response.Error(c, http.StatusUnauthorized, "Autentificare necesară", nil)
	c.Abort()
}
