package middleware

import (
	"fmt"
	"strings"

	"shiftboard/config"
	"shiftboard/internal/core"
	cErr "shiftboard/internal/pkg/error"
	"shiftboard/internal/pkg/response"
	"shiftboard/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const ContextClaimsKey = "auth_claims"

// Auth 管理端 JWT 驗證。Bearer token 以 App.SecretKey 簽發（HS256），
// claims 帶帳號與角色，角色限制交給 RequireRole。
type Auth struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	config *config.Configuration
}

func NewAuth(logger *zap.Logger, trace *telemetry.Trace, config *config.Configuration) *Auth {
	return &Auth{logger: logger, trace: trace, config: config}
}

func (middleware *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))
		var cause error = nil
		meta := core.TraceAuthMiddlewareMeta{ClientIP: c.ClientIP()}

		token := middleware.readBearerToken(c)
		if token == "" {
			meta.Status = "missing_token"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause = cErr.Unauthorized("Missing bearer token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		claims := &core.Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(middleware.config.App.SecretKey), nil
		})
		if err != nil || !parsed.Valid {
			meta.Status = "invalid_token"
			middleware.trace.ApplyTraceAttributes(span, meta)
			cause = cErr.InvalidSession("Invalid or expired token")
			response.AbortWithError(c, cause)
			end(cause)
			return
		}

		meta.Account = claims.Account
		meta.Role = claims.Role
		meta.Status = "success"
		middleware.trace.ApplyTraceAttributes(span, meta)

		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()
		middleware.logger.Info("[Auth Authenticated]",
			zap.String("account", claims.Account),
			zap.String("role", claims.Role),
			zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)
		end(nil)

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// RequireRole 限制端點只允許指定角色
func (middleware *Auth) RequireRole(roles ...core.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextClaimsKey)
		claims, ok := value.(*core.Claims)
		if !exists || !ok {
			response.AbortWithError(c, cErr.Unauthorized("Missing authentication"))
			return
		}
		for _, role := range roles {
			if core.Role(claims.Role) == role {
				c.Next()
				return
			}
		}
		response.AbortWithError(c, cErr.Forbidden("forbidden: role not allowed"))
	}
}

func (middleware *Auth) readBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
