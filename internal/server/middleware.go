package server

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/freightdesk/tariff/internal/identity"
	"github.com/freightdesk/tariff/pkg/telemetry"
	"github.com/freightdesk/tariff/pkg/telemetry/correlation"
	"go.uber.org/zap"
)

const (
	HeaderUserID        = "X-User-ID"
	HeaderUserRole      = "X-User-Role"
	HeaderCorrelationID = "X-Correlation-ID"
)

// CorrelationMiddleware propagates or mints the request correlation id.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if id := strings.TrimSpace(c.GetHeader(HeaderCorrelationID)); id != "" {
			ctx = correlation.ContextWithCorrelationID(ctx, id)
		}
		ctx, id := correlation.EnsureCorrelationID(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderCorrelationID, id)
		c.Next()
	}
}

func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("correlation_id", correlation.ExtractCorrelationID(c.Request.Context())),
		)
	}
}

func MetricsMiddleware(metrics *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveAPIRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}

// ActorContext trusts the authenticating gateway and lifts the forwarded
// identity headers into request context.
func (s *Server) ActorContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		rawRole := strings.TrimSpace(c.GetHeader(HeaderUserRole))
		if rawID == "" || rawRole == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		role := identity.Role(rawRole)
		switch role {
		case identity.RoleAdmin, identity.RoleStaff, identity.RoleCustomer:
		default:
			AbortWithError(c, ErrUnauthorized)
			return
		}

		ctx := identity.WithActor(c.Request.Context(), identity.Actor{ID: id, Role: role})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (s *Server) RequireRole(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := identity.ActorFromContext(c.Request.Context())
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		AbortWithError(c, ErrForbidden)
	}
}
