package http

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/pkg/apperror"
	"github.com/JanviSingh1712/portfolio/pkg/auth"
	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

const (
	GinContextKeyOwnerID     = "ownerID"
	GinContextKeyVisitorHash = "visitorHash"
	GinContextKeyHTML        = "htmlResponse"

	visitorHashLength = 16
)

func AuthMiddleware(jwtSvc *auth.JWTService, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Error(apperror.NewUnauthorized("Authorization header is required", nil))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Error(apperror.NewUnauthorized("Invalid token format", nil))
			c.Abort()
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			log.Debug("Rejected admin token", zap.Error(err))
			c.Error(apperror.NewUnauthorized("Invalid or expired token", err))
			c.Abort()
			return
		}

		c.Set(GinContextKeyOwnerID, claims.OwnerID)
		c.Next()
	}
}

func GetOwnerIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(GinContextKeyOwnerID)
	if !ok {
		return uuid.Nil, false
	}
	ownerIDUUID, ok := ownerID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return ownerIDUUID, true
}

// ErrorMiddleware renders the last error a handler pushed with c.Error.
// Routes marked with GinContextKeyHTML get a plain status page, the rest JSON.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if status >= http.StatusInternalServerError || !errors.As(err, &appErr) {
			log.Error("Request failed", err, zap.String("path", c.Request.URL.Path), zap.Int("status", status))
		} else {
			log.Debug("Request rejected", zap.String("path", c.Request.URL.Path), zap.String("reason", appErr.Error()))
		}

		if c.GetBool(GinContextKeyHTML) {
			text := fmt.Sprintf("%d %s", status, http.StatusText(status))
			page := "<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"><title>" + text +
				"</title></head><body><h1>" + text + "</h1><p><a href=\"/\">Back to portfolio</a></p></body></html>"
			c.Data(status, "text/html; charset=utf-8", []byte(page))
			return
		}
		c.JSON(status, apperror.ToJSON(err))
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// VisitorMiddleware derives an anonymous visitor id from the client address
// and user agent. Requests carrying "DNT: 1" get no id and are not counted.
func VisitorMiddleware(salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("DNT") != "1" {
			c.Set(GinContextKeyVisitorHash, VisitorHash(salt, c.ClientIP(), c.Request.UserAgent()))
		}
		c.Next()
	}
}

func VisitorHash(salt, ip, userAgent string) string {
	sum := sha256.Sum256([]byte(salt + "|" + ip + "|" + userAgent))
	return hex.EncodeToString(sum[:])[:visitorHashLength]
}

func GetVisitorHashFromGinContext(c *gin.Context) string {
	return c.GetString(GinContextKeyVisitorHash)
}
