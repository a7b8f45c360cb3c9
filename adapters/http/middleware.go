package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sammy-mbugua/portfolio/pkg/apperror"
	"github.com/sammy-mbugua/portfolio/pkg/auth"
	"github.com/sammy-mbugua/portfolio/pkg/logger"
)

const (
	GinContextKeyUserID = "userID"
	// GinContextKeyWantsJSON marks requests whose errors must be answered in JSON.
	GinContextKeyWantsJSON = "wantsJSON"
)

func AuthMiddleware(jwtSvc *auth.JWTService, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			log.Debug("Rejected admin token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyUserID, claims.UserID)
		c.Next()
	}
}

func GetUserIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(GinContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// JSONErrors makes ErrorMiddleware answer in JSON for the routes it is attached to.
func JSONErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(GinContextKeyWantsJSON, true)
		c.Next()
	}
}

type ErrorView struct {
	Status  int
	Message string
}

// ErrorMiddleware turns the last error a handler recorded into a response: JSON for API
// routes, the error page otherwise. Internal errors are logged and never shown.
func ErrorMiddleware(log logger.Logger, pages *Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unhandled error", err)
		}
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err,
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			appErr = apperror.NewInternal("", nil)
		}

		if c.GetBool(GinContextKeyWantsJSON) {
			c.JSON(status, appErr.ToJSON())
			return
		}
		pages.ErrorPage(c, status, ErrorView{Status: status, Message: pageMessage(status)})
	}
}

func pageMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The page you are looking for does not exist."
	case http.StatusBadRequest:
		return "The request could not be understood."
	case http.StatusUnauthorized, http.StatusForbidden:
		return "You are not allowed to see this page."
	}
	return "Something went wrong on our side. Please try again later."
}

// RequestLogger logs one line per request through zap.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
