// Package session carries one-shot flash messages across the redirect that follows a
// form post.
package session

import (
	"github.com/gin-gonic/gin"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

type Flash struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// FlashStore queues messages for the next page the same browser renders.
type FlashStore interface {
	Add(c *gin.Context, f Flash) error
	// Pop returns and clears pending messages.
	Pop(c *gin.Context) ([]Flash, error)
}

func Success(msg string) Flash { return Flash{Level: LevelSuccess, Message: msg} }

func Error(msg string) Flash { return Flash{Level: LevelError, Message: msg} }
