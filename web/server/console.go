package server

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info" or "warning"
}

// WebLogger implements core.Logger for a single request. Messages go to the
// server log, tagged with the request ID, and to an optional console channel.
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("[%s] %s", wl.renderID, strings.TrimRight(message, "\n"))

	level := "info"
	if strings.HasPrefix(message, "Warning:") {
		level = "warning"
	}

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     level,
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

// drainWarnings empties consoleChan and returns the warning messages it held
func drainWarnings(consoleChan chan ConsoleMessage) []string {
	var warnings []string
	for {
		select {
		case msg := <-consoleChan:
			if msg.Level == "warning" {
				warnings = append(warnings, strings.TrimSpace(strings.TrimPrefix(msg.Message, "Warning:")))
			}
		default:
			return warnings
		}
	}
}
