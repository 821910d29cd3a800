package tui

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

// LogLevel represents the severity of a message
type LogLevel int

const (
	LogLevelInfo LogLevel = iota
	LogLevelWarning
	LogLevelError
	LogLevelSuccess
)

// ErrorHandler provides consistent error handling and user feedback
// through the status line.
type ErrorHandler struct {
	mu         sync.Mutex
	app        *tview.Application
	appRef     *App
	statusView *tview.TextView
	logger     *log.Logger

	currentStatus string
	statusTimer   *time.Timer
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(app *tview.Application, appRef *App, statusView *tview.TextView, logger *log.Logger) *ErrorHandler {
	return &ErrorHandler{
		app:        app,
		appRef:     appRef,
		statusView: statusView,
		logger:     logger,
	}
}

// ShowMessage displays a message to the user on the status line. Messages
// auto-clear back to the baseline after a few seconds.
func (eh *ErrorHandler) ShowMessage(msg string, level LogLevel) {
	if strings.TrimSpace(msg) == "" {
		return
	}

	formatted := eh.formatMessage(msg, level)

	if eh.logger != nil {
		eh.logger.Printf("%s: %s", eh.levelToString(level), msg)
	}

	eh.appRef.queueRedraw(func() {
		eh.updateStatusMessage(formatted, level)
	})
}

func (eh *ErrorHandler) formatMessage(msg string, level LogLevel) string {
	var icon string
	switch level {
	case LogLevelInfo:
		icon = "ℹ️"
	case LogLevelWarning:
		icon = "⚠️"
	case LogLevelError:
		icon = "❌"
	case LogLevelSuccess:
		icon = "✅"
	default:
		icon = "•"
	}
	return fmt.Sprintf("%s %s", icon, msg)
}

func (eh *ErrorHandler) levelToString(level LogLevel) string {
	switch level {
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarning:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelSuccess:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

func (eh *ErrorHandler) levelToColor(level LogLevel) tcell.Color {
	theme := eh.appRef.theme
	switch level {
	case LogLevelWarning:
		return theme.UI.WarningColor.Color()
	case LogLevelError:
		return theme.UI.ErrorColor.Color()
	case LogLevelSuccess:
		return theme.UI.SuccessColor.Color()
	default:
		return theme.UI.InfoColor.Color()
	}
}

// updateStatusMessage sets the status line with auto-clear. Runs on the
// UI goroutine.
func (eh *ErrorHandler) updateStatusMessage(msg string, level LogLevel) {
	if eh.statusView == nil {
		return
	}

	eh.mu.Lock()
	defer eh.mu.Unlock()

	if eh.statusTimer != nil {
		eh.statusTimer.Stop()
	}

	eh.currentStatus = msg
	eh.statusView.SetText(msg)
	eh.statusView.SetTextColor(eh.levelToColor(level))

	expected := msg
	eh.statusTimer = time.AfterFunc(5*time.Second, func() {
		eh.clearStatusSafely(expected)
	})
}

// clearStatusSafely resets the status line to the baseline, but only if no
// newer message was set after the timer was armed.
func (eh *ErrorHandler) clearStatusSafely(expectedMsg string) {
	eh.appRef.queueRedraw(func() {
		eh.mu.Lock()
		defer eh.mu.Unlock()
		if eh.currentStatus != expectedMsg {
			return
		}
		eh.currentStatus = ""
		eh.statusView.SetText(eh.appRef.statusBaseline())
		eh.statusView.SetTextColor(eh.levelToColor(LogLevelInfo))
	})
}

// CurrentStatus returns the message currently shown, if any
func (eh *ErrorHandler) CurrentStatus() string {
	eh.mu.Lock()
	defer eh.mu.Unlock()
	return eh.currentStatus
}

// ShowInfo shows an info message
func (eh *ErrorHandler) ShowInfo(msg string) {
	eh.ShowMessage(msg, LogLevelInfo)
}

// ShowWarning shows a warning message
func (eh *ErrorHandler) ShowWarning(msg string) {
	eh.ShowMessage(msg, LogLevelWarning)
}

// ShowError shows an error message
func (eh *ErrorHandler) ShowError(msg string) {
	eh.ShowMessage(msg, LogLevelError)
}

// ShowSuccess shows a success message
func (eh *ErrorHandler) ShowSuccess(msg string) {
	eh.ShowMessage(msg, LogLevelSuccess)
}
