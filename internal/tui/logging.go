package tui

import (
	"log"
	"os"
	"path/filepath"

	"github.com/mailsift/mailsift/internal/config"
)

// initLogger opens the debug log file and attaches a logger to the app.
// Logging failures are non-fatal; the app just runs without a file log.
func (a *App) initLogger() {
	logPath := a.Config.LogFile
	if logPath == "" {
		logPath = filepath.Join(config.DefaultLogDir(), "mailsift.log")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	a.logFile = f
	a.logger = log.New(f, "", log.LstdFlags|log.Lshortfile)
	a.logger.Printf("mailsift session started")
}

func (a *App) closeLogger() {
	if a.logger != nil {
		a.logger.Printf("mailsift session ended")
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}
