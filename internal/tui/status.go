package tui

import "fmt"

// statusBaseline is the idle status line text
func (a *App) statusBaseline() string {
	folder := a.session.ActiveCategory()
	return fmt.Sprintf("mailsift • %s • Press %s for help", folder, a.Keys.Help)
}
