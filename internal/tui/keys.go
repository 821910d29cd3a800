package tui

import (
	"strings"

	"github.com/derailed/tcell/v2"
)

// keyRune maps a configured binding to the rune it matches. Named keys
// ("space") get their literal rune; empty bindings never match.
func keyRune(binding string) rune {
	switch strings.ToLower(binding) {
	case "":
		return 0
	case "space":
		return ' '
	default:
		r := []rune(binding)
		return r[0]
	}
}

// initKeys installs the input handlers on the message table and folder pane
func (a *App) initKeys() {
	a.Application.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// Never swallow keys while typing a query or inside a modal
		if a.GetFocus() == a.searchInput {
			return event
		}
		if name, _ := a.pages.GetFrontPage(); name != "main" {
			return event
		}
		if event.Key() != tcell.KeyRune {
			return event
		}

		switch event.Rune() {
		case keyRune(a.Keys.Quit):
			a.Stop()
			return nil
		case keyRune(a.Keys.Search):
			a.SetFocus(a.searchInput)
			return nil
		case keyRune(a.Keys.Refresh):
			a.Dispatch(RefreshAll{})
			return nil
		case keyRune(a.Keys.CheckMail):
			a.Dispatch(CheckMail{})
			return nil
		case keyRune(a.Keys.Help):
			a.showHelp()
			return nil
		}
		return event
	})

	a.emailsTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyLeft {
			a.SetFocus(a.foldersList)
			return nil
		}
		if event.Key() != tcell.KeyRune {
			return event
		}

		switch event.Rune() {
		case keyRune(a.Keys.BulkMode):
			a.setBulkMode(!a.BulkMode())
			a.queueRedraw(a.renderEmails)
			if a.BulkMode() {
				a.errorHandler.ShowInfo("Bulk mode on")
			} else {
				a.errorHandler.ShowInfo("Bulk mode off")
			}
			return nil
		case keyRune(a.Keys.BulkSelect):
			if email, ok := a.emailAt(a.currentRow()); ok {
				a.Dispatch(ToggleSelect{ID: email.ID})
			}
			return nil
		case keyRune(a.Keys.SelectAll):
			checked := a.session.SelectionCount() == 0
			a.Dispatch(SelectAll{Checked: checked})
			return nil
		case keyRune(a.Keys.BulkMove):
			a.pickCategory(" Move selected to ", func(target string) {
				a.Dispatch(BulkMove{Category: target})
			})
			return nil
		case keyRune(a.Keys.LearnPrimary):
			if email, ok := a.emailAt(a.currentRow()); ok {
				a.Dispatch(LearnLabel{ID: email.ID, Label: "primary"})
			}
			return nil
		case keyRune(a.Keys.LearnSpam):
			if email, ok := a.emailAt(a.currentRow()); ok {
				a.Dispatch(LearnLabel{ID: email.ID, Label: "spam"})
			}
			return nil
		case keyRune(a.Keys.LearnCustom):
			if email, ok := a.emailAt(a.currentRow()); ok {
				id := email.ID
				a.promptInput(" Label ", "Correct label: ", func(label string) {
					a.Dispatch(LearnLabel{ID: id, Label: label})
				})
			}
			return nil
		case keyRune(a.Keys.MoveEmail):
			if email, ok := a.emailAt(a.currentRow()); ok {
				id := email.ID
				a.pickCategory(" Move to folder ", func(target string) {
					a.Dispatch(MoveEmail{ID: id, Folder: target})
				})
			}
			return nil
		}
		return event
	})

	a.emailsTable.SetSelectedFunc(func(row, col int) {
		if email, ok := a.emailAt(row); ok {
			if a.BulkMode() {
				a.Dispatch(ToggleSelect{ID: email.ID})
				return
			}
			a.Dispatch(OpenEmail{ID: email.ID})
		}
	})

	a.foldersList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRight {
			a.SetFocus(a.emailsTable)
			return nil
		}
		if event.Key() != tcell.KeyRune {
			return event
		}
		if event.Rune() == keyRune(a.Keys.DeleteCategory) {
			folder, ok := a.folderAt(a.foldersList.GetCurrentItem())
			if !ok {
				return nil
			}
			if !folder.Deletable {
				a.errorHandler.ShowWarning("This folder cannot be deleted")
				return nil
			}
			name := folder.Name
			a.showConfirm("Delete category "+name+" and move its emails to primary?", func() {
				a.Dispatch(DeleteCategory{Name: name})
			})
			return nil
		}
		return event
	})
}

func (a *App) currentRow() int {
	row, _ := a.emailsTable.GetSelection()
	return row
}
