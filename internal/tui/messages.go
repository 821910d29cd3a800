package tui

import (
	"fmt"

	"github.com/derailed/tview"

	"github.com/mailsift/mailsift/internal/api"
	"github.com/mailsift/mailsift/internal/render"
	"github.com/mailsift/mailsift/internal/views"
)

const (
	fromColumnWidth    = 28
	subjectColumnWidth = 60
)

// renderEmails rebuilds the message table from the visible set for the
// active folder or search override. Must run on the UI goroutine.
func (a *App) renderEmails() {
	snap := a.session.Snapshot()
	emails := views.FilteredEmails(snap)

	a.emailsTable.Clear()

	if len(emails) == 0 {
		cell := tview.NewTableCell("  (no emails)").
			SetTextColor(a.theme.Email.ReadColor.Color()).
			SetSelectable(false)
		a.emailsTable.SetCell(0, 0, cell)
		return
	}

	selectedRow := 0
	for row, email := range emails {
		color := a.theme.Email.ReadColor.Color()
		if !email.IsRead {
			color = a.theme.Email.UnreadColor.Color()
		}
		if snap.SelectedIDs[email.ID] {
			color = a.theme.Email.SelectedColor.Color()
		}

		marker := " "
		if a.BulkMode() {
			marker = "☐"
			if snap.SelectedIDs[email.ID] {
				marker = "☑"
			}
		} else if !email.IsRead {
			marker = "●"
		}

		from := render.PadRight(render.Truncate(email.From, fromColumnWidth), fromColumnWidth)
		subject := render.Truncate(email.Subject, subjectColumnWidth)

		a.emailsTable.SetCell(row, 0, tview.NewTableCell(marker).SetTextColor(color).SetReference(email.ID))
		a.emailsTable.SetCell(row, 1, tview.NewTableCell(from).SetTextColor(color))
		a.emailsTable.SetCell(row, 2, tview.NewTableCell(subject).SetTextColor(color).SetExpansion(1))

		if email.ID == snap.ActiveEmailID {
			selectedRow = row
		}
	}
	a.emailsTable.Select(selectedRow, 0)

	if snap.SearchResults != nil {
		a.emailsTable.SetTitle(fmt.Sprintf(" 🔍 Results (%d) ", len(emails)))
	} else if a.Config.Layout.ShowTitles {
		a.emailsTable.SetTitle(" 📧 Messages ")
	}
}

// emailAt resolves the email shown on the given table row
func (a *App) emailAt(row int) (api.Email, bool) {
	snap := a.session.Snapshot()
	emails := views.FilteredEmails(snap)
	if row < 0 || row >= len(emails) {
		return api.Email{}, false
	}
	return emails[row], true
}
