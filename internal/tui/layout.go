package tui

import (
	"path/filepath"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/mailsift/mailsift/internal/config"
)

// loadTheme resolves the configured theme, falling back to built-in defaults
// when the file is missing or malformed.
func (a *App) loadTheme() {
	name := a.Config.Layout.CurrentTheme
	if name == "" {
		return
	}
	dir := a.Config.Layout.CustomThemeDir
	if dir == "" {
		dir = filepath.Join(filepath.Dir(config.DefaultConfigPath()), "themes")
	}
	loader := config.NewThemeLoader(dir)
	theme, err := loader.LoadThemeFromFile(name + ".yaml")
	if err != nil {
		if a.logger != nil {
			a.logger.Printf("theme %q not loaded, using defaults: %v", name, err)
		}
		return
	}
	a.theme = theme
}

// initComponents builds the widget tree: folder pane on the left, search
// box over the message table in the middle, message content on the right,
// status line across the bottom.
func (a *App) initComponents() {
	bg := a.theme.Body.BgColor.Color()
	border := a.theme.Frame.BorderColor.Color()
	title := a.theme.Frame.TitleColor.Color()

	folders := tview.NewList().ShowSecondaryText(false)
	folders.SetBackgroundColor(bg)
	folders.SetBorder(a.Config.Layout.ShowBorders)
	folders.SetBorderColor(border).SetBorderAttributes(tcell.AttrBold)
	if a.Config.Layout.ShowTitles {
		folders.SetTitle(" 📁 Folders ").SetTitleColor(title).SetTitleAlign(tview.AlignCenter)
	}

	// Table rather than List so each row can carry read/unread/selected colors
	emails := tview.NewTable().SetSelectable(true, false)
	emails.SetBackgroundColor(bg)
	emails.SetBorder(a.Config.Layout.ShowBorders)
	emails.SetBorderColor(border).SetBorderAttributes(tcell.AttrBold)
	if a.Config.Layout.ShowTitles {
		emails.SetTitle(" 📧 Messages ").SetTitleColor(title).SetTitleAlign(tview.AlignCenter)
	}

	search := tview.NewInputField().SetLabel(" 🔍 ").SetFieldWidth(0)
	search.SetBackgroundColor(bg)
	search.SetFieldBackgroundColor(bg)
	search.SetBorder(false)

	detail := tview.NewTextView().SetDynamicColors(true).SetWrap(true).SetScrollable(true)
	detail.SetBackgroundColor(bg)
	detail.SetBorder(a.Config.Layout.ShowBorders)
	detail.SetBorderColor(border).SetBorderAttributes(tcell.AttrBold)
	if a.Config.Layout.ShowTitles {
		detail.SetTitle(" 📄 Content ").SetTitleColor(title).SetTitleAlign(tview.AlignCenter)
	}

	status := tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	status.SetBackgroundColor(bg)

	middle := tview.NewFlex().SetDirection(tview.FlexRow)
	middle.SetBackgroundColor(bg)
	middle.AddItem(search, 1, 0, false)
	middle.AddItem(emails, 0, 1, true)

	columns := tview.NewFlex().SetDirection(tview.FlexColumn)
	columns.SetBackgroundColor(bg)
	columns.AddItem(folders, 24, 0, false)
	columns.AddItem(middle, 0, 2, true)
	columns.AddItem(detail, 0, 3, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow)
	root.SetBackgroundColor(bg)
	root.AddItem(columns, 0, 1, true)
	root.AddItem(status, 1, 0, false)

	pages := tview.NewPages()
	pages.AddPage("main", root, true, true)

	a.foldersList = folders
	a.emailsTable = emails
	a.searchInput = search
	a.detailView = detail
	a.statusView = status
	a.root = root
	a.pages = pages

	a.initSearch()
	a.renderDetailPlaceholder()
	status.SetText(a.statusBaseline())
	status.SetTextColor(a.theme.UI.InfoColor.Color())
}
