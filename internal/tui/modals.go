package tui

import (
	"fmt"
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"

	"github.com/mailsift/mailsift/internal/api"
)

const (
	pageAlert   = "alert"
	pageConfirm = "confirm"
	pagePrompt  = "prompt"
	pagePicker  = "picker"
	pageHelp    = "help"
)

// showAlert presents a blocking modal with the given message. Used for
// server rejections, which are shown verbatim. Safe from any goroutine.
func (a *App) showAlert(title, message string) {
	a.queueRedraw(func() {
		modal := tview.NewModal().
			SetText(message).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(int, string) {
				a.pages.RemovePage(pageAlert)
				a.SetFocus(a.emailsTable)
			})
		modal.SetTitle(title).SetBackgroundColor(a.theme.Body.BgColor.Color())
		a.pages.AddPage(pageAlert, modal, true, true)
		a.SetFocus(modal)
	})
}

// showConfirm asks a yes/no question and runs onConfirm when accepted
func (a *App) showConfirm(message string, onConfirm func()) {
	a.queueRedraw(func() {
		modal := tview.NewModal().
			SetText(message).
			AddButtons([]string{"Cancel", "Confirm"}).
			SetDoneFunc(func(_ int, label string) {
				a.pages.RemovePage(pageConfirm)
				a.SetFocus(a.emailsTable)
				if label == "Confirm" {
					onConfirm()
				}
			})
		modal.SetBackgroundColor(a.theme.Body.BgColor.Color())
		a.pages.AddPage(pageConfirm, modal, true, true)
		a.SetFocus(modal)
	})
}

// promptInput asks for a single line of text and runs onSubmit with it
func (a *App) promptInput(title, label string, onSubmit func(string)) {
	a.queueRedraw(func() {
		input := tview.NewInputField().SetLabel(label).SetFieldWidth(30)
		input.SetBorder(true)
		input.SetTitle(title)
		input.SetDoneFunc(func(key tcell.Key) {
			text := strings.TrimSpace(input.GetText())
			a.pages.RemovePage(pagePrompt)
			a.SetFocus(a.emailsTable)
			if key == tcell.KeyEnter && text != "" {
				onSubmit(text)
			}
		})
		a.pages.AddPage(pagePrompt, modalCenter(input, 50, 3), true, true)
		a.SetFocus(input)
	})
}

// pickCategory shows the named categories (never the synthetic "all") and
// runs onPick with the chosen one.
func (a *App) pickCategory(title string, onPick func(string)) {
	categories := a.Categories()
	a.queueRedraw(func() {
		list := tview.NewList().ShowSecondaryText(false)
		list.SetBorder(true)
		list.SetTitle(title)
		for _, c := range categories {
			if c.Name == api.CategoryAll {
				continue
			}
			name := c.Name
			list.AddItem(name, "", 0, func() {
				a.pages.RemovePage(pagePicker)
				a.SetFocus(a.emailsTable)
				onPick(name)
			})
		}
		list.SetDoneFunc(func() {
			a.pages.RemovePage(pagePicker)
			a.SetFocus(a.emailsTable)
		})
		a.pages.AddPage(pagePicker, modalCenter(list, 40, len(categories)+4), true, true)
		a.SetFocus(list)
	})
}

func (a *App) showHelp() {
	k := a.Keys
	text := fmt.Sprintf(`  %s  refresh          %s  check for new mail
  %s  search           %s  bulk mode
  %s  select email     %s  select all / none
  %s  move selected    %s  learn primary
  %s  learn spam       %s  learn custom label
  %s  move to folder   %s  delete category
  %s  quit

  Enter opens an email. Arrows move between panes.`,
		k.Refresh, k.CheckMail, k.Search, k.BulkMode, k.BulkSelect, k.SelectAll,
		k.BulkMove, k.LearnPrimary, k.LearnSpam, k.LearnCustom, k.MoveEmail,
		k.DeleteCategory, k.Quit)

	a.queueRedraw(func() {
		help := tview.NewTextView().SetText(text)
		help.SetBorder(true)
		help.SetTitle(" Help ")
		help.SetDoneFunc(func(tcell.Key) {
			a.pages.RemovePage(pageHelp)
			a.SetFocus(a.emailsTable)
		})
		a.pages.AddPage(pageHelp, modalCenter(help, 64, 12), true, true)
		a.SetFocus(help)
	})
}

// modalCenter wraps a primitive in a centered fixed-size overlay
func modalCenter(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}
