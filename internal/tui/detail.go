package tui

import (
	"fmt"
	"strings"

	"github.com/derailed/tview"

	"github.com/mailsift/mailsift/internal/render"
	"github.com/mailsift/mailsift/internal/services"
)

// renderDetail shows an opened email: headers, classifier verdict, then
// the rendered body. Must run on the UI goroutine.
func (a *App) renderDetail(detail *services.EmailDetail) {
	_, _, width, _ := a.detailView.GetInnerRect()
	if width <= 0 {
		width = 80
	}

	body := render.FormatEmailBody(detail.Content, render.FormatOptions{WrapWidth: width})

	var b strings.Builder
	fmt.Fprintf(&b, "[%s::b]From:[-:-:-] %s\n", a.theme.UI.InfoColor.String(), tviewEscape(detail.Email.From))
	fmt.Fprintf(&b, "[%s::b]Subject:[-:-:-] %s\n", a.theme.UI.InfoColor.String(), tviewEscape(detail.Email.Subject))
	fmt.Fprintf(&b, "[%s::b]Folder:[-:-:-] %s\n", a.theme.UI.InfoColor.String(), detail.Email.Category)
	if detail.Prediction != "" {
		fmt.Fprintf(&b, "[%s::b]Classifier:[-:-:-] %s\n", a.theme.UI.InfoColor.String(), detail.Prediction)
	}
	b.WriteString("\n")
	b.WriteString(tviewEscape(body))

	a.detailView.SetText(b.String())
	a.detailView.ScrollToBeginning()
}

// tviewEscape neutralizes tview color tags in untrusted email content
func tviewEscape(s string) string {
	return tview.Escape(s)
}

func (a *App) renderDetailPlaceholder() {
	a.detailView.SetText(fmt.Sprintf("[%s]Select an email to read it[-]", a.theme.Email.ReadColor.String()))
}
