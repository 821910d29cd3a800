package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/mailsift/mailsift/internal/services"
)

// Action is a user intent routed from input handlers to the service layer.
// handle runs actions synchronously; Dispatch runs them off the UI
// goroutine so network calls never block the event loop.
type Action interface {
	actionName() string
}

type RefreshAll struct{}

type CheckMail struct{}

type SelectFolder struct {
	Name string
}

type OpenEmail struct {
	ID int
}

type SearchQuery struct {
	Query string
}

type ToggleSelect struct {
	ID int
}

type SelectAll struct {
	Checked bool
}

type BulkMove struct {
	// IDs overrides the current selection when non-empty
	IDs      []int
	Category string
}

type LearnLabel struct {
	ID    int
	Label string
}

type MoveEmail struct {
	ID     int
	Folder string
}

type DeleteCategory struct {
	Name string
}

func (RefreshAll) actionName() string     { return "refresh" }
func (CheckMail) actionName() string      { return "check_mail" }
func (SelectFolder) actionName() string   { return "select_folder" }
func (OpenEmail) actionName() string      { return "open_email" }
func (SearchQuery) actionName() string    { return "search" }
func (ToggleSelect) actionName() string   { return "toggle_select" }
func (SelectAll) actionName() string      { return "select_all" }
func (BulkMove) actionName() string       { return "bulk_move" }
func (LearnLabel) actionName() string     { return "learn" }
func (MoveEmail) actionName() string      { return "move_email" }
func (DeleteCategory) actionName() string { return "delete_category" }

// Dispatch queues an action for asynchronous handling
func (a *App) Dispatch(action Action) {
	go a.handle(action)
}

// handle executes one action against the service layer and refreshes the
// affected views. Exported behavior is tested through this entry point.
func (a *App) handle(action Action) {
	ctx := a.ctx

	switch act := action.(type) {
	case RefreshAll:
		if err := a.inboxService.Refresh(ctx); err != nil {
			a.reportError("refresh inbox", err)
			return
		}
		a.reloadCategories(ctx)
		a.rerenderAll()
		snap := a.session.Snapshot()
		a.errorHandler.ShowInfo(fmt.Sprintf("Loaded %d emails", len(snap.Emails)))

	case CheckMail:
		a.errorHandler.ShowInfo("Checking for new mail...")
		if err := a.inboxService.CheckMail(ctx); err != nil {
			a.reportError("check mail", err)
			return
		}
		a.reloadCategories(ctx)
		a.rerenderAll()
		a.errorHandler.ShowSuccess("Mailbox refreshed")

	case SelectFolder:
		a.session.SetActiveCategory(act.Name)
		a.resetSearchInput()
		a.rerenderAll()
		a.queueRedraw(a.renderDetailPlaceholder)

	case OpenEmail:
		detail, err := a.detailService.Open(ctx, act.ID)
		if err != nil {
			a.reportError("open email", err)
			return
		}
		a.queueRedraw(func() {
			a.renderDetail(detail)
			a.renderEmails()
			a.renderFolders()
		})

	case SearchQuery:
		query := strings.TrimSpace(act.Query)
		if err := a.inboxService.Search(ctx, query); err != nil {
			a.reportError("search", err)
			return
		}
		if len(query) > 1 && a.dbStore != nil {
			_ = a.dbStore.SaveSearch(ctx, query)
		}
		a.queueRedraw(func() {
			a.renderEmails()
		})

	case ToggleSelect:
		a.selectionService.Toggle(act.ID)
		a.queueRedraw(a.renderEmails)
		a.showSelectionCount()

	case SelectAll:
		a.selectionService.SelectAll(act.Checked)
		a.queueRedraw(a.renderEmails)
		a.showSelectionCount()

	case BulkMove:
		if len(act.IDs) > 0 {
			a.session.SetSelected(act.IDs...)
		}
		count, err := a.selectionService.BulkMove(ctx, act.Category)
		if err != nil {
			a.reportBulkMoveError(err)
			return
		}
		a.setBulkMode(false)
		a.reloadCategories(ctx)
		a.rerenderAll()
		a.queueRedraw(a.renderDetailPlaceholder)
		a.errorHandler.ShowSuccess(fmt.Sprintf("Moved %d emails to %s", count, act.Category))

	case LearnLabel:
		if err := a.triageService.Learn(ctx, act.ID, act.Label); err != nil {
			a.reportError("learn", err)
			return
		}
		a.reloadCategories(ctx)
		a.rerenderAll()
		a.redisplayOpenEmail(ctx, act.ID)
		a.errorHandler.ShowSuccess(fmt.Sprintf("Learned: email moved to %s", strings.ToLower(strings.TrimSpace(act.Label))))

	case MoveEmail:
		moved, err := a.triageService.MoveToFolder(ctx, act.ID, act.Folder)
		if err != nil {
			a.reportError("move email", err)
			return
		}
		if !moved {
			return
		}
		a.reloadCategories(ctx)
		a.rerenderAll()
		a.redisplayOpenEmail(ctx, act.ID)

	case DeleteCategory:
		if err := a.categoryService.DeleteCategory(ctx, act.Name); err != nil {
			a.reportError("delete category", err)
			return
		}
		a.reloadCategories(ctx)
		a.rerenderAll()
		a.queueRedraw(a.renderDetailPlaceholder)
		a.errorHandler.ShowSuccess(fmt.Sprintf("Deleted category %s", act.Name))

	default:
		if a.logger != nil {
			a.logger.Printf("unhandled action %s", action.actionName())
		}
	}
}

// redisplayOpenEmail re-opens the email in the detail pane after a
// correction changed it, so the folder tag and prediction shown there
// reflect the refreshed state. Does nothing when a different email (or
// none) is open; if the email vanished from the refreshed collection the
// pane falls back to the placeholder.
func (a *App) redisplayOpenEmail(ctx context.Context, id int) {
	if a.session.ActiveEmailID() != id {
		return
	}
	detail, err := a.detailService.Open(ctx, id)
	if err != nil {
		if a.logger != nil {
			a.logger.Printf("redisplay email %d: %v", id, err)
		}
		a.session.SetActiveEmail(0)
		a.queueRedraw(a.renderDetailPlaceholder)
		return
	}
	a.queueRedraw(func() {
		a.renderDetail(detail)
	})
}

// reloadCategories refetches the folder list; failures keep the previous
// list so the sidebar never goes blank over a transient error.
func (a *App) reloadCategories(ctx context.Context) {
	categories, err := a.categoryService.ListCategories(ctx)
	if err != nil {
		if a.logger != nil {
			a.logger.Printf("list categories: %v", err)
		}
		return
	}
	a.setCategories(categories)
}

func (a *App) rerenderAll() {
	a.queueRedraw(func() {
		a.renderFolders()
		a.renderEmails()
	})
}

func (a *App) showSelectionCount() {
	count := a.session.SelectionCount()
	if count == 0 {
		a.errorHandler.ShowInfo("Selection cleared")
		return
	}
	a.errorHandler.ShowInfo(fmt.Sprintf("%d selected", count))
}

// reportError maps a failure onto the right surface: server rejections go
// to a blocking alert with the server's own message, validation problems
// to a warning, everything else to the error status line.
func (a *App) reportError(op string, err error) {
	if a.logger != nil {
		a.logger.Printf("%s failed: %v", op, err)
	}
	if serverErr, ok := services.IsServerRejection(err); ok {
		a.showAlert("Server Error", serverErr.Message)
		return
	}
	if services.IsValidationError(err) {
		a.errorHandler.ShowWarning(err.Error())
		return
	}
	a.errorHandler.ShowError(fmt.Sprintf("Failed to %s: %v", op, err))
}

// reportBulkMoveError is stricter than reportError: a bulk move touches
// many emails at once, so anything past client-side validation gets a
// blocking alert rather than a status line the user can miss.
func (a *App) reportBulkMoveError(err error) {
	if a.logger != nil {
		a.logger.Printf("bulk move failed: %v", err)
	}
	if services.IsValidationError(err) {
		a.errorHandler.ShowWarning(err.Error())
		return
	}
	if serverErr, ok := services.IsServerRejection(err); ok {
		a.showAlert("Server Error", serverErr.Message)
		return
	}
	a.showAlert("Bulk Move Failed", fmt.Sprintf("Could not move the selection: %v\nThe emails were not changed.", err))
}
