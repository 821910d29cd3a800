package tui

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/derailed/tview"

	"github.com/mailsift/mailsift/internal/api"
	"github.com/mailsift/mailsift/internal/config"
	"github.com/mailsift/mailsift/internal/db"
	"github.com/mailsift/mailsift/internal/services"
	"github.com/mailsift/mailsift/internal/state"
)

// App encapsulates the terminal UI and the triage services
type App struct {
	*tview.Application
	Config *config.Config
	Keys   config.KeyBindings

	ctx    context.Context
	cancel context.CancelFunc

	// Session state - single authority for what the UI shows
	session *state.Session

	// Services
	inboxService     services.InboxService
	categoryService  services.CategoryService
	selectionService services.SelectionService
	triageService    services.TriageService
	detailService    services.DetailService

	// Database store (SQLite)
	dbStore *db.Store

	// Widgets
	pages       *tview.Pages
	root        *tview.Flex
	foldersList *tview.List
	emailsTable *tview.Table
	detailView  *tview.TextView
	searchInput *tview.InputField
	statusView  *tview.TextView

	errorHandler *ErrorHandler
	theme        *config.ColorsConfig

	// Latest server-reported category list; counts are authoritative
	categories []api.Category

	// Bulk selection mode
	bulkMode bool

	// Search debounce
	searchTimer  *time.Timer
	currentQuery string
	searchMuted  bool

	// UI lifecycle flags
	uiReady bool

	// Debug logging
	logger  *log.Logger
	logFile *os.File

	mu sync.RWMutex
}

// NewApp creates a new TUI application wired to the given remote store
func NewApp(repo services.EmailRepository, cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	session := state.NewSession()

	app := &App{
		Application: tview.NewApplication(),
		Config:      cfg,
		Keys:        cfg.Keys,
		ctx:         ctx,
		cancel:      cancel,
		session:     session,
		theme:       config.DefaultColors(),
	}

	app.initLogger()

	inbox := services.NewInboxService(repo, session)
	inbox.SetLogger(app.logger)
	categories := services.NewCategoryService(repo, session, inbox)
	selection := services.NewSelectionService(repo, session, categories, inbox)
	triage := services.NewTriageService(repo, session, inbox)
	triage.SetLogger(app.logger)
	detail := services.NewDetailService(repo, session)
	detail.SetLogger(app.logger)

	app.inboxService = inbox
	app.categoryService = categories
	app.selectionService = selection
	app.triageService = triage
	app.detailService = detail

	app.loadTheme()
	app.initComponents()
	app.initKeys()

	app.errorHandler = NewErrorHandler(app.Application, app, app.statusView, app.logger)

	return app
}

// RegisterDBStore injects the local store for content caching and search
// history. Called after construction to keep wiring in main simple.
func (a *App) RegisterDBStore(store *db.Store) {
	a.dbStore = store
	if impl, ok := a.detailService.(*services.DetailServiceImpl); ok {
		impl.SetContentCache(store)
	}
}

// Session exposes the session state for rendering helpers
func (a *App) Session() *state.Session {
	return a.session
}

// Run starts the application: initial load in the background, then the
// tview event loop.
func (a *App) Run() error {
	a.SetRoot(a.pages, true)
	a.SetFocus(a.emailsTable)

	a.mu.Lock()
	a.uiReady = true
	a.mu.Unlock()

	// Load state in the background; the event loop consumes the queued
	// redraws as soon as it starts.
	go a.handle(RefreshAll{})

	defer a.cleanup()
	return a.Application.Run()
}

func (a *App) cleanup() {
	a.cancel()
	a.mu.Lock()
	if a.searchTimer != nil {
		a.searchTimer.Stop()
		a.searchTimer = nil
	}
	a.mu.Unlock()
	if a.dbStore != nil {
		_ = a.dbStore.Close()
	}
	a.closeLogger()
}

// queueRedraw runs fn on the UI goroutine once the UI is live; before
// that it runs inline so startup code and tests need no event loop.
// The queueing goroutine keeps event handlers from blocking on their own
// update queue.
func (a *App) queueRedraw(fn func()) {
	a.mu.RLock()
	ready := a.uiReady
	a.mu.RUnlock()
	if ready {
		go a.Application.QueueUpdateDraw(fn)
	} else {
		fn()
	}
}

func (a *App) setCategories(categories []api.Category) {
	a.mu.Lock()
	a.categories = categories
	a.mu.Unlock()
}

// Categories returns the latest fetched category list
func (a *App) Categories() []api.Category {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]api.Category(nil), a.categories...)
}

// BulkMode reports whether bulk selection mode is active
func (a *App) BulkMode() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bulkMode
}

func (a *App) setBulkMode(on bool) {
	a.mu.Lock()
	a.bulkMode = on
	a.mu.Unlock()
	if !on {
		a.selectionService.Clear()
	}
}
