package services

import (
	"context"

	"github.com/mailsift/mailsift/internal/api"
)

// EmailRepository is the remote email store contract. Implemented by
// *api.Client; mocked in tests.
type EmailRepository interface {
	GetEmails(ctx context.Context) ([]api.Email, error)
	GetCategories(ctx context.Context) ([]api.Category, error)
	SearchEmails(ctx context.Context, query string) ([]api.Email, error)
	EmailContent(ctx context.Context, emailID int) (string, error)
	Predict(ctx context.Context, emailText string) (string, error)
	Learn(ctx context.Context, emailID int, emailText, correctLabel string) (string, error)
	BulkUpdate(ctx context.Context, emailIDs []int, category string) (string, error)
	DeleteCategory(ctx context.Context, name string) error
	CheckMail(ctx context.Context) error
}

// InboxService owns synchronization between the session and the remote
// store: wholesale refresh, server-side search, and the check-mail
// trigger.
type InboxService interface {
	// Refresh replaces the cached email collection atomically. On failure
	// the previous collection is retained; no automatic retry. Stale
	// responses from overlapping refreshes are discarded.
	Refresh(ctx context.Context) error
	// Search installs a search override for the given query. Queries of
	// length <= 1 clear the override instead of hitting the server.
	Search(ctx context.Context, query string) error
	// CheckMail asks the server to ingest new mail, then refreshes.
	CheckMail(ctx context.Context) error
}

// CategoryService handles folder-level operations.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]api.Category, error)
	// ValidateTarget matches a user-supplied name against the live
	// category list, case-insensitively, returning the canonical
	// lowercase name. Unknown names fail before any mutation is sent.
	ValidateTarget(ctx context.Context, name string) (string, error)
	// DeleteCategory removes a user-created folder; member emails move to
	// primary server-side. The session falls back to the "all" folder and
	// state is refreshed. Protected folders are rejected by the server.
	DeleteCategory(ctx context.Context, name string) error
}

// SelectionService is the bulk-selection state machine.
type SelectionService interface {
	Toggle(id int)
	// SelectAll selects every currently visible email when checked, and
	// clears the selection when unchecked.
	SelectAll(checked bool)
	Clear()
	// BulkMove re-categorizes the whole selection in one request after
	// validating the target, then clears the selection and refreshes.
	// Returns the number of emails moved.
	BulkMove(ctx context.Context, target string) (int, error)
}

// TriageService orchestrates label corrections fed back to the
// classifier.
type TriageService interface {
	// Learn submits a corrected label (trimmed, lowercased) for one
	// email, then refreshes the whole state so server-created categories
	// show up.
	Learn(ctx context.Context, emailID int, label string) error
	// MoveToFolder is the list-to-folder move: a Learn with the folder's
	// name as label. Moving onto "all" or the email's current category is
	// a no-op; the flag reports whether a learn was actually sent.
	MoveToFolder(ctx context.Context, emailID int, folder string) (bool, error)
}

// EmailDetail is everything the detail pane needs for one email, fetched
// as a unit so the pane is never partially rendered.
type EmailDetail struct {
	Email      api.Email
	Content    string
	Prediction string
	// MarkedRead is true if opening flipped the local read flag, meaning
	// folder counts need a re-render.
	MarkedRead bool
}

// DetailService opens a single email: optimistic read-mark, concurrent
// content and prediction fetch.
type DetailService interface {
	Open(ctx context.Context, emailID int) (*EmailDetail, error)
}

// ContentCache stores rendered email bodies locally so re-opening an
// email avoids a refetch. Predictions are never cached: the pane must
// always show a fresh classifier guess.
type ContentCache interface {
	GetContent(ctx context.Context, emailID int) (string, bool, error)
	SaveContent(ctx context.Context, emailID int, content string) error
	// InvalidateContent drops one cached body, e.g. a row that failed to
	// read back.
	InvalidateContent(ctx context.Context, emailID int) error
}
