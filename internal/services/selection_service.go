package services

import (
	"context"
	"fmt"

	"github.com/mailsift/mailsift/internal/state"
	"github.com/mailsift/mailsift/internal/views"
)

// SelectionServiceImpl implements SelectionService
type SelectionServiceImpl struct {
	repo       EmailRepository
	session    *state.Session
	categories CategoryService
	inbox      InboxService
}

// NewSelectionService creates a new selection service
func NewSelectionService(repo EmailRepository, session *state.Session, categories CategoryService, inbox InboxService) *SelectionServiceImpl {
	return &SelectionServiceImpl{
		repo:       repo,
		session:    session,
		categories: categories,
		inbox:      inbox,
	}
}

func (s *SelectionServiceImpl) Toggle(id int) {
	s.session.ToggleSelected(id)
}

// SelectAll selects exactly the emails the list view currently shows:
// the filtered set, never the full collection.
func (s *SelectionServiceImpl) SelectAll(checked bool) {
	if !checked {
		s.session.ClearSelection()
		return
	}
	s.session.SetSelected(views.VisibleIDs(s.session.Snapshot())...)
}

func (s *SelectionServiceImpl) Clear() {
	s.session.ClearSelection()
}

// BulkMove re-categorizes the selection in one batched request. The
// target is validated against the live category list before anything is
// sent; an invalid target is a client-side failure with no network
// mutation. On success the selection is cleared, the detail pane reset,
// and the whole state refreshed.
func (s *SelectionServiceImpl) BulkMove(ctx context.Context, target string) (int, error) {
	ids := s.session.SelectedIDs()
	if len(ids) == 0 {
		return 0, ErrNoSelection
	}

	canonical, err := s.categories.ValidateTarget(ctx, target)
	if err != nil {
		return 0, err
	}

	if _, err := s.repo.BulkUpdate(ctx, ids, canonical); err != nil {
		return 0, fmt.Errorf("failed to move %d emails: %w", len(ids), err)
	}

	s.session.ClearSelection()
	// The previously open email may have moved out of the visible set.
	s.session.SetActiveEmail(0)

	if err := s.inbox.Refresh(ctx); err != nil {
		return len(ids), err
	}
	return len(ids), nil
}
