package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mailsift/mailsift/internal/state"
)

// InboxServiceImpl implements InboxService
type InboxServiceImpl struct {
	repo    EmailRepository
	session *state.Session
	logger  *log.Logger // Optional - for debug logging
}

// NewInboxService creates a new inbox service
func NewInboxService(repo EmailRepository, session *state.Session) *InboxServiceImpl {
	return &InboxServiceImpl{
		repo:    repo,
		session: session,
	}
}

// SetLogger sets the logger for debug output
func (s *InboxServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// Refresh fetches the full email collection and replaces the session's
// copy wholesale. Callers must re-derive all dependent views afterwards.
// On failure the previous collection is retained and the error returned;
// retry is always user-initiated.
func (s *InboxServiceImpl) Refresh(ctx context.Context) error {
	seq := s.session.BeginRefresh()

	emails, err := s.repo.GetEmails(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh emails: %w", err)
	}

	if !s.session.ApplyEmails(seq, emails) {
		// A newer refresh was dispatched while this one was in flight;
		// its response wins regardless of arrival order.
		if s.logger != nil {
			s.logger.Printf("discarded stale refresh response (seq %d)", seq)
		}
	}
	return nil
}

// Search runs a server-side search and installs the result as a view
// override. The query is debounced by the caller; here queries of length
// <= 1 clear the override and fall back to folder filtering.
func (s *InboxServiceImpl) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if len(query) <= 1 {
		s.session.ClearSearch()
		return nil
	}

	results, err := s.repo.SearchEmails(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to search: %w", err)
	}

	s.session.SetSearchResults(results)
	return nil
}

// CheckMail triggers server-side ingestion of new mail, then refreshes.
func (s *InboxServiceImpl) CheckMail(ctx context.Context) error {
	if err := s.repo.CheckMail(ctx); err != nil {
		return fmt.Errorf("failed to check mail: %w", err)
	}
	return s.Refresh(ctx)
}
