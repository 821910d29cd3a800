package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mailsift/mailsift/internal/api"
	"github.com/mailsift/mailsift/internal/state"
)

// TriageServiceImpl implements TriageService
type TriageServiceImpl struct {
	repo    EmailRepository
	session *state.Session
	inbox   InboxService
	logger  *log.Logger // Optional - for debug logging
}

// NewTriageService creates a new triage service
func NewTriageService(repo EmailRepository, session *state.Session, inbox InboxService) *TriageServiceImpl {
	return &TriageServiceImpl{
		repo:    repo,
		session: session,
		inbox:   inbox,
	}
}

// SetLogger sets the logger for debug output
func (s *TriageServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// Learn submits a corrected label for one email and then refreshes the
// full state rather than patching locally: learning may have created a
// new category server-side, and a wholesale refresh guarantees the
// category list and counts stay consistent.
func (s *TriageServiceImpl) Learn(ctx context.Context, emailID int, label string) error {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return ErrEmptyLabel
	}

	email, ok := s.session.EmailByID(emailID)
	if !ok {
		return fmt.Errorf("%w: id %d", ErrEmailNotFound, emailID)
	}

	msg, err := s.repo.Learn(ctx, emailID, email.Body, label)
	if err != nil {
		return fmt.Errorf("failed to learn label %q: %w", label, err)
	}
	if s.logger != nil {
		s.logger.Printf("learn %d -> %q: %s", emailID, label, msg)
	}

	return s.inbox.Refresh(ctx)
}

// MoveToFolder handles moving an email onto a folder in the sidebar.
// The synthetic "all" folder is not a real category, and re-filing into
// the email's current category would be a redundant learn call; both are
// no-ops, reported by the returned flag.
func (s *TriageServiceImpl) MoveToFolder(ctx context.Context, emailID int, folder string) (bool, error) {
	folder = strings.ToLower(strings.TrimSpace(folder))
	if folder == "" || folder == api.CategoryAll {
		return false, nil
	}
	if email, ok := s.session.EmailByID(emailID); ok && email.Category == folder {
		return false, nil
	}
	if err := s.Learn(ctx, emailID, folder); err != nil {
		return false, err
	}
	return true, nil
}
