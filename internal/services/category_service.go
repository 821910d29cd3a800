package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mailsift/mailsift/internal/api"
	"github.com/mailsift/mailsift/internal/state"
)

// CategoryServiceImpl implements CategoryService
type CategoryServiceImpl struct {
	repo    EmailRepository
	session *state.Session
	inbox   InboxService
}

// NewCategoryService creates a new category service
func NewCategoryService(repo EmailRepository, session *state.Session, inbox InboxService) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		repo:    repo,
		session: session,
		inbox:   inbox,
	}
}

func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]api.Category, error) {
	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ValidateTarget resolves a user-supplied category name against the live
// category list. Matching is case-insensitive; the canonical lowercase
// name is returned. The synthetic "all" folder is never a valid target.
func (s *CategoryServiceImpl) ValidateTarget(ctx context.Context, name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", ErrEmptyLabel
	}
	if name == api.CategoryAll {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}

	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to validate category: %w", err)
	}
	for _, c := range categories {
		if strings.ToLower(c.Name) == name {
			return c.Name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// DeleteCategory removes a user-created folder. The server reassigns
// member emails to primary and rejects protected folders; a rejection is
// returned unwrapped-to-ServerError for the UI to alert verbatim. On
// success the session falls back to the "all" folder with an empty
// selection and detail pane, and state is refreshed.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyLabel
	}

	if err := s.repo.DeleteCategory(ctx, name); err != nil {
		return err
	}

	s.session.SetActiveCategory(api.CategoryAll)
	s.session.SetActiveEmail(0)
	return s.inbox.Refresh(ctx)
}
