package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/mailsift/mailsift/internal/state"
)

// DetailServiceImpl implements DetailService
type DetailServiceImpl struct {
	repo    EmailRepository
	session *state.Session
	cache   ContentCache // Optional - local content cache
	logger  *log.Logger  // Optional - for debug logging
}

// NewDetailService creates a new detail service
func NewDetailService(repo EmailRepository, session *state.Session) *DetailServiceImpl {
	return &DetailServiceImpl{
		repo:    repo,
		session: session,
	}
}

// SetContentCache sets the local content cache. Only rendered bodies are
// cached; predictions are always fetched fresh.
func (s *DetailServiceImpl) SetContentCache(cache ContentCache) {
	s.cache = cache
}

// SetLogger sets the logger for debug output
func (s *DetailServiceImpl) SetLogger(logger *log.Logger) {
	s.logger = logger
}

// Open prepares one email for display. The local read flag flips
// immediately (optimistic; the server marks it read as a side effect of
// the content fetch, and the next refresh reconciles). Content and a
// fresh prediction are fetched concurrently; if either fails the whole
// open fails and the pane keeps its previous state rather than rendering
// partially.
func (s *DetailServiceImpl) Open(ctx context.Context, emailID int) (*EmailDetail, error) {
	email, ok := s.session.EmailByID(emailID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrEmailNotFound, emailID)
	}

	markedRead := s.session.MarkRead(emailID)
	email.IsRead = true

	var content, prediction string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		// The server marks the email read as a side effect of the
		// content fetch, so an unread email must bypass the cache.
		content, err = s.fetchContent(gctx, emailID, !markedRead)
		return err
	})
	g.Go(func() error {
		var err error
		prediction, err = s.repo.Predict(gctx, email.Body)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to open email %d: %w", emailID, err)
	}

	s.session.SetActiveEmail(emailID)

	return &EmailDetail{
		Email:      email,
		Content:    content,
		Prediction: prediction,
		MarkedRead: markedRead,
	}, nil
}

func (s *DetailServiceImpl) fetchContent(ctx context.Context, emailID int, useCache bool) (string, error) {
	if s.cache != nil && useCache {
		if content, ok, err := s.cache.GetContent(ctx, emailID); err == nil && ok {
			return content, nil
		} else if err != nil {
			if s.logger != nil {
				s.logger.Printf("content cache read failed for %d: %v", emailID, err)
			}
			// Drop the unreadable row so it cannot keep failing
			if ierr := s.cache.InvalidateContent(ctx, emailID); ierr != nil && s.logger != nil {
				s.logger.Printf("content cache invalidate failed for %d: %v", emailID, ierr)
			}
		}
	}

	content, err := s.repo.EmailContent(ctx, emailID)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.SaveContent(ctx, emailID, content); err != nil && s.logger != nil {
			s.logger.Printf("content cache write failed for %d: %v", emailID, err)
		}
	}
	return content, nil
}
