package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mailsift/mailsift/internal/api"
)

// MockRepository is a testify mock of EmailRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetEmails(ctx context.Context) ([]api.Email, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Email), args.Error(1)
}

func (m *MockRepository) GetCategories(ctx context.Context) ([]api.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Category), args.Error(1)
}

func (m *MockRepository) SearchEmails(ctx context.Context, query string) ([]api.Email, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Email), args.Error(1)
}

func (m *MockRepository) EmailContent(ctx context.Context, emailID int) (string, error) {
	args := m.Called(ctx, emailID)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Predict(ctx context.Context, emailText string) (string, error) {
	args := m.Called(ctx, emailText)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Learn(ctx context.Context, emailID int, emailText, correctLabel string) (string, error) {
	args := m.Called(ctx, emailID, emailText, correctLabel)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) BulkUpdate(ctx context.Context, emailIDs []int, category string) (string, error) {
	args := m.Called(ctx, emailIDs, category)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) DeleteCategory(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockRepository) CheckMail(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockContentCache is a testify mock of ContentCache
type MockContentCache struct {
	mock.Mock
}

func (m *MockContentCache) GetContent(ctx context.Context, emailID int) (string, bool, error) {
	args := m.Called(ctx, emailID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockContentCache) SaveContent(ctx context.Context, emailID int, content string) error {
	args := m.Called(ctx, emailID, content)
	return args.Error(0)
}

func (m *MockContentCache) InvalidateContent(ctx context.Context, emailID int) error {
	args := m.Called(ctx, emailID)
	return args.Error(0)
}
