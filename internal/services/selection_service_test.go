package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mailsift/mailsift/internal/api"
	"github.com/mailsift/mailsift/internal/state"
)

func selectionFixture(t *testing.T) (*MockRepository, *state.Session, *SelectionServiceImpl) {
	t.Helper()
	repo := &MockRepository{}
	session := state.NewSession()
	inbox := NewInboxService(repo, session)
	categories := NewCategoryService(repo, session, inbox)
	svc := NewSelectionService(repo, session, categories, inbox)

	seq := session.BeginRefresh()
	require.True(t, session.ApplyEmails(seq, []api.Email{
		{ID: 1, Category: "primary"},
		{ID: 2, Category: "primary"},
		{ID: 3, Category: "spam"},
		{ID: 4, Category: "receipts"},
	}))
	return repo, session, svc
}

func TestSelectAllScopedToVisibleSet(t *testing.T) {
	_, session, svc := selectionFixture(t)

	session.SetActiveCategory("primary")
	svc.SelectAll(true)

	// primary is the catch-all: everything except spam
	assert.Equal(t, []int{1, 2, 4}, session.SelectedIDs())

	svc.SelectAll(false)
	assert.Empty(t, session.SelectedIDs())
}

func TestSelectAllUnderSearchOverride(t *testing.T) {
	_, session, svc := selectionFixture(t)

	session.SetSearchResults([]api.Email{{ID: 3}})
	svc.SelectAll(true)

	assert.Equal(t, []int{3}, session.SelectedIDs())
}

func TestBulkMoveNoSelection(t *testing.T) {
	repo, _, svc := selectionFixture(t)

	_, err := svc.BulkMove(context.Background(), "spam")
	require.ErrorIs(t, err, ErrNoSelection)
	repo.AssertNotCalled(t, "BulkUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestBulkMoveInvalidTargetSendsNothing(t *testing.T) {
	repo, session, svc := selectionFixture(t)

	session.SetSelected(1, 2)
	repo.On("GetCategories", mock.Anything).Return([]api.Category{
		{Name: "primary"}, {Name: "spam"},
	}, nil).Once()

	_, err := svc.BulkMove(context.Background(), "archive")
	require.ErrorIs(t, err, ErrUnknownCategory)

	// Validation failed client-side: the selection survives and no
	// mutation reached the server
	assert.Equal(t, []int{1, 2}, session.SelectedIDs())
	repo.AssertNotCalled(t, "BulkUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestBulkMoveSuccess(t *testing.T) {
	repo, session, svc := selectionFixture(t)

	session.SetSelected(2, 1)
	session.SetActiveEmail(1)

	repo.On("GetCategories", mock.Anything).Return([]api.Category{
		{Name: "primary"}, {Name: "spam"},
	}, nil).Once()
	repo.On("BulkUpdate", mock.Anything, []int{1, 2}, "spam").Return("Moved 2 emails", nil).Once()
	repo.On("GetEmails", mock.Anything).Return([]api.Email{
		{ID: 1, Category: "spam"},
		{ID: 2, Category: "spam"},
		{ID: 3, Category: "spam"},
		{ID: 4, Category: "receipts"},
	}, nil).Once()

	count, err := svc.BulkMove(context.Background(), " SPAM ")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Empty(t, session.SelectedIDs())
	assert.Equal(t, 0, session.ActiveEmailID())
	repo.AssertExpectations(t)
}

func TestToggleAndClear(t *testing.T) {
	_, session, svc := selectionFixture(t)

	svc.Toggle(1)
	svc.Toggle(4)
	assert.Equal(t, []int{1, 4}, session.SelectedIDs())

	svc.Toggle(1)
	assert.Equal(t, []int{4}, session.SelectedIDs())

	svc.Clear()
	assert.Empty(t, session.SelectedIDs())
}
