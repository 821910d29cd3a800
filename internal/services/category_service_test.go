package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mailsift/mailsift/internal/api"
	"github.com/mailsift/mailsift/internal/state"
)

func liveCategories() []api.Category {
	return []api.Category{
		{Name: "primary"},
		{Name: "spam"},
		{Name: "Receipts"},
	}
}

func TestValidateTarget(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"exact match", "primary", "primary", nil},
		{"case-insensitive match", "SPAM", "spam", nil},
		{"matches server casing", "receipts", "Receipts", nil},
		{"surrounding whitespace trimmed", "  primary  ", "primary", nil},
		{"empty is rejected", "", "", ErrEmptyLabel},
		{"whitespace only is rejected", "   ", "", ErrEmptyLabel},
		{"all is never a target", "all", "", ErrUnknownCategory},
		{"unknown name", "archive", "", ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRepository{}
			repo.On("GetCategories", mock.Anything).Return(liveCategories(), nil).Maybe()
			svc := NewCategoryService(repo, state.NewSession(), nil)

			got, err := svc.ValidateTarget(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateTargetEmptyAndAllSkipNetwork(t *testing.T) {
	repo := &MockRepository{}
	svc := NewCategoryService(repo, state.NewSession(), nil)

	_, err := svc.ValidateTarget(context.Background(), "")
	require.ErrorIs(t, err, ErrEmptyLabel)
	_, err = svc.ValidateTarget(context.Background(), "ALL")
	require.ErrorIs(t, err, ErrUnknownCategory)

	repo.AssertNotCalled(t, "GetCategories", mock.Anything)
}

func TestDeleteCategorySuccessResetsView(t *testing.T) {
	repo := &MockRepository{}
	session := state.NewSession()
	inbox := NewInboxService(repo, session)
	svc := NewCategoryService(repo, session, inbox)

	session.SetActiveCategory("receipts")
	session.SetActiveEmail(7)

	repo.On("DeleteCategory", mock.Anything, "receipts").Return(nil).Once()
	repo.On("GetEmails", mock.Anything).Return([]api.Email{{ID: 1}}, nil).Once()

	require.NoError(t, svc.DeleteCategory(context.Background(), "receipts"))

	assert.Equal(t, api.CategoryAll, session.ActiveCategory())
	assert.Equal(t, 0, session.ActiveEmailID())
	assert.Len(t, session.Snapshot().Emails, 1)
	repo.AssertExpectations(t)
}

func TestDeleteProtectedCategorySurfacesServerError(t *testing.T) {
	repo := &MockRepository{}
	session := state.NewSession()
	inbox := NewInboxService(repo, session)
	svc := NewCategoryService(repo, session, inbox)

	session.SetActiveCategory("primary")

	serverErr := &api.ServerError{StatusCode: http.StatusBadRequest, Message: "Cannot delete protected category"}
	repo.On("DeleteCategory", mock.Anything, "primary").Return(serverErr).Once()

	err := svc.DeleteCategory(context.Background(), "primary")
	require.Error(t, err)

	rejection, ok := IsServerRejection(err)
	require.True(t, ok, "server rejections pass through for verbatim display")
	assert.Equal(t, "Cannot delete protected category", rejection.Message)

	// Rejection leaves the view untouched
	assert.Equal(t, "primary", session.ActiveCategory())
	repo.AssertNotCalled(t, "GetEmails", mock.Anything)
}
