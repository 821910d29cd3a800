package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailsift/mailsift/internal/api"
)

func testEmails() []api.Email {
	return []api.Email{
		{ID: 1, From: "a@x.com", Subject: "One", Category: "primary"},
		{ID: 2, From: "b@x.com", Subject: "Two", Category: "spam", IsRead: true},
		{ID: 3, From: "c@x.com", Subject: "Three", Category: "receipts"},
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()
	assert.Equal(t, api.CategoryAll, s.ActiveCategory())
	assert.Equal(t, 0, s.ActiveEmailID())
	assert.Equal(t, 0, s.SelectionCount())
	assert.False(t, s.HasSearchOverride())
	assert.Empty(t, s.Snapshot().Emails)
}

func TestApplyEmailsReplacesWholesale(t *testing.T) {
	s := NewSession()

	seq := s.BeginRefresh()
	require.True(t, s.ApplyEmails(seq, testEmails()))
	assert.Len(t, s.Snapshot().Emails, 3)

	seq = s.BeginRefresh()
	require.True(t, s.ApplyEmails(seq, []api.Email{{ID: 9}}))

	snap := s.Snapshot()
	require.Len(t, snap.Emails, 1)
	assert.Equal(t, 9, snap.Emails[0].ID)
}

func TestApplyEmailsDiscardsStaleResponse(t *testing.T) {
	s := NewSession()

	// Two refreshes dispatched; the older one completes last
	seqOld := s.BeginRefresh()
	seqNew := s.BeginRefresh()

	require.True(t, s.ApplyEmails(seqNew, []api.Email{{ID: 2}}))
	assert.False(t, s.ApplyEmails(seqOld, []api.Email{{ID: 1}}), "stale response must be discarded")

	snap := s.Snapshot()
	require.Len(t, snap.Emails, 1)
	assert.Equal(t, 2, snap.Emails[0].ID)
}

func TestApplyEmailsDiscardsWhenNewerDispatched(t *testing.T) {
	s := NewSession()

	seqOld := s.BeginRefresh()
	_ = s.BeginRefresh()

	assert.False(t, s.ApplyEmails(seqOld, testEmails()))
	assert.Empty(t, s.Snapshot().Emails)
}

func TestSetActiveCategoryClearsSearchAndSelection(t *testing.T) {
	s := NewSession()
	seq := s.BeginRefresh()
	require.True(t, s.ApplyEmails(seq, testEmails()))

	s.SetSearchResults([]api.Email{{ID: 1}})
	s.SetSelected(1, 3)
	require.True(t, s.HasSearchOverride())
	require.Equal(t, 2, s.SelectionCount())

	s.SetActiveCategory("spam")

	assert.Equal(t, "spam", s.ActiveCategory())
	assert.False(t, s.HasSearchOverride())
	assert.Equal(t, 0, s.SelectionCount())
}

func TestMarkReadOptimistic(t *testing.T) {
	s := NewSession()
	seq := s.BeginRefresh()
	require.True(t, s.ApplyEmails(seq, testEmails()))

	assert.True(t, s.MarkRead(1), "unread email flips")
	assert.False(t, s.MarkRead(1), "second mark is a no-op")
	assert.False(t, s.MarkRead(2), "already-read email is a no-op")
	assert.False(t, s.MarkRead(99), "unknown id is a no-op")

	email, ok := s.EmailByID(1)
	require.True(t, ok)
	assert.True(t, email.IsRead)
}

func TestRefreshOverwritesOptimisticRead(t *testing.T) {
	s := NewSession()
	seq := s.BeginRefresh()
	require.True(t, s.ApplyEmails(seq, testEmails()))
	require.True(t, s.MarkRead(1))

	// Server still reports the email unread; its view wins
	seq = s.BeginRefresh()
	require.True(t, s.ApplyEmails(seq, testEmails()))

	email, ok := s.EmailByID(1)
	require.True(t, ok)
	assert.False(t, email.IsRead)
}

func TestSearchResultsClearSelection(t *testing.T) {
	s := NewSession()
	s.SetSelected(1, 2)

	s.SetSearchResults([]api.Email{{ID: 5}})

	assert.Equal(t, 0, s.SelectionCount())
	assert.True(t, s.HasSearchOverride())
}

func TestEmptySearchResultIsAnOverride(t *testing.T) {
	s := NewSession()
	s.SetSearchResults(nil)

	assert.True(t, s.HasSearchOverride(), "an empty result set still overrides folder filtering")
	snap := s.Snapshot()
	require.NotNil(t, snap.SearchResults)
	assert.Empty(t, snap.SearchResults)
}

func TestClearSearchDropsOverride(t *testing.T) {
	s := NewSession()
	s.SetSearchResults([]api.Email{{ID: 5}})
	s.SetSelected(5)

	s.ClearSearch()

	assert.False(t, s.HasSearchOverride())
	assert.Equal(t, 0, s.SelectionCount())
}

func TestSelectionSet(t *testing.T) {
	s := NewSession()

	s.ToggleSelected(3)
	s.ToggleSelected(1)
	assert.Equal(t, []int{1, 3}, s.SelectedIDs())
	assert.True(t, s.IsSelected(3))

	s.ToggleSelected(3)
	assert.False(t, s.IsSelected(3))
	assert.Equal(t, []int{1}, s.SelectedIDs())

	s.SetSelected(7, 8, 9)
	assert.Equal(t, []int{7, 8, 9}, s.SelectedIDs())

	s.ClearSelection()
	assert.Empty(t, s.SelectedIDs())
}

func TestSnapshotIsolation(t *testing.T) {
	s := NewSession()
	seq := s.BeginRefresh()
	require.True(t, s.ApplyEmails(seq, testEmails()))
	s.SetSelected(1)

	snap := s.Snapshot()

	// Mutating the session must not affect an existing snapshot
	seq = s.BeginRefresh()
	require.True(t, s.ApplyEmails(seq, nil))
	s.ClearSelection()

	assert.Len(t, snap.Emails, 3)
	assert.True(t, snap.SelectedIDs[1])
}
