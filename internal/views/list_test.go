package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mailsift/mailsift/internal/api"
	"github.com/mailsift/mailsift/internal/state"
)

// Five emails: 2 primary, 1 spam, 1 receipts, 1 work
func triageEmails() []api.Email {
	return []api.Email{
		{ID: 1, Category: "primary"},
		{ID: 2, Category: "primary", IsRead: true},
		{ID: 3, Category: "spam"},
		{ID: 4, Category: "receipts"},
		{ID: 5, Category: "work"},
	}
}

func snapshotFor(category string, emails []api.Email) state.Snapshot {
	return state.Snapshot{
		Emails:         emails,
		ActiveCategory: category,
		SelectedIDs:    map[int]bool{},
	}
}

func idsOf(emails []api.Email) []int {
	ids := make([]int, 0, len(emails))
	for _, e := range emails {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestFilteredEmailsByFolder(t *testing.T) {
	emails := triageEmails()

	tests := []struct {
		name     string
		category string
		wantIDs  []int
	}{
		{"all shows everything", "all", []int{1, 2, 3, 4, 5}},
		{"primary is the catch-all, excluding only spam", "primary", []int{1, 2, 4, 5}},
		{"spam matches exactly", "spam", []int{3}},
		{"named category matches exactly", "receipts", []int{4}},
		{"unknown category shows nothing", "archive", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilteredEmails(snapshotFor(tt.category, emails))
			if tt.wantIDs == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.wantIDs, idsOf(got))
		})
	}
}

func TestEveryEmailVisibleInAllAndItsOwnCategory(t *testing.T) {
	emails := triageEmails()
	all := FilteredEmails(snapshotFor("all", emails))

	for _, e := range emails {
		assert.Contains(t, idsOf(all), e.ID)
		own := FilteredEmails(snapshotFor(e.Category, emails))
		assert.Contains(t, idsOf(own), e.ID)
	}
}

func TestSearchOverrideBeatsFolderFilter(t *testing.T) {
	snap := snapshotFor("spam", triageEmails())
	snap.SearchResults = []api.Email{{ID: 4, Category: "receipts"}}

	got := FilteredEmails(snap)
	assert.Equal(t, []int{4}, idsOf(got), "search results display verbatim regardless of the active folder")
}

func TestEmptySearchOverrideShowsNothing(t *testing.T) {
	snap := snapshotFor("all", triageEmails())
	snap.SearchResults = []api.Email{}

	assert.Empty(t, FilteredEmails(snap))
}

func TestVisibleIDsFollowsFilter(t *testing.T) {
	snap := snapshotFor("primary", triageEmails())
	assert.Equal(t, []int{1, 2, 4, 5}, VisibleIDs(snap))

	snap.SearchResults = []api.Email{{ID: 3}}
	assert.Equal(t, []int{3}, VisibleIDs(snap))
}
