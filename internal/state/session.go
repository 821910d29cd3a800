package state

import (
	"sort"
	"sync"

	"github.com/mailsift/mailsift/internal/api"
)

// Session is the single authority for what the UI should show: the cached
// email collection, the active folder and email, the bulk-selection set
// and any server-side search override. All mutation goes through its
// methods; view models receive an immutable Snapshot.
type Session struct {
	mu sync.RWMutex

	emails         []api.Email
	activeCategory string
	activeEmailID  int // 0 = none
	selected       map[int]bool
	searchResults  []api.Email // nil = no override, empty slice = empty result

	// Refresh sequencing. Each refresh takes a ticket from dispatchedSeq;
	// a response is only applied if no newer refresh has been dispatched
	// since, so a late-arriving stale fetch can never clobber state set
	// by a chronologically later action.
	dispatchedSeq uint64
	appliedSeq    uint64
}

// Snapshot is an immutable view of the session handed to view models.
type Snapshot struct {
	Emails         []api.Email
	ActiveCategory string
	ActiveEmailID  int
	SelectedIDs    map[int]bool
	SearchResults  []api.Email
}

// NewSession returns a session with page-load defaults: no emails, the
// synthetic "all" folder active, nothing selected or open.
func NewSession() *Session {
	return &Session{
		activeCategory: api.CategoryAll,
		selected:       make(map[int]bool),
	}
}

// Snapshot returns a copy of the current state. Slices and the selection
// map are copied so a refresh replacing the collection wholesale cannot
// invalidate a snapshot a caller is still holding.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Emails:         append([]api.Email(nil), s.emails...),
		ActiveCategory: s.activeCategory,
		ActiveEmailID:  s.activeEmailID,
		SelectedIDs:    make(map[int]bool, len(s.selected)),
	}
	for id := range s.selected {
		snap.SelectedIDs[id] = true
	}
	if s.searchResults != nil {
		snap.SearchResults = append([]api.Email{}, s.searchResults...)
	}
	return snap
}

// BeginRefresh issues a ticket for a refresh about to be dispatched.
func (s *Session) BeginRefresh() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatchedSeq++
	return s.dispatchedSeq
}

// ApplyEmails replaces the email collection wholesale, unless the ticket
// is stale (a newer refresh was dispatched after this one started).
// Returns false when the response was discarded.
func (s *Session) ApplyEmails(seq uint64, emails []api.Email) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.dispatchedSeq || seq <= s.appliedSeq {
		return false
	}
	s.emails = append([]api.Email(nil), emails...)
	s.appliedSeq = seq
	return true
}

// ActiveCategory returns the folder currently selected for display.
func (s *Session) ActiveCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeCategory
}

// SetActiveCategory selects a folder. This is the single transition that
// drives re-filtering: it clears any search override and the selection
// set, since both are scoped to the previous view.
func (s *Session) SetActiveCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeCategory = name
	s.searchResults = nil
	s.selected = make(map[int]bool)
}

// ActiveEmailID returns the id of the open email, 0 if none.
func (s *Session) ActiveEmailID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeEmailID
}

// SetActiveEmail records which email is open in the detail pane.
// Pass 0 to reset to the empty-selection placeholder.
func (s *Session) SetActiveEmail(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeEmailID = id
}

// EmailByID looks up an email in the cached collection.
func (s *Session) EmailByID(id int) (api.Email, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.emails {
		if e.ID == id {
			return e, true
		}
	}
	return api.Email{}, false
}

// MarkRead flips IsRead locally ahead of server confirmation. The next
// full refresh overwrites the optimistic value with whatever the server
// reports. Returns true if the flag actually changed.
func (s *Session) MarkRead(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.emails {
		if s.emails[i].ID == id {
			if s.emails[i].IsRead {
				return false
			}
			s.emails[i].IsRead = true
			return true
		}
	}
	return false
}

// SetSearchResults installs a server-side search result that overrides
// folder filtering entirely. Search results are a fresh view, so the
// selection set is cleared.
func (s *Session) SetSearchResults(emails []api.Email) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchResults = append([]api.Email{}, emails...)
	s.selected = make(map[int]bool)
}

// ClearSearch removes the search override, falling back to folder
// filtering. Distinct from an empty search result.
func (s *Session) ClearSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.searchResults == nil {
		return
	}
	s.searchResults = nil
	s.selected = make(map[int]bool)
}

// HasSearchOverride reports whether a search result is currently
// overriding folder filtering.
func (s *Session) HasSearchOverride() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchResults != nil
}

// ToggleSelected adds or removes one email from the selection set.
func (s *Session) ToggleSelected(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
}

// SetSelected replaces the selection set with exactly the given ids.
func (s *Session) SetSelected(ids ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[int]bool, len(ids))
	for _, id := range ids {
		s.selected[id] = true
	}
}

// ClearSelection empties the selection set.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[int]bool)
}

// IsSelected reports whether the email is in the selection set.
func (s *Session) IsSelected(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected[id]
}

// SelectedIDs returns the selection set in ascending order.
func (s *Session) SelectedIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SelectionCount returns the number of selected emails.
func (s *Session) SelectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}
