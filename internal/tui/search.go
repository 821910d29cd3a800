package tui

import (
	"strings"
	"time"

	"github.com/derailed/tcell/v2"
)

// initSearch wires the live search box: debounced dispatch on typing,
// immediate dispatch on Enter, history-backed autocompletion.
func (a *App) initSearch() {
	a.searchInput.SetChangedFunc(func(text string) {
		a.mu.Lock()
		if a.searchMuted {
			a.mu.Unlock()
			return
		}
		a.currentQuery = text
		if a.searchTimer != nil {
			a.searchTimer.Stop()
			a.searchTimer = nil
		}
		a.mu.Unlock()

		query := strings.TrimSpace(text)
		if len(query) <= 1 {
			// Short queries drop the override right away so clearing the
			// box snaps back to the folder view without waiting
			a.Dispatch(SearchQuery{Query: query})
			return
		}
		a.scheduleSearch(text)
	})

	a.searchInput.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			a.flushSearch()
			a.SetFocus(a.emailsTable)
		case tcell.KeyEscape:
			a.resetSearchInput()
			a.Dispatch(SearchQuery{Query: ""})
			a.SetFocus(a.emailsTable)
		}
	})

	a.searchInput.SetAutocompleteFunc(func(current string) []string {
		if a.dbStore == nil || strings.TrimSpace(current) == "" {
			return nil
		}
		recent, err := a.dbStore.RecentSearches(a.ctx, 10)
		if err != nil {
			return nil
		}
		var matches []string
		lower := strings.ToLower(current)
		for _, q := range recent {
			if strings.HasPrefix(strings.ToLower(q), lower) && q != current {
				matches = append(matches, q)
			}
		}
		return matches
	})
}

// scheduleSearch arms the debounce timer for the given query, replacing
// any previously armed timer.
func (a *App) scheduleSearch(query string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.searchTimer != nil {
		a.searchTimer.Stop()
	}
	a.searchTimer = time.AfterFunc(a.Config.GetSearchDebounce(), func() {
		a.Dispatch(SearchQuery{Query: query})
	})
}

// flushSearch fires the pending query immediately, bypassing the debounce
func (a *App) flushSearch() {
	a.mu.Lock()
	if a.searchTimer != nil {
		a.searchTimer.Stop()
		a.searchTimer = nil
	}
	query := a.currentQuery
	a.mu.Unlock()
	a.Dispatch(SearchQuery{Query: query})
}

// resetSearchInput blanks the box without triggering a search dispatch
func (a *App) resetSearchInput() {
	a.mu.Lock()
	a.searchMuted = true
	a.currentQuery = ""
	if a.searchTimer != nil {
		a.searchTimer.Stop()
		a.searchTimer = nil
	}
	a.mu.Unlock()

	a.queueRedraw(func() {
		a.searchInput.SetText("")
		a.mu.Lock()
		a.searchMuted = false
		a.mu.Unlock()
	})
}
