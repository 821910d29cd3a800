package views

import (
	"github.com/mailsift/mailsift/internal/api"
	"github.com/mailsift/mailsift/internal/state"
)

// FilteredEmails derives the messages to display for the given session
// snapshot. Precedence:
//
//  1. an active search result overrides folder filtering entirely;
//  2. the synthetic "all" folder shows everything;
//  3. "primary" shows every email whose category is not "spam"; it is
//     the catch-all inbox, not a strict equality filter;
//  4. any other folder matches its category exactly.
//
// The asymmetric primary rule is a deliberate policy choice
// (inbox-as-default semantics) and must not be "fixed" to strict
// equality.
func FilteredEmails(s state.Snapshot) []api.Email {
	if s.SearchResults != nil {
		return s.SearchResults
	}

	switch s.ActiveCategory {
	case api.CategoryAll:
		return s.Emails
	case api.CategoryPrimary:
		out := make([]api.Email, 0, len(s.Emails))
		for _, e := range s.Emails {
			if e.Category != api.CategorySpam {
				out = append(out, e)
			}
		}
		return out
	default:
		out := make([]api.Email, 0, len(s.Emails))
		for _, e := range s.Emails {
			if e.Category == s.ActiveCategory {
				out = append(out, e)
			}
		}
		return out
	}
}

// VisibleIDs returns the ids of the currently displayed emails, in display
// order. Select-all operates on this set, never the unfiltered collection.
func VisibleIDs(s state.Snapshot) []int {
	emails := FilteredEmails(s)
	ids := make([]int, 0, len(emails))
	for _, e := range emails {
		ids = append(ids, e.ID)
	}
	return ids
}
