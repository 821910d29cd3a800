package views

import (
	"github.com/mailsift/mailsift/internal/api"
)

// Folder is one entry in the folder pane.
type Folder struct {
	Name        string
	UnreadCount int
	TotalCount  int
	Deletable   bool
}

// ComputeFolders derives the folder list shown in the sidebar. A synthetic
// "all" entry is always prepended with counts derived from the local email
// collection; the named categories keep the server-reported counts so they
// stay authoritative even when the local list is filtered or stale.
func ComputeFolders(emails []api.Email, categories []api.Category) []Folder {
	unread := 0
	for _, e := range emails {
		if !e.IsRead {
			unread++
		}
	}

	folders := make([]Folder, 0, len(categories)+1)
	folders = append(folders, Folder{
		Name:        api.CategoryAll,
		UnreadCount: unread,
		TotalCount:  len(emails),
	})

	for _, c := range categories {
		folders = append(folders, Folder{
			Name:        c.Name,
			UnreadCount: c.UnreadCount,
			TotalCount:  c.TotalCount,
			Deletable:   c.Name != api.CategoryPrimary && c.Name != api.CategorySpam,
		})
	}
	return folders
}
