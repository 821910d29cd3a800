package tui

import (
	"github.com/mailsift/mailsift/internal/render"
	"github.com/mailsift/mailsift/internal/views"
)

// renderFolders rebuilds the folder pane from the session snapshot and the
// latest server category list. Must run on the UI goroutine.
func (a *App) renderFolders() {
	snap := a.session.Snapshot()
	folders := views.ComputeFolders(snap.Emails, a.Categories())

	active := snap.ActiveCategory
	current := -1

	a.foldersList.Clear()
	for i, f := range folders {
		label := render.FolderLabel(f.Name, f.UnreadCount, f.TotalCount)
		name := f.Name
		a.foldersList.AddItem(label, "", 0, func() {
			a.Dispatch(SelectFolder{Name: name})
		})
		if f.Name == active {
			current = i
		}
	}
	if current >= 0 {
		a.foldersList.SetCurrentItem(current)
	}
}

// folderAt resolves the folder under the given list index
func (a *App) folderAt(index int) (views.Folder, bool) {
	snap := a.session.Snapshot()
	folders := views.ComputeFolders(snap.Emails, a.Categories())
	if index < 0 || index >= len(folders) {
		return views.Folder{}, false
	}
	return folders[index], true
}
