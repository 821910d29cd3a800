package api

// Email is a single message as reported by the server. The client keeps a
// locally cached copy that may be briefly stale (e.g. IsRead flipped
// optimistically before the next refresh confirms it).
type Email struct {
	ID       int    `json:"id"`
	From     string `json:"from"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Category string `json:"category"`
	IsRead   bool   `json:"is_read"`
}

// Category is a named folder with server-authoritative counts.
// The synthetic "all" folder is never reported here; it is derived
// client-side from the email collection.
type Category struct {
	Name        string `json:"name"`
	UnreadCount int    `json:"unread_count"`
	TotalCount  int    `json:"total_count"`
}

// Protected category names. These cannot be deleted; the server enforces
// this, the client uses them to decide which folders get a delete action.
const (
	CategoryPrimary = "primary"
	CategorySpam    = "spam"
	CategoryAll     = "all"
)
