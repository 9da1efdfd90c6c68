package announcement

// Announcement is a company-wide notice. There is no edit operation, only
// create and delete.
type Announcement struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"` // YYYY-MM-DD publish date
	Author  string `json:"author"`
}
