package note

import "time"

const (
	table   = "notes"
	columns = "*"
)

// Note is a row of the notes table
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NewNote struct {
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteUpdate carries no updated_at, the notes_updated_at trigger sets it
type NoteUpdate struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
