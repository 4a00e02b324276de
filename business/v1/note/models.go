package note

import "time"

type Note struct {
	ID        string    `json:"id" example:"0b8e5c3a-8d2f-4a51-9a4e-2f0f3c1d7a10"`
	UserID    string    `json:"user_id" example:"5d1c2b9e-1f7a-4c3e-8b6d-9a0e7f4c2d11"`
	Title     string    `json:"title" example:"Groceries"`
	Content   string    `json:"content" example:"Milk, eggs"`
	CreatedAt time.Time `json:"created_at" example:"2006-01-02T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2006-01-02T15:04:05Z"`
}

// Edited reports whether the note changed after it was created
func (n Note) Edited() bool {
	return n.UpdatedAt.After(n.CreatedAt)
}

type NewNote struct {
	Title   string `json:"title" form:"title" example:"Groceries"`
	Content string `json:"content" form:"content" example:"Milk, eggs"`
}

type UpdateNote struct {
	Title   string `json:"title" form:"title" example:"Groceries"`
	Content string `json:"content" form:"content" example:"Milk, eggs, bread"`
}
