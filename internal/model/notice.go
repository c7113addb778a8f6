package model

import "time"

type Notice struct {
	ID          string      `db:"id" json:"id"`
	Title       string      `db:"title" json:"title"`
	Content     string      `db:"content" json:"content"`
	Date        string      `db:"date" json:"date"` // YYYY-MM-DD
	Attachments Attachments `db:"attachments" json:"attachments"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}
