package domain

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	PollID    int64     `json:"poll_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
