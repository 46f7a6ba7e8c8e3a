package domain

import "time"

type Poll struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	PollTypeID  int64      `json:"poll_type_id"`
	UserID      int64      `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
}

// Expired reports whether the poll stopped accepting votes and option
// changes. A nil ClosedAt means the poll is open indefinitely; a ClosedAt
// exactly equal to now is still open.
func (p *Poll) Expired(now time.Time) bool {
	return p.ClosedAt != nil && p.ClosedAt.Before(now)
}

type PollOption struct {
	ID         int64  `json:"id"`
	PollID     int64  `json:"poll_id"`
	OptionText string `json:"option_text"`
}
