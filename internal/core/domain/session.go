package domain

import "time"

// Session is the server-held per-caller state bridging requests. It is
// created on successful login with an empty cart, carries the issued
// credential, and dies when its store TTL elapses or it is explicitly
// cleared.
type Session struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Credential string    `json:"credential"`
	Cart       Cart      `json:"cart"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoginEvent is one record of the append-only login history document.
type LoginEvent struct {
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}
