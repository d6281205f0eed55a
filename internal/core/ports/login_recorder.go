package ports

import "github.com/sportshop/shop-system/internal/core/domain"

// LoginRecorder accepts one event per successful login. Recording is
// fire-and-forget from the login flow's perspective.
type LoginRecorder interface {
	Record(event domain.LoginEvent)
}

// LoginSink is the durable end of the login history: an append to the
// backing document.
type LoginSink interface {
	Append(event domain.LoginEvent) error
}
