package domain

import "context"

// SessionStore persists the single session record across process
// restarts. Load reports absent as ok=false; corrupt stored data is
// treated as absent, never as an error that crashes the caller.
type SessionStore interface {
	Load(ctx context.Context) (Session, bool, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// AuthAPI wraps the remote authentication endpoints. Payloads come back
// as decoded generic JSON; the app mapping layer turns them into a
// Session.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (map[string]any, error)
	Register(ctx context.Context, fullName, email, password, phone string) (map[string]any, error)
}

// BookingAPI wraps the remote booking and payment endpoints. All calls
// require a bearer token; amounts on payment intents are minor units.
type BookingAPI interface {
	CreateBooking(ctx context.Context, token string, req BookingRequest) (map[string]any, error)
	CancelBooking(ctx context.Context, token, bookingID string) error
	CreatePaymentIntent(ctx context.Context, token, bookingID string, amountMinor int64) (map[string]any, error)
	ListBookings(ctx context.Context, token string, page, limit int) (map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
