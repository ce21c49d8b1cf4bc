package app

import (
	"context"
	"encoding/json"

	"checkinn/internal/domain"
)

// ---- port fakes ----

type fakeStore struct {
	sess     *domain.Session
	saveErr  error
	clearErr error
	loadErr  error
	saves    int
	clears   int
}

func (f *fakeStore) Load(ctx context.Context) (domain.Session, bool, error) {
	if f.loadErr != nil {
		return domain.Session{}, false, f.loadErr
	}
	if f.sess == nil {
		return domain.Session{}, false, nil
	}
	return *f.sess, true, nil
}

func (f *fakeStore) Save(ctx context.Context, s domain.Session) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := s
	f.sess = &cp
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.clears++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.sess = nil
	return nil
}

type fakeAuth struct {
	payload map[string]any
	err     error
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (map[string]any, error) {
	return f.payload, f.err
}

func (f *fakeAuth) Register(ctx context.Context, fullName, email, password, phone string) (map[string]any, error) {
	return f.payload, f.err
}

type fakeAPI struct {
	createResp  map[string]any
	createErr   error
	createCalls int
	lastReq     domain.BookingRequest

	intentResp    map[string]any
	intentErr     error
	intentCalls   int
	lastAmount    int64
	lastBookingID string

	cancelErr   error
	cancelCalls int
	cancelledID string

	listResp  map[string]any
	listErr   error
	listCalls int
}

func (f *fakeAPI) CreateBooking(ctx context.Context, token string, req domain.BookingRequest) (map[string]any, error) {
	f.createCalls++
	f.lastReq = req
	return f.createResp, f.createErr
}

func (f *fakeAPI) CancelBooking(ctx context.Context, token, bookingID string) error {
	f.cancelCalls++
	f.cancelledID = bookingID
	return f.cancelErr
}

func (f *fakeAPI) CreatePaymentIntent(ctx context.Context, token, bookingID string, amountMinor int64) (map[string]any, error) {
	f.intentCalls++
	f.lastBookingID = bookingID
	f.lastAmount = amountMinor
	return f.intentResp, f.intentErr
}

func (f *fakeAPI) ListBookings(ctx context.Context, token string, page, limit int) (map[string]any, error) {
	f.listCalls++
	return f.listResp, f.listErr
}

type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token() (string, error) { return s.token, s.err }

type fakeCache struct{ store map[string][]byte }

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

// envelope builds the auth response shape the backend returns.
func envelope(id any, fullName, email, token string) map[string]any {
	return map[string]any{
		"data": map[string]any{
			"user": map[string]any{
				"id":           id,
				"fullName":     fullName,
				"email":        email,
				"profileImage": "",
			},
			"token": token,
		},
	}
}
