package stayapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"checkinn/internal/domain"
)

// CreateBooking posts a reservation with the caller's idempotency key,
// so a retried submit cannot duplicate the booking server-side.
func (c *Client) CreateBooking(ctx context.Context, token string, req domain.BookingRequest) (map[string]any, error) {
	body := map[string]any{
		"guestDetails": map[string]any{
			"fullName": req.Guest.FullName,
			"email":    req.Guest.Email,
			"phone":    req.Guest.Phone,
		},
		"hotelId":      req.HotelID,
		"checkInDate":  req.CheckInDate,
		"checkOutDate": req.CheckOutDate,
		"guests":       req.Guests,
		"totalAmount":  req.TotalAmount,
	}
	var headers map[string]string
	if req.IdempotencyKey != "" {
		headers = map[string]string{"Idempotency-Key": req.IdempotencyKey}
	}
	var out map[string]any
	return out, c.post(ctx, c.apiBase, "/bookings", "create_booking", token, headers, body, &out)
}

// CancelBooking is the compensating action after a failed payment
// intent. Best-effort: callers log failures and move on.
func (c *Client) CancelBooking(ctx context.Context, token, bookingID string) error {
	path := "/bookings/" + url.PathEscape(bookingID)
	return c.do(ctx, http.MethodDelete, c.apiBase+path, "cancel_booking", token, nil, nil, nil)
}

// CreatePaymentIntent references an existing booking. Amount is minor
// currency units (cents).
func (c *Client) CreatePaymentIntent(ctx context.Context, token, bookingID string, amountMinor int64) (map[string]any, error) {
	body := map[string]any{"bookingId": bookingID, "amount": amountMinor}
	var out map[string]any
	return out, c.post(ctx, c.apiBase, "/payment/create-intent", "create_payment_intent", token, nil, body, &out)
}

// ListBookings fetches one page of the user's booking history.
func (c *Client) ListBookings(ctx context.Context, token string, page, limit int) (map[string]any, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 100
	}
	path := fmt.Sprintf("/bookings/user?page=%s&limit=%s",
		strconv.Itoa(page), strconv.Itoa(limit))
	var out map[string]any
	return out, c.get(ctx, path, "list_bookings", token, &out)
}
