package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"checkinn/internal/adapters/observability"
	"checkinn/internal/domain"
)

// TokenSource yields the current bearer credential, normally the
// SessionService.
type TokenSource interface {
	Token() (string, error)
}

// SubmitInput is the checkout form. The total is not an input: it is
// derived from the nightly rate here, so what was quoted on screen and
// what goes over the wire come from the same arithmetic.
type SubmitInput struct {
	HotelID       string  `validate:"required"`
	CheckIn       string  `validate:"required"` // YYYY-MM-DD
	CheckOut      string  `validate:"required"`
	Guests        int     `validate:"min=1"`
	PricePerNight float64 `validate:"gt=0"`
	Guest         domain.GuestDetails
}

// BookingService sequences the booking flow against the remote API and
// loads the booking history. All steps are strictly sequential.
type BookingService struct {
	api      domain.BookingAPI
	tokens   TokenSource
	validate *validator.Validate
}

func NewBookingService(api domain.BookingAPI, tokens TokenSource) *BookingService {
	return &BookingService{api: api, tokens: tokens, validate: validator.New()}
}

// Submit runs create booking → create payment intent → confirmation.
// A create failure aborts before any payment call. A payment failure
// triggers a best-effort compensating cancel of the created booking and
// surfaces a PaymentError carrying the booking id.
func (s *BookingService) Submit(ctx context.Context, in SubmitInput) (domain.Confirmation, error) {
	token, err := s.tokens.Token()
	if err != nil {
		return domain.Confirmation{}, err
	}
	if err := s.validate.Struct(in); err != nil {
		return domain.Confirmation{}, fmt.Errorf("booking input: %w", err)
	}
	if err := s.validate.Struct(in.Guest); err != nil {
		return domain.Confirmation{}, fmt.Errorf("guest details: %w", err)
	}

	checkIn, checkOut, err := domain.ParseStayDates(in.CheckIn, in.CheckOut)
	if err != nil {
		return domain.Confirmation{}, err
	}
	quote, err := domain.NewQuote(checkIn, checkOut, in.PricePerNight)
	if err != nil {
		return domain.Confirmation{}, err
	}

	req := domain.BookingRequest{
		HotelID:        in.HotelID,
		CheckInDate:    in.CheckIn,
		CheckOutDate:   in.CheckOut,
		Guests:         in.Guests,
		Guest:          in.Guest,
		TotalAmount:    quote.Total,
		IdempotencyKey: uuid.NewString(),
	}
	created, err := s.api.CreateBooking(ctx, token, req)
	if err != nil {
		observability.ObserveBooking("create", "failed")
		return domain.Confirmation{}, fmt.Errorf("create booking: %w", err)
	}
	observability.ObserveBooking("create", "ok")

	bookingID := extractBookingID(created)
	if bookingID == "" {
		// backend omitted the id; flow proceeds, but the anomaly is visible
		log.Warn().Str("hotel", in.HotelID).Msg("booking created without an id in the response")
	}

	intent, err := s.api.CreatePaymentIntent(ctx, token, bookingID, quote.MinorUnits())
	if err != nil {
		observability.ObserveBooking("payment_intent", "failed")
		s.compensate(ctx, token, bookingID)
		return domain.Confirmation{}, &domain.PaymentError{BookingID: bookingID, Err: err}
	}
	observability.ObserveBooking("payment_intent", "ok")

	// local confirmation only; the backend keeps the booking pending
	// until payment clears out-of-band
	return domain.Confirmation{
		BookingID:  bookingID,
		PaymentRef: extractPaymentRef(intent),
		Total:      quote.Total,
		Status:     domain.StatusPending,
	}, nil
}

func (s *BookingService) compensate(ctx context.Context, token, bookingID string) {
	if bookingID == "" {
		return
	}
	if err := s.api.CancelBooking(ctx, token, bookingID); err != nil {
		observability.ObserveBooking("compensate", "failed")
		log.Warn().Err(err).Str("booking", bookingID).Msg("compensating cancel failed, booking left pending")
		return
	}
	observability.ObserveBooking("compensate", "ok")
}

// History fetches one page of the user's bookings, flattened for
// display. Failures and malformed payloads degrade to an empty list
// with a logged warning; history is read-only and non-critical.
func (s *BookingService) History(ctx context.Context, page, limit int) ([]domain.Booking, error) {
	token, err := s.tokens.Token()
	if err != nil {
		return nil, err
	}
	payload, err := s.api.ListBookings(ctx, token, page, limit)
	if err != nil {
		observability.ObserveBooking("history", "failed")
		log.Warn().Err(err).Msg("loading bookings failed")
		return []domain.Booking{}, nil
	}
	bs, err := mapBookings(payload)
	if err != nil {
		observability.ObserveBooking("history", "failed")
		log.Warn().Err(err).Msg("bookings payload malformed")
		return []domain.Booking{}, nil
	}
	observability.ObserveBooking("history", "ok")
	return bs, nil
}

// Stats summarizes a history slice for the profile header.
func Stats(bs []domain.Booking) domain.BookingStats {
	st := domain.BookingStats{Total: len(bs)}
	for _, b := range bs {
		if b.Status == domain.StatusConfirmed {
			st.Confirmed++
		}
		st.TotalSpent += b.TotalAmount
	}
	return st
}
