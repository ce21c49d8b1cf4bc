package domain

type BookingStatus string

// Status is backend-owned; the client only renders it.
const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
)

// Symbol returns the glyph the bookings screen shows next to a status.
func (s BookingStatus) Symbol() string {
	switch s {
	case StatusConfirmed:
		return "✓"
	case StatusPending:
		return "⏳"
	case StatusCancelled:
		return "✕"
	default:
		return "?"
	}
}

// Booking is the canonical reservation record. HotelName/HotelImage are
// denormalized from the backend's nested hotel object for display.
type Booking struct {
	ID          string
	HotelID     string
	HotelName   string
	HotelImage  string
	CheckIn     string // YYYY-MM-DD
	CheckOut    string // YYYY-MM-DD
	Guests      int
	TotalAmount float64
	Status      BookingStatus
	CreatedAt   string
}

// GuestDetails is the contact block submitted with a booking.
type GuestDetails struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
}

// BookingRequest is the outbound payload for booking creation. The
// idempotency key is minted per submit attempt so a retried submission
// cannot create a duplicate reservation.
type BookingRequest struct {
	HotelID        string
	CheckInDate    string
	CheckOutDate   string
	Guests         int
	Guest          GuestDetails
	TotalAmount    float64
	IdempotencyKey string
}

// Confirmation is the local result of a completed submit flow. It is a
// client-side affordance only: Status stays whatever the backend
// assigned (typically pending until payment clears out-of-band).
type Confirmation struct {
	BookingID  string
	PaymentRef string
	Total      float64
	Status     BookingStatus
}

// BookingStats summarizes a booking history for the profile header.
type BookingStats struct {
	Total      int
	Confirmed  int
	TotalSpent float64
}
