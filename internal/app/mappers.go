package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"checkinn/internal/domain"
)

/********** alias registries (single source of truth) **********/

// The backend (and the seed data) never settled on one spelling per
// field. All accepted variants live here; nothing outside this file
// should know they exist.

var userAliases = map[string][]string{
	"id":     {"id", "_id", "userId", "user_id"},
	"name":   {"fullName", "full_name", "name"},
	"email":  {"email"},
	"phone":  {"phone", "phoneNumber", "phone_number"},
	"avatar": {"profileImage", "profile_image", "avatar"},
}

var bookingAliases = map[string][]string{
	"id":          {"id", "_id", "bookingId"},
	"hotel_id":    {"hotelId", "hotel_id", "hotel.id", "hotel._id"},
	"hotel_name":  {"hotel.name", "hotelName"},
	"hotel_image": {"hotel.imageUrl", "hotel.image", "hotelImage"},
	"check_in":    {"checkInDate", "checkIn", "check_in"},
	"check_out":   {"checkOutDate", "checkOut", "check_out"},
	"status":      {"status"},
	"created":     {"createdAt", "created_at", "bookingDate"},
}

var hotelAliases = map[string][]string{
	"id":        {"id", "_id", "hotelId"},
	"name":      {"name", "hotel_name"},
	"address":   {"address", "address.line", "street"},
	"city":      {"city", "address.city", "locality"},
	"country":   {"country", "address.country"},
	"image":     {"imageUrl", "image", "image_url"},
	"desc":      {"description"},
	"type":      {"type", "category"},
	"check_in":  {"checkIn", "checkInTime"},
	"check_out": {"checkOut", "checkOutTime"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns string at path or "".
func lookupStr(m map[string]any, path string) string {
	if v := lookupAny(m, path); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// firstAlias: first non-empty string for a named alias set, with
// numbers coerced (backend ids arrive as JSON numbers or strings).
func firstAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		switch v := lookupAny(m, p).(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		}
	}
	return ""
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) (float64, bool) {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func getIntFlexible(m map[string]any, paths ...string) int {
	if f, ok := getFloatFlexible(m, paths...); ok {
		return int(f)
	}
	return 0
}

// firstSliceStrings: accept []any with either strings or {url/src} objects.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				if u, ok := t["url"].(string); ok && u != "" {
					out = append(out, u)
				} else if u, ok := t["src"].(string); ok && u != "" {
					out = append(out, u)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

/********** session mapper **********/

// mapSession turns a login/register envelope into a Session. The id is
// coerced to string, fullName becomes the display name, profileImage
// the avatar. joinDate is stamped "today" client-side; the backend does
// not supply it.
func mapSession(payload map[string]any, now time.Time) (domain.Session, error) {
	user, ok := lookupAny(payload, "data.user").(map[string]any)
	if !ok {
		return domain.Session{}, fmt.Errorf("%w: no user payload", domain.ErrMalformed)
	}
	id := firstAlias(user, userAliases, "id")
	if id == "" {
		return domain.Session{}, fmt.Errorf("%w: user payload without id", domain.ErrMalformed)
	}
	return domain.Session{
		ID:       id,
		Name:     firstAlias(user, userAliases, "name"),
		Email:    firstAlias(user, userAliases, "email"),
		Phone:    firstAlias(user, userAliases, "phone"),
		Avatar:   firstAlias(user, userAliases, "avatar"),
		JoinDate: now.Format("2006-01-02"),
		Token:    lookupStr(payload, "data.token"),
	}, nil
}

/********** booking mappers **********/

// extractBookingID pulls the created booking's identifier out of the
// creation response. Empty means the backend omitted it.
func extractBookingID(payload map[string]any) string {
	if booking, ok := lookupAny(payload, "data.booking").(map[string]any); ok {
		return firstAlias(booking, bookingAliases, "id")
	}
	if data, ok := lookupAny(payload, "data").(map[string]any); ok {
		return firstAlias(data, bookingAliases, "id")
	}
	return ""
}

// extractPaymentRef is best-effort; the intent payload shape is
// backend-defined.
func extractPaymentRef(payload map[string]any) string {
	for _, p := range []string{"data.clientSecret", "data.paymentIntent.id", "data.id", "clientSecret"} {
		if s := lookupStr(payload, p); s != "" {
			return s
		}
	}
	return ""
}

// mapBookings flattens the history envelope: each record's nested
// hotel object is denormalized into top-level display fields.
func mapBookings(payload map[string]any) ([]domain.Booking, error) {
	raw, ok := lookupAny(payload, "data.bookings").([]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing data.bookings", domain.ErrMalformed)
	}
	out := make([]domain.Booking, 0, len(raw))
	for _, it := range raw {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		total, _ := getFloatFlexible(m, "totalAmount", "totalPrice", "total")
		out = append(out, domain.Booking{
			ID:          firstAlias(m, bookingAliases, "id"),
			HotelID:     firstAlias(m, bookingAliases, "hotel_id"),
			HotelName:   firstAlias(m, bookingAliases, "hotel_name"),
			HotelImage:  firstAlias(m, bookingAliases, "hotel_image"),
			CheckIn:     firstAlias(m, bookingAliases, "check_in"),
			CheckOut:    firstAlias(m, bookingAliases, "check_out"),
			Guests:      getIntFlexible(m, "guests", "guestCount"),
			TotalAmount: total,
			Status:      domain.BookingStatus(strings.ToLower(firstAlias(m, bookingAliases, "status"))),
			CreatedAt:   firstAlias(m, bookingAliases, "created"),
		})
	}
	return out, nil
}

/********** hotel mapper **********/

// mapHotels normalizes catalog records. Two layouts exist in the wild:
// a legacy one keyed by location/price/image and the current one keyed
// by address/city/country/pricePerNight/imageUrl.
func mapHotels(raw []map[string]any) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(raw))
	for _, m := range raw {
		out = append(out, mapHotel(m))
	}
	return out
}

func mapHotel(m map[string]any) domain.Hotel {
	price, _ := getFloatFlexible(m, "pricePerNight", "price_per_night", "price")
	rating, _ := getFloatFlexible(m, "rating")

	h := domain.Hotel{
		ID:            firstAlias(m, hotelAliases, "id"),
		Name:          firstAlias(m, hotelAliases, "name"),
		Address:       firstAlias(m, hotelAliases, "address"),
		City:          firstAlias(m, hotelAliases, "city"),
		Country:       firstAlias(m, hotelAliases, "country"),
		PricePerNight: price,
		Rating:        rating,
		Reviews:       getIntFlexible(m, "reviews", "reviewCount"),
		ImageURL:      firstAlias(m, hotelAliases, "image"),
		Images:        firstSliceStrings(m, "images", "photos"),
		Description:   firstAlias(m, hotelAliases, "desc"),
		Amenities:     firstSliceStrings(m, "amenities", "facilities"),
		Type:          firstAlias(m, hotelAliases, "type"),
		CheckInTime:   firstAlias(m, hotelAliases, "check_in"),
		CheckOutTime:  firstAlias(m, hotelAliases, "check_out"),
	}

	// legacy "City, Country" location string
	if h.City == "" && h.Country == "" {
		if loc := lookupStr(m, "location"); loc != "" {
			if h.Address == "" {
				h.Address = loc
			}
			parts := strings.Split(loc, ",")
			h.City = strings.TrimSpace(parts[0])
			if len(parts) > 1 {
				h.Country = strings.TrimSpace(parts[len(parts)-1])
			}
		}
	}

	if lat, ok := getFloatFlexible(m, "coordinates.latitude", "latitude", "lat"); ok {
		if lon, ok := getFloatFlexible(m, "coordinates.longitude", "longitude", "lng", "lon"); ok {
			h.Coords = &domain.Coords{Lat: lat, Lon: lon}
		}
	}
	return h
}
