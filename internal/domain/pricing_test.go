package domain_test

import (
	"math"
	"testing"
	"time"

	"checkinn/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewQuote_CheckoutScenario(t *testing.T) {
	// 2024-06-15 → 2024-06-22 at 420/night
	q, err := domain.NewQuote(date(t, "2024-06-15"), date(t, "2024-06-22"), 420)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if q.Nights != 7 {
		t.Fatalf("nights: got %d want 7", q.Nights)
	}
	if !approx(q.Subtotal, 2940) {
		t.Fatalf("subtotal: got %v want 2940", q.Subtotal)
	}
	if !approx(q.Taxes, 352.8) {
		t.Fatalf("taxes: got %v want 352.8", q.Taxes)
	}
	if !approx(q.Fees, 25) {
		t.Fatalf("fees: got %v want 25", q.Fees)
	}
	if !approx(q.Total, 3317.8) {
		t.Fatalf("total: got %v want 3317.8", q.Total)
	}
	if q.MinorUnits() != 331780 {
		t.Fatalf("minor units: got %d want 331780", q.MinorUnits())
	}
}

func TestNewQuote_SingleNight(t *testing.T) {
	q, err := domain.NewQuote(date(t, "2024-06-15"), date(t, "2024-06-16"), 180)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if q.Nights != 1 || !approx(q.Total, 180+21.6+25) {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestNewQuote_RejectsNonPositiveStay(t *testing.T) {
	if _, err := domain.NewQuote(date(t, "2024-06-15"), date(t, "2024-06-15"), 420); err == nil {
		t.Fatalf("expected error for zero-night stay")
	}
	if _, err := domain.NewQuote(date(t, "2024-06-22"), date(t, "2024-06-15"), 420); err == nil {
		t.Fatalf("expected error for negative stay")
	}
}

func TestParseStayDates(t *testing.T) {
	in, out, err := domain.ParseStayDates("2024-06-15", "2024-06-22")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !out.After(in) {
		t.Fatalf("parsed dates out of order: %v %v", in, out)
	}
	if _, _, err := domain.ParseStayDates("15/06/2024", "2024-06-22"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}
