package domain_test

import (
	"testing"

	"checkinn/internal/domain"
)

func sample() []domain.Hotel {
	return []domain.Hotel{
		{ID: "1", Name: "Grand Palazzo Resort", City: "Santorini", Country: "Greece", Type: "Resort", PricePerNight: 420, Rating: 4.9, Reviews: 847},
		{ID: "2", Name: "Urban Boutique Hotel", Address: "5th Avenue 120", City: "New York", Country: "USA", Type: "Boutique", PricePerNight: 285, Rating: 4.7, Reviews: 1203},
		{ID: "3", Name: "Tropical Paradise Lodge", City: "Ubud", Country: "Indonesia", Type: "Lodge", PricePerNight: 180, Rating: 4.8, Reviews: 692},
	}
}

func ids(hs []domain.Hotel) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.ID
	}
	return out
}

func TestFilterHotels_EmptyQueryKeepsOrder(t *testing.T) {
	in := sample()
	out := domain.FilterHotels(in, domain.CatalogQuery{})
	if len(out) != len(in) {
		t.Fatalf("expected full list, got %d of %d", len(out), len(in))
	}
	for i := range in {
		if out[i].ID != in[i].ID {
			t.Fatalf("order changed at %d: %s != %s", i, out[i].ID, in[i].ID)
		}
	}
}

func TestFilterHotels_PriceSortRoundTrip(t *testing.T) {
	in := sample()
	low := domain.FilterHotels(in, domain.CatalogQuery{Sort: domain.SortPriceLow})
	high := domain.FilterHotels(in, domain.CatalogQuery{Sort: domain.SortPriceHigh})
	for i := range low {
		if low[i].ID != high[len(high)-1-i].ID {
			t.Fatalf("price-high is not the reverse of price-low: %v vs %v", ids(low), ids(high))
		}
	}
}

func TestFilterHotels_PriceScenario(t *testing.T) {
	in := []domain.Hotel{
		{ID: "a", PricePerNight: 180},
		{ID: "b", PricePerNight: 420},
	}
	low := domain.FilterHotels(in, domain.CatalogQuery{Sort: domain.SortPriceLow})
	if low[0].PricePerNight != 180 || low[1].PricePerNight != 420 {
		t.Fatalf("price-low order wrong: %v", ids(low))
	}
	high := domain.FilterHotels(in, domain.CatalogQuery{Sort: domain.SortPriceHigh})
	if high[0].PricePerNight != 420 || high[1].PricePerNight != 180 {
		t.Fatalf("price-high order wrong: %v", ids(high))
	}
}

func TestFilterHotels_Search(t *testing.T) {
	out := domain.FilterHotels(sample(), domain.CatalogQuery{Search: "new york"})
	if len(out) != 1 || out[0].ID != "2" {
		t.Fatalf("expected hotel 2, got %v", ids(out))
	}
	// substring match against country too
	out = domain.FilterHotels(sample(), domain.CatalogQuery{Search: "GREE"})
	if len(out) != 1 || out[0].ID != "1" {
		t.Fatalf("expected hotel 1, got %v", ids(out))
	}
}

func TestFilterHotels_TypeFilter(t *testing.T) {
	out := domain.FilterHotels(sample(), domain.CatalogQuery{Filter: domain.FilterLodge})
	if len(out) != 1 || out[0].ID != "3" {
		t.Fatalf("expected lodge only, got %v", ids(out))
	}
	out = domain.FilterHotels(sample(), domain.CatalogQuery{Filter: domain.FilterAll})
	if len(out) != 3 {
		t.Fatalf("filter all should keep everything, got %v", ids(out))
	}
}

func TestFilterKey_NextCycles(t *testing.T) {
	order := []domain.FilterKey{
		domain.FilterAll, domain.FilterResort, domain.FilterBoutique,
		domain.FilterHotel, domain.FilterLodge, domain.FilterAll,
	}
	f := domain.FilterAll
	for i := 1; i < len(order); i++ {
		f = f.Next()
		if f != order[i] {
			t.Fatalf("cycle step %d: got %s want %s", i, f, order[i])
		}
	}
	if domain.FilterKey("bogus").Next() != domain.FilterAll {
		t.Fatalf("unknown filter should restart at all")
	}
}

func TestFilterHotels_StableTies(t *testing.T) {
	in := []domain.Hotel{
		{ID: "x", PricePerNight: 200},
		{ID: "y", PricePerNight: 200},
		{ID: "z", PricePerNight: 100},
	}
	out := domain.FilterHotels(in, domain.CatalogQuery{Sort: domain.SortPriceLow})
	if out[0].ID != "z" || out[1].ID != "x" || out[2].ID != "y" {
		t.Fatalf("equal prices must keep input order, got %v", ids(out))
	}
}
