package domain

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortRating    SortKey = "rating"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortReviews   SortKey = "reviews"
)

type FilterKey string

const (
	FilterAll      FilterKey = "all"
	FilterResort   FilterKey = "resort"
	FilterBoutique FilterKey = "boutique"
	FilterHotel    FilterKey = "hotel"
	FilterLodge    FilterKey = "lodge"
)

var filterCycle = []FilterKey{FilterAll, FilterResort, FilterBoutique, FilterHotel, FilterLodge}

// Next returns the following filter in the cycle the search screen
// steps through. Unknown values restart at "all".
func (f FilterKey) Next() FilterKey {
	for i, k := range filterCycle {
		if k == f {
			return filterCycle[(i+1)%len(filterCycle)]
		}
	}
	return FilterAll
}

// CatalogQuery is the search screen's input triple.
type CatalogQuery struct {
	Search string
	Sort   SortKey
	Filter FilterKey
}

// FilterHotels applies search, type filter, and sort over an immutable
// catalog and returns a fresh slice. Search is a case-insensitive
// substring match across name/address/city/country; the filter is exact
// case-insensitive equality on the hotel type. Sorting uses
// sort.SliceStable, so ties keep their input order (no secondary key).
func FilterHotels(in []Hotel, q CatalogQuery) []Hotel {
	out := make([]Hotel, 0, len(in))
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, h := range in {
		if needle != "" && !matchesSearch(h, needle) {
			continue
		}
		if q.Filter != "" && q.Filter != FilterAll &&
			!strings.EqualFold(h.Type, string(q.Filter)) {
			continue
		}
		out = append(out, h)
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight < out[j].PricePerNight })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight > out[j].PricePerNight })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortReviews:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Reviews > out[j].Reviews })
	}
	return out
}

func matchesSearch(h Hotel, needle string) bool {
	for _, f := range []string{h.Name, h.Address, h.City, h.Country} {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
