package redisad

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"checkinn/internal/domain"
)

func TestCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	var miss domain.Hotel
	ok, err := c.Get(ctx, "hotel:1", &miss)
	if err != nil || ok {
		t.Fatalf("cold read: ok=%v err=%v", ok, err)
	}

	want := domain.Hotel{ID: "1", Name: "Grand Palazzo Resort", PricePerNight: 420}
	if err := c.Set(ctx, "hotel:1", want, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.Hotel
	ok, err = c.Get(ctx, "hotel:1", &got)
	if err != nil || !ok {
		t.Fatalf("warm read: ok=%v err=%v", ok, err)
	}
	if got.Name != want.Name || got.PricePerNight != want.PricePerNight {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	if err := c.Del(ctx, "hotel:1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "hotel:1", &got); ok {
		t.Fatal("value still present after del")
	}
}
