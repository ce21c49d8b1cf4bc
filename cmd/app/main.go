package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"checkinn/internal/adapters/observability"
	redisad "checkinn/internal/adapters/redis"
	"checkinn/internal/adapters/stayapi"
	"checkinn/internal/app"
	"checkinn/internal/domain"
	"checkinn/internal/shared"
	catalogdata "checkinn/internal/storage/catalog"
	sessionstore "checkinn/internal/storage/session"
)

const usage = `usage: checkinn <command> [args]

  login <email> <password>
  register <name> <email> <password> [phone]
  logout
  whoami
  search [query] [sort] [filter]
  hotel <id>
  book <hotelID> <checkIn> <checkOut> <guests> <name> <email> <phone>
  bookings
`

func main() {
	_ = godotenv.Load()

	cfg, err := shared.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)
	observability.Serve()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// session persistence: redis when configured, local file otherwise
	var (
		store domain.SessionStore
		cache domain.Cache
	)
	if cfg.RedisAddr != "" {
		rc := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass, DB: cfg.RedisDB})
		store = sessionstore.NewRedisStore(rc)
		cache = redisad.New(rc)
	} else {
		store = sessionstore.NewFileStore(cfg.SessionPath)
	}

	client, err := stayapi.New(cfg.APIBaseURL, cfg.AuthBaseURL, cfg.RequestRPS, cfg.HTTPTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("API client init failed")
	}

	sessions := app.NewSessionService(store, client)
	if err := sessions.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("session init failed")
	}
	bookings := app.NewBookingService(client, sessions)

	seed, err := catalogdata.Seed()
	if err != nil {
		log.Fatal().Err(err).Msg("seed catalog unreadable")
	}
	catalog := app.NewCatalogService(seed, cache, cfg.CacheTTL)

	if err := run(ctx, os.Args[1], os.Args[2:], sessions, bookings, catalog, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string, sessions *app.SessionService, bookings *app.BookingService, catalog *app.CatalogService, cfg shared.Config) error {
	switch cmd {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("login <email> <password>")
		}
		sess, err := sessions.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s <%s>\n", sess.Name, sess.Email)
		return nil

	case "register":
		if len(args) < 3 {
			return fmt.Errorf("register <name> <email> <password> [phone]")
		}
		in := app.RegisterInput{Name: args[0], Email: args[1], Password: args[2]}
		if len(args) > 3 {
			in.Phone = args[3]
		}
		sess, err := sessions.Register(ctx, in)
		if err != nil {
			return err
		}
		fmt.Printf("welcome, %s\n", sess.Name)
		return nil

	case "logout":
		sessions.Logout(ctx)
		fmt.Println("signed out")
		return nil

	case "whoami":
		sess, state := sessions.Current()
		if state != app.StateAuthenticated {
			fmt.Println("not signed in")
			return nil
		}
		fmt.Printf("%s <%s> (member since %s)\n", sess.Name, sess.Email, sess.JoinDate)
		return nil

	case "search":
		q := domain.CatalogQuery{Sort: domain.SortRating, Filter: domain.FilterAll}
		if len(args) > 0 {
			q.Search = args[0]
		}
		if len(args) > 1 {
			q.Sort = domain.SortKey(args[1])
		}
		if len(args) > 2 {
			q.Filter = domain.FilterKey(args[2])
		}
		hotels := catalog.Browse(q)
		for _, h := range hotels {
			fmt.Printf("%-3s %-28s %-20s $%.0f/night  %.1f★ (%d)\n",
				h.ID, h.Name, h.City+", "+h.Country, h.PricePerNight, h.Rating, h.Reviews)
		}
		fmt.Printf("%d hotels found\n", len(hotels))
		return nil

	case "hotel":
		if len(args) != 1 {
			return fmt.Errorf("hotel <id>")
		}
		h, err := catalog.Get(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n%s, %s, %s\n$%.0f/night  %.1f★ (%d reviews)\n%s\n",
			h.Name, h.Type, h.Address, h.City, h.Country, h.PricePerNight, h.Rating, h.Reviews, h.Description)
		return nil

	case "book":
		if len(args) != 7 {
			return fmt.Errorf("book <hotelID> <checkIn> <checkOut> <guests> <name> <email> <phone>")
		}
		h, err := catalog.Get(ctx, args[0])
		if err != nil {
			return err
		}
		var guests int
		if _, err := fmt.Sscanf(args[3], "%d", &guests); err != nil {
			return fmt.Errorf("guests must be a number")
		}

		checkIn, checkOut, err := domain.ParseStayDates(args[1], args[2])
		if err != nil {
			return err
		}
		quote, err := domain.NewQuote(checkIn, checkOut, h.PricePerNight)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d nights × $%.0f = $%.2f + $%.2f tax + $%.2f fee = $%.2f\n",
			h.Name, quote.Nights, h.PricePerNight, quote.Subtotal, quote.Taxes, quote.Fees, quote.Total)

		conf, err := bookings.Submit(ctx, app.SubmitInput{
			HotelID:       h.ID,
			CheckIn:       args[1],
			CheckOut:      args[2],
			Guests:        guests,
			PricePerNight: h.PricePerNight,
			Guest:         domain.GuestDetails{FullName: args[4], Email: args[5], Phone: args[6]},
		})
		if err != nil {
			return err
		}
		fmt.Printf("booking %s %s $%.2f — payment %s\n",
			conf.BookingID, conf.Status.Symbol(), conf.Total, conf.PaymentRef)
		return nil

	case "bookings":
		bs, err := bookings.History(ctx, 1, cfg.PageLimit)
		if err != nil {
			return err
		}
		for _, b := range bs {
			fmt.Printf("%s %s  %s → %s  %d guests  $%.2f  %s\n",
				b.Status.Symbol(), b.HotelName, b.CheckIn, b.CheckOut, b.Guests, b.TotalAmount, b.Status)
		}
		st := app.Stats(bs)
		fmt.Printf("%d bookings, %d confirmed, $%.2f total spent\n", st.Total, st.Confirmed, st.TotalSpent)
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}
