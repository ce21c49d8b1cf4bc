package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"checkinn/internal/adapters/observability"
	"checkinn/internal/domain"
)

type SessionState int

const (
	StateUninitialized SessionState = iota
	StateAnonymous
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "uninitialized"
	}
}

// RegisterInput is validated before any network call is made.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Phone    string `validate:"omitempty,min=5"`
}

// SessionService is the process-wide source of truth for identity. It
// starts Uninitialized; Init performs the single load transition, after
// which the state is Anonymous or Authenticated until Login/Register/
// Logout move it. Dependents that read before Init completes must treat
// the state as loading, not anonymous.
type SessionService struct {
	store    domain.SessionStore
	auth     domain.AuthAPI
	validate *validator.Validate
	clock    func() time.Time

	mu      sync.RWMutex
	state   SessionState
	session domain.Session
	subs    []func(SessionState)
}

func NewSessionService(store domain.SessionStore, auth domain.AuthAPI) *SessionService {
	return &SessionService{
		store:    store,
		auth:     auth,
		validate: validator.New(),
		clock:    time.Now,
		state:    StateUninitialized,
	}
}

// Init loads the persisted session. It runs the Uninitialized exit
// exactly once; later calls are no-ops. A stored record whose token has
// verifiably expired resolves to Anonymous and the record is cleared.
func (s *SessionService) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateUninitialized {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	sess, ok, err := s.store.Load(ctx)
	if err != nil {
		// storage trouble is not fatal for startup: run anonymous
		log.Warn().Err(err).Msg("session load failed, starting anonymous")
		s.transition(StateAnonymous, domain.Session{})
		return nil
	}
	if !ok {
		s.transition(StateAnonymous, domain.Session{})
		return nil
	}
	if tokenExpired(sess.Token, s.clock()) {
		log.Info().Str("user", sess.ID).Msg("stored token expired, clearing session")
		if cerr := s.store.Clear(ctx); cerr != nil {
			log.Warn().Err(cerr).Msg("clearing expired session failed")
		}
		s.transition(StateAnonymous, domain.Session{})
		return nil
	}
	s.transition(StateAuthenticated, sess)
	return nil
}

// Current returns the session and the state it belongs to. The session
// value is meaningful only in StateAuthenticated.
func (s *SessionService) Current() (domain.Session, SessionState) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.state
}

func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAuthenticated
}

// Token returns the bearer credential or ErrUnauthenticated. A session
// without a token counts as unauthenticated for authorization purposes.
func (s *SessionService) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated || !s.session.Authorized() {
		return "", domain.ErrUnauthenticated
	}
	return s.session.Token, nil
}

// Subscribe registers a state-change listener. Listeners are invoked
// after each transition, outside the service lock.
func (s *SessionService) Subscribe(fn func(SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Login authenticates against the backend. The resulting session is
// persisted before the Authenticated state becomes observable; if the
// store write fails the login fails and the state stays Anonymous.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	payload, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	return s.establish(ctx, payload)
}

// Register creates an account and signs in with the returned session.
func (s *SessionService) Register(ctx context.Context, in RegisterInput) (domain.Session, error) {
	if err := s.validate.Struct(in); err != nil {
		return domain.Session{}, fmt.Errorf("register input: %w", err)
	}
	payload, err := s.auth.Register(ctx, in.Name, in.Email, in.Password, in.Phone)
	if err != nil {
		return domain.Session{}, fmt.Errorf("register: %w", err)
	}
	return s.establish(ctx, payload)
}

func (s *SessionService) establish(ctx context.Context, payload map[string]any) (domain.Session, error) {
	sess, err := mapSession(payload, s.clock())
	if err != nil {
		return domain.Session{}, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}
	s.transition(StateAuthenticated, sess)
	return sess, nil
}

// Logout always succeeds from the caller's perspective: the in-memory
// session is dropped even if the store write fails.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		log.Warn().Err(err).Msg("clearing stored session failed")
	}
	s.transition(StateAnonymous, domain.Session{})
}

func (s *SessionService) transition(to SessionState, sess domain.Session) {
	s.mu.Lock()
	from := s.state
	s.state = to
	s.session = sess
	subs := make([]func(SessionState), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	observability.ObserveSession(from.String(), to.String())
	for _, fn := range subs {
		fn(to)
	}
}

// tokenExpired reports whether the bearer token is a JWT whose exp is
// in the past. Tokens are otherwise opaque: anything that doesn't parse
// as a JWT, or parses without an exp claim, is trusted as-is.
func tokenExpired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
