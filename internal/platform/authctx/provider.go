// Package authctx validates bearer tokens minted by the hosted auth provider
// and carries the resulting session through request contexts.
//
// A Provider has an explicit lifecycle: create it with New, observe sign-in
// outcomes with Subscribe, and release subscribers with Close.
package authctx

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

// Session is the authenticated principal for one request.
type Session struct {
	UserID    domain.UserID
	Email     string
	Role      string
	ExpiresAt time.Time
}

// EventKind distinguishes authentication outcomes.
type EventKind string

const (
	EventSignedIn EventKind = "signed_in"
	EventRejected EventKind = "rejected"
)

// Event is delivered to subscribers after every Authenticate call.
type Event struct {
	Kind    EventKind
	Session *Session
	Reason  string
	At      time.Time
}

// Claims is the token payload: sub carries the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Config names the signing secret and the expected issuer/audience.
// Issuer and Audience are checked only when non-empty.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	Leeway   time.Duration
}

type subscriber struct {
	id int
	fn func(Event)
}

// Provider validates tokens and fans out authentication events.
type Provider struct {
	cfg    Config
	parser *jwt.Parser
	now    func() time.Time

	mu          sync.Mutex
	closed      bool
	nextID      int
	subscribers []subscriber
}

// Option configures a Provider.
type Option func(*Provider)

// WithClock overrides the time source used for expiry checks and events.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}

// New returns a Provider. The secret is required.
func New(cfg Config, opts ...Option) (*Provider, error) {
	if cfg.Secret == "" {
		return nil, errors.New("auth secret is required")
	}
	p := &Provider{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithTimeFunc(func() time.Time { return p.now() }),
	}
	if cfg.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(cfg.Audience))
	}
	p.parser = jwt.NewParser(parserOpts...)
	return p, nil
}

// Subscribe registers fn for authentication events. The returned function
// removes the subscription and is safe to call more than once.
// Subscribing to a closed Provider is a no-op.
func (p *Provider) Subscribe(fn func(Event)) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || fn == nil {
		return func() {}
	}
	p.nextID++
	id := p.nextID
	p.subscribers = append(p.subscribers, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			p.subscribers = slices.DeleteFunc(p.subscribers, func(s subscriber) bool { return s.id == id })
		})
	}
}

// Close drops every subscriber. Later Authenticate calls fail with unavailable.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.subscribers = nil
}

// Authenticate validates a raw bearer token and returns its session.
func (p *Provider) Authenticate(_ context.Context, token string) (*Session, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return nil, dErrors.New(dErrors.CodeUnavailable, "authentication provider closed")
	}

	session, reason := p.parse(token)
	if session == nil {
		p.publish(Event{Kind: EventRejected, Reason: reason, At: p.now()})
		return nil, dErrors.New(dErrors.CodeUnauthorized, "Invalid or expired token")
	}
	p.publish(Event{Kind: EventSignedIn, Session: session, At: p.now()})
	return session, nil
}

func (p *Provider) parse(token string) (*Session, string) {
	if token == "" {
		return nil, "missing token"
	}
	claims := &Claims{}
	if _, err := p.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(p.cfg.Secret), nil
	}); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, "token expired"
		}
		return nil, "invalid token"
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil || userID.IsNil() {
		return nil, "invalid subject"
	}
	return &Session{
		UserID:    userID,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, ""
}

func (p *Provider) publish(e Event) {
	p.mu.Lock()
	subs := slices.Clone(p.subscribers)
	p.mu.Unlock()
	for _, s := range subs {
		s.fn(e)
	}
}

// Sign mints an HS256 token for s. Used by tokengen and tests; production
// tokens come from the hosted provider.
func Sign(cfg Config, s Session, issuedAt time.Time) (string, error) {
	claims := Claims{
		Email: s.Email,
		Role:  s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID.String(),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}
	if cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{cfg.Audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}
