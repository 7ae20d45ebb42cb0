// Package jwks verifies RS256 bearer tokens issued by a third-party identity provider.
package jwks

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"syncfloww/config"
	"syncfloww/internal/domain/service"
	"syncfloww/internal/errors"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnknownKey     = errors.New("jwks: no key for kid")
	ErrMissingEmail   = errors.New("jwks: token carries no email claim")
	ErrMissingSubject = errors.New("jwks: token carries no sub claim")
	errMissingKeyID   = errors.New("jwks: token header has no kid")
	errFetchRejected  = errors.New("jwks: document request failed")
)

const fetchTimeout = 10 * time.Second

// Verifier caches the key set for cacheTTL and refetches early on an unseen kid,
// at most once per minRefresh.
type Verifier struct {
	url        string
	audience   string
	cacheTTL   time.Duration
	minRefresh time.Duration
	httpClient *http.Client
	now        func() time.Time

	mu          sync.RWMutex
	keys        map[string]*rsa.PublicKey
	fetchedAt   time.Time
	lastAttempt time.Time
}

// NewVerifier returns nil when externalAuth is not configured.
func NewVerifier(cfg *config.Config) service.ExternalTokenVerifier {
	if cfg.ExternalAuth == nil || cfg.ExternalAuth.JWKSURL == "" {
		return nil
	}

	return newVerifier(*cfg.ExternalAuth, &http.Client{Timeout: fetchTimeout})
}

func newVerifier(cfg config.ExternalAuthConfig, client *http.Client) *Verifier {
	return &Verifier{
		url:        cfg.JWKSURL,
		audience:   cfg.Audience,
		cacheTTL:   cfg.CacheTTL,
		minRefresh: cfg.MinRefreshInterval,
		httpClient: client,
		now:        time.Now,
	}
}

type externalClaims struct {
	Email         string `json:"email"`
	EmailVerified any    `json:"email_verified"` // Some issuers send the string "true".
	Name          string `json:"name"`
	jwt.RegisteredClaims
}

func (c *externalClaims) emailVerified() bool {
	switch v := c.EmailVerified.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// Verify checks signature, expiry and audience and returns the caller identity.
func (v *Verifier) Verify(ctx context.Context, token string) (*service.ExternalIdentity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &externalClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errMissingKeyID
		}

		return v.key(ctx, kid)
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "verify external token")
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	if claims.Email == "" {
		return nil, ErrMissingEmail
	}

	return &service.ExternalIdentity{
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.emailVerified(),
		Name:          claims.Name,
	}, nil
}

func (v *Verifier) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	fresh := v.isFresh()
	v.mu.RUnlock()
	if ok && fresh {
		return key, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	key, ok = v.keys[kid]
	if ok && v.isFresh() {
		return key, nil
	}
	// One fetch attempt per minRefresh, fresh or not. Stale keys are served in between.
	if !v.lastAttempt.IsZero() && v.now().Sub(v.lastAttempt) < v.minRefresh {
		if ok {
			return key, nil
		}

		return nil, ErrUnknownKey
	}

	v.lastAttempt = v.now()
	keys, err := v.fetch(ctx)
	if err != nil {
		if ok {
			return key, nil
		}

		return nil, err
	}
	v.keys = keys
	v.fetchedAt = v.now()

	if key, ok := v.keys[kid]; ok {
		return key, nil
	}

	return nil, ErrUnknownKey
}

// isFresh must be called with mu held.
func (v *Verifier) isFresh() bool {
	return v.keys != nil && v.now().Sub(v.fetchedAt) < v.cacheTTL
}

func (v *Verifier) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build jwks request")
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch jwks")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(errFetchRejected, "status %d", resp.StatusCode)
	}

	var set jose.JSONWebKeySet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, errors.Wrap(err, "decode jwks")
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Use != "" && k.Use != "sig" {
			continue
		}
		if pub, ok := k.Key.(*rsa.PublicKey); ok && k.KeyID != "" {
			keys[k.KeyID] = pub
		}
	}

	return keys, nil
}
