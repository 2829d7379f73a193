package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// expiryBuffer is subtracted from the server-reported lifetime so tokens are
// renewed before they actually expire; in-flight requests and clock skew
// would otherwise race the cutoff.
const expiryBuffer = 300 * time.Second

// tokenResponse is the identity provider's token-issuance payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// TokenManager exchanges client credentials for bearer tokens and caches the
// result in memory. Expiry is detected lazily on the next Acquire, not by a
// timer. Concurrent acquirers that find no valid token share one refresh
// round trip and observe the same outcome.
type TokenManager struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client
	logger       zerolog.Logger

	mu        sync.Mutex
	token     string
	expiresAt time.Time

	group singleflight.Group
	now   func() time.Time
}

func newTokenManager(clientID, clientSecret, tokenURL string, httpClient *http.Client, logger zerolog.Logger) *TokenManager {
	return &TokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     tokenURL,
		httpClient:   httpClient,
		logger:       logger,
		now:          time.Now,
	}
}

// Acquire returns a currently-valid bearer token, performing a credential
// exchange only when the held token is absent or stale. Callers arriving
// while a refresh is in flight join it rather than starting another.
func (m *TokenManager) Acquire(ctx context.Context) (string, error) {
	if token, ok := m.Current(); ok {
		return token, nil
	}

	v, err, _ := m.group.Do("refresh", func() (interface{}, error) {
		// A caller that lost the race to a just-completed refresh lands
		// here with a fresh token already stored; skip the round trip.
		if token, ok := m.Current(); ok {
			return token, nil
		}
		return m.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Valid reports whether a non-stale token is currently held. It performs no
// I/O and never triggers a refresh.
func (m *TokenManager) Valid() bool {
	_, ok := m.Current()
	return ok
}

// Current returns the held token without triggering a refresh. The second
// return value is false when no token is held or the held token is stale.
func (m *TokenManager) Current() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" || !m.now().Before(m.expiresAt) {
		return "", false
	}
	return m.token, true
}

// Clear discards the held token and forgets any in-flight refresh, forcing
// the next Acquire to perform a fresh credential exchange.
func (m *TokenManager) Clear() {
	m.mu.Lock()
	m.token = ""
	m.expiresAt = time.Time{}
	m.mu.Unlock()
	m.group.Forget("refresh")
}

// refresh performs the client-credentials exchange and stores the result.
func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("client_id", m.clientID)
	form.Set("client_secret", m.clientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", m.fail(fmt.Errorf("failed to create token request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", m.fail(fmt.Errorf("token request failed: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", m.fail(fmt.Errorf("failed to read token response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", m.fail(fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, string(body)))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", m.fail(fmt.Errorf("failed to parse token response: %w", err))
	}
	if tr.AccessToken == "" {
		return "", m.fail(fmt.Errorf("token endpoint returned an empty access token"))
	}

	expiresAt := m.now().Add(time.Duration(tr.ExpiresIn)*time.Second - expiryBuffer)

	m.mu.Lock()
	m.token = tr.AccessToken
	m.expiresAt = expiresAt
	m.mu.Unlock()

	m.logger.Debug().
		Time("expires_at", expiresAt).
		Msg("Refreshed access token")

	return tr.AccessToken, nil
}

// fail resets token state so the next Acquire retries, then wraps the cause.
func (m *TokenManager) fail(err error) error {
	m.mu.Lock()
	m.token = ""
	m.expiresAt = time.Time{}
	m.mu.Unlock()
	return fmt.Errorf("token refresh failed: %w", err)
}
