package mercadopago

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Ericatici/payment-service/internal/apperrors"
)

// Tokens are refreshed this long before their actual expiry so an in-flight
// call never rides a token that dies mid-request.
const tokenExpiryMargin = 5 * time.Minute

type authResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// tokenManager owns the client-credentials token lifecycle. The whole
// check-refresh-install sequence runs under one mutex so concurrent callers
// never trigger duplicate exchanges or observe a half-updated token/expiry pair.
type tokenManager struct {
	mu       sync.Mutex
	exchange func(ctx context.Context) (*authResponse, error)
	now      func() time.Time

	accessToken string
	expiryTime  time.Time
}

func newTokenManager(exchange func(ctx context.Context) (*authResponse, error)) *tokenManager {
	return &tokenManager{exchange: exchange, now: time.Now}
}

// Token returns a valid bearer token, exchanging credentials lazily when no
// token is held or the held one is inside the expiry margin. A failed
// exchange leaves the previous token state untouched.
func (m *tokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.accessToken != "" && m.now().Before(m.expiryTime.Add(-tokenExpiryMargin)) {
		return m.accessToken, nil
	}

	resp, err := m.exchange(ctx)
	if err != nil {
		return "", err
	}
	if resp == nil || resp.AccessToken == "" {
		return "", apperrors.New(apperrors.KindGatewayIntegration, "failed to obtain the auth token: access token missing from response")
	}

	m.accessToken = resp.AccessToken
	m.expiryTime = m.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	log.Println("mercadopago: auth token renewed")

	return m.accessToken, nil
}
