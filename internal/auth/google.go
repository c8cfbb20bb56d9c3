package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	googleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

	// certRefreshInterval bounds how often the JWKS endpoint is re-fetched
	// when a token references an unknown key id.
	certRefreshInterval = time.Minute
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// Identity is the subject information extracted from a verified Google ID token.
type Identity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// GoogleVerifier validates Google ID tokens against Google's current RSA
// signing keys, checking signature, issuer, expiry, and audience.
type GoogleVerifier struct {
	clientID   string
	certsURL   string
	httpClient *http.Client

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

// NewGoogleVerifier creates a verifier expecting the given OAuth client id
// as the token audience.
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID:   clientID,
		certsURL:   googleCertsURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// googleClaims are the ID-token claims used by this service.
type googleClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Verify validates the ID token and returns the embedded identity.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	if v.clientID == "" {
		return nil, fmt.Errorf("google client id not configured")
	}

	token, err := jwt.ParseWithClaims(idToken, &googleClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("token has no key id")
		}
		return v.keyForKid(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.clientID),
	)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}

	claims, ok := token.Claims.(*googleClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid id token claims")
	}

	if !validGoogleIssuer(claims.Issuer) {
		return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("id token has no subject")
	}

	return &Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

func validGoogleIssuer(iss string) bool {
	for _, v := range googleIssuers {
		if iss == v {
			return true
		}
	}
	return false
}

// keyForKid returns the cached RSA key for the given key id, refreshing the
// key set from Google when the kid is unknown and the cache is stale.
func (v *GoogleVerifier) keyForKid(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.mu.RLock()
	key, ok := v.keys[kid]
	fetchedAt := v.fetchedAt
	v.mu.RUnlock()
	if ok {
		return key, nil
	}

	if time.Since(fetchedAt) < certRefreshInterval {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}

	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}
	return key, nil
}

// jwk is a single RSA key from the JWKS document.
type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// refreshKeys fetches Google's current signing keys.
func (v *GoogleVerifier) refreshKeys(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return fmt.Errorf("create certs request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch google certs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch google certs: status %d", resp.StatusCode)
	}

	var doc struct {
		Keys []jwk `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("decode google certs: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := parseRSAKey(k)
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}
	if len(keys) == 0 {
		return fmt.Errorf("google certs document contained no usable keys")
	}

	v.mu.Lock()
	v.keys = keys
	v.fetchedAt = time.Now()
	v.mu.Unlock()
	return nil
}

// parseRSAKey builds an rsa.PublicKey from base64url modulus and exponent.
func parseRSAKey(k jwk) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}

	e := 0
	for _, b := range eb {
		e = e<<8 | int(b)
	}
	if e <= 0 {
		return nil, fmt.Errorf("invalid exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: e,
	}, nil
}
