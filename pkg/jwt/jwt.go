package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Manager issues and validates browser-session tokens.
// A token only names a draft namespace; it carries no user identity.
type Manager struct {
	secret string
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewManager creates a new session token manager
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: secret,
		ttl:    ttl,
		issuer: "contact-qa",
		now:    time.Now,
	}
}

// NewSession allocates a session id and signs a token for it
func (m *Manager) NewSession() (uuid.UUID, string, error) {
	sessionID := uuid.New()
	token, err := m.GenerateSessionToken(sessionID)
	if err != nil {
		return uuid.Nil, "", err
	}
	return sessionID, token, nil
}

// GenerateSessionToken signs a token for an existing session id
func (m *Manager) GenerateSessionToken(sessionID uuid.UUID) (string, error) {
	now := m.now()
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   sessionID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// ValidateSessionToken validates a token and returns its session id
func (m *Manager) ValidateSessionToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))

	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}
	if claims.SessionID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("token has no session id")
	}

	return claims.SessionID, nil
}

// GetTTL returns the session lifetime
func (m *Manager) GetTTL() time.Duration {
	return m.ttl
}
