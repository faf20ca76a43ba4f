package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/pkg/config"
	"github.com/johnquangdev/contact-qa/pkg/jwt"
)

// SessionIDKey is the echo context key holding the browser session id
const SessionIDKey = "session_id"

// SessionMiddleware binds every request to a browser session
type SessionMiddleware struct {
	tokens *jwt.Manager
	cfg    config.SessionConfig
	secure bool
	logger *zap.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(tokens *jwt.Manager, cfg config.SessionConfig, secure bool, logger *zap.Logger) *SessionMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionMiddleware{
		tokens: tokens,
		cfg:    cfg,
		secure: secure,
		logger: logger,
	}
}

// Session reads the session token from the header or the cookie. A missing
// or invalid token starts a fresh session. The token in use is echoed back
// in both places.
func (m *SessionMiddleware) Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(m.cfg.HeaderName)
			if token == "" {
				if cookie, err := c.Cookie(m.cfg.CookieName); err == nil {
					token = cookie.Value
				}
			}

			sessionID := uuid.Nil
			if token != "" {
				id, err := m.tokens.ValidateSessionToken(token)
				if err != nil {
					m.logger.Debug("session.token.rejected", zap.Error(err))
				} else {
					sessionID = id
				}
			}

			if sessionID == uuid.Nil {
				id, fresh, err := m.tokens.NewSession()
				if err != nil {
					m.logger.Error("session.token.issue_failed", zap.Error(err))
					return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start session")
				}
				sessionID, token = id, fresh
			}

			c.Set(SessionIDKey, sessionID)
			c.Response().Header().Set(m.cfg.HeaderName, token)
			c.SetCookie(&http.Cookie{
				Name:     m.cfg.CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(m.tokens.GetTTL().Seconds()),
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})

			return next(c)
		}
	}
}

// GetSessionID returns the session id bound by Session
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(SessionIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
