package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour)

	sessionID, token, err := m.NewSession()
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, sessionID)

	got, err := m.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	_, token, err := NewManager("secret", time.Hour).NewSession()
	require.NoError(t, err)

	_, err = NewManager("other", time.Hour).ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionToken_Expired(t *testing.T) {
	m := NewManager("secret", time.Minute)
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }

	_, token, err := m.NewSession()
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateSessionToken(token)
	assert.Error(t, err)
}
