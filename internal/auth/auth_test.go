package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	ok, err := VerifyPassword("pw1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("pw2", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = VerifyPassword("pw1", "plain")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedHashIsMismatch(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"long plain text", strings.Repeat("legacy-password-", 4)},
		{"future version", "$9a$10$" + strings.Repeat("a", 53)},
		{"bad cost", "$2a$99$" + strings.Repeat("a", 53)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword("wrong", tt.hash)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSession_IssueAndLoad(t *testing.T) {
	m := NewSessionManager("secret", 24*time.Hour, false)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, Session{Authenticated: true, UserID: "u1", Username: "alice", Role: "user"}))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, 86400, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.AddCookie(cookies[0])
	s, err := m.Load(req)
	require.NoError(t, err)
	assert.Equal(t, Session{Authenticated: true, UserID: "u1", Username: "alice", Role: "user"}, s)
}

func TestSession_RejectsForeignSignature(t *testing.T) {
	raw, err := NewSessionManager("other", time.Hour, false).Encode(Session{Authenticated: true, UserID: "u1"})
	require.NoError(t, err)

	_, err = NewSessionManager("secret", time.Hour, false).Decode(raw)
	assert.Error(t, err)
}

func TestSession_Expired(t *testing.T) {
	m := NewSessionManager("secret", time.Hour, false)
	issued := time.Now()
	m.now = func() time.Time { return issued }
	raw, err := m.Encode(Session{Authenticated: true, UserID: "u1"})
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = m.Decode(raw)
	assert.Error(t, err)
}

func TestSession_MissingCookie(t *testing.T) {
	m := NewSessionManager("secret", time.Hour, false)
	_, err := m.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Error(t, err)
}

func TestSession_Clear(t *testing.T) {
	rec := httptest.NewRecorder()
	NewSessionManager("secret", time.Hour, false).Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}
