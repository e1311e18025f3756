package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const SessionCookie = "loginSession"

// Session is the client-held login state carried in the signed cookie.
type Session struct {
	Authenticated bool
	UserID        string
	Username      string
	Role          string
}

type sessionClaims struct {
	Authenticated bool   `json:"auth"`
	UserID        string `json:"uid"`
	Username      string `json:"username"`
	Role          string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// SessionManager signs sessions into an HS256 cookie. Nothing is stored
// server-side.
type SessionManager struct {
	secret []byte
	maxAge time.Duration
	secure bool
	now    func() time.Time
}

func NewSessionManager(secret string, maxAge time.Duration, secure bool) *SessionManager {
	return &SessionManager{secret: []byte(secret), maxAge: maxAge, secure: secure, now: time.Now}
}

func (m *SessionManager) Encode(s Session) (string, error) {
	now := m.now()
	claims := sessionClaims{
		Authenticated: s.Authenticated,
		UserID:        s.UserID,
		Username:      s.Username,
		Role:          s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *SessionManager) Decode(raw string) (Session, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return Session{}, err
	}
	return Session{
		Authenticated: claims.Authenticated,
		UserID:        claims.UserID,
		Username:      claims.Username,
		Role:          claims.Role,
	}, nil
}

// Issue writes s as the session cookie.
func (m *SessionManager) Issue(w http.ResponseWriter, s Session) error {
	raw, err := m.Encode(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    raw,
		Path:     "/",
		MaxAge:   int(m.maxAge / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Load returns the request's session. Missing, tampered and expired cookies
// all yield an error.
func (m *SessionManager) Load(r *http.Request) (Session, error) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return Session{}, errors.New("no session")
	}
	return m.Decode(c.Value)
}

// Clear expires the session cookie.
func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
