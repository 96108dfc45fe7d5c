package session

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims wrap the backend-issued token in a locally signed JWT so the cookie
// cannot be tampered with. The exp claim mirrors the backend's expiry.
type Claims struct {
	Token string `json:"tok"`
	jwt.RegisteredClaims
}

// Store reads and writes the persisted credential cookie.
type Store struct {
	Secret     []byte
	CookieName string
}

func New(secret, cookieName string) *Store {
	return &Store{Secret: []byte(secret), CookieName: cookieName}
}

// Issue signs a cookie value carrying the backend token, expiring when the
// backend says the token does.
func (s *Store) Issue(token string, expiresAt time.Time) (string, error) {
	claims := &Claims{
		Token: token,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Parse validates a cookie value and returns the backend token inside it.
func (s *Store) Parse(value string) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(value, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	})
	if err != nil {
		return "", err
	}
	if !tok.Valid {
		return "", errors.New("invalid session")
	}
	return claims.Token, nil
}

// Credential extracts the backend token from the request cookie. The second
// return is false when there is no cookie or it fails validation.
func (s *Store) Credential(c *gin.Context) (string, bool) {
	value, err := c.Cookie(s.CookieName)
	if err != nil || value == "" {
		return "", false
	}
	token, err := s.Parse(value)
	if err != nil {
		return "", false
	}
	return token, true
}

// SetCookie persists the credential until the backend expiry.
func (s *Store) SetCookie(c *gin.Context, token string, expiresAt time.Time) error {
	value, err := s.Issue(token, expiresAt)
	if err != nil {
		return err
	}
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(s.CookieName, value, maxAge, "/", "", false, true)
	return nil
}

// ClearCookie destroys the persisted credential.
func (s *Store) ClearCookie(c *gin.Context) {
	// Set cookie with negative MaxAge to delete it
	c.SetCookie(s.CookieName, "", -1, "/", "", false, true)
}
