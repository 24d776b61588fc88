// internal/httpserver/player.go
//
// Anonymous player identity.
//
// Every request is tied to a player. The player ID is a random UUID carried as
// the subject of an HS256 JWT, read from the Authorization bearer header or the
// player cookie. A request without a valid token gets a fresh player: the new
// token is set as a cookie and echoed in the X-Player-Token header for clients
// that do not keep cookies.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"
)

// TokenHeader carries a newly issued player token.
const TokenHeader = "X-Player-Token"

var errBadSubject = errors.New("token subject is not a player id")

// ctxPlayerKey is the context key type for the player ID.
type ctxPlayerKey struct{}

// players issues and verifies player tokens.
type players struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
	now        func() time.Time
}

// sign creates an HS256 JWT for id.
func (p *players) sign(id string) (string, time.Time, error) {
	now := p.now()
	exp := now.Add(p.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString(p.secret)
	return ss, exp, err
}

// verify returns the player ID in a valid token.
func (p *players) verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(p.now))
	if err != nil {
		return "", err
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", errBadSubject
	}
	return id.String(), nil
}

// setCookie writes the player cookie with appropriate security attributes.
func (p *players) setCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if p.secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     p.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from Authorization header or player cookie.
func (p *players) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(p.cookieName); err == nil {
		return c.Value
	}
	return ""
}

// identify puts the request's player ID into the context, issuing a new
// player when the request carries no valid token.
func (p *players) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if tok := p.bearerOrCookie(r); tok != "" {
			var err error
			if id, err = p.verify(tok); err != nil {
				hlog.FromRequest(r).Debug().Err(err).Msg("rejecting player token")
			}
		}
		if id == "" {
			id = uuid.NewString()
			tok, exp, err := p.sign(id)
			if err != nil {
				hlog.FromRequest(r).Error().Err(err).Msg("sign player token")
				writeError(w, http.StatusInternalServerError, "sign_failed")
				return
			}
			p.setCookie(w, tok, exp)
			w.Header().Set(TokenHeader, tok)
			hlog.FromRequest(r).Info().Str("player", id).Msg("new player")
		}
		ctx := context.WithValue(r.Context(), ctxPlayerKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// playerID returns the player set by identify.
func playerID(r *http.Request) string {
	id, _ := r.Context().Value(ctxPlayerKey{}).(string)
	return id
}
