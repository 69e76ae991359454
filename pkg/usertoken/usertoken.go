package usertoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Scope separates activation tokens from password-reset tokens so one can
// never be replayed as the other.
type Scope string

const (
	ScopeActivation    Scope = "account-activation"
	ScopePasswordReset Scope = "password-reset"
)

var ErrInvalidUID = errors.New("invalid uid")

// tokenEpoch anchors the coarse timestamp bucket encoded into tokens.
var tokenEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

const hashLength = 20 // hex chars of the truncated HMAC kept in the token

// Generator issues and checks stateless tokens bound to a user's mutable
// state. A token stops verifying as soon as the password hash changes or,
// for the activation scope, once the account becomes active. Nothing is
// stored server-side.
type Generator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewGenerator creates a token generator. Tokens expire ttl after issue.
func NewGenerator(secret string, ttl time.Duration) *Generator {
	return &Generator{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// EncodeUID encodes a user primary key for URL transport.
func EncodeUID(id uint) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(id), 10)))
}

// DecodeUID decodes a uid produced by EncodeUID.
func DecodeUID(uid string) (uint, error) {
	raw, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return 0, ErrInvalidUID
	}
	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidUID
	}
	return uint(id), nil
}

// Make issues a token for the given user state.
func (g *Generator) Make(scope Scope, userID uint, passwordHash string, active bool) string {
	days := g.daysSinceEpoch(g.now())
	return g.makeAt(scope, userID, passwordHash, active, days)
}

// Check reports whether token matches the user's current state and has not
// expired. It never reveals which condition failed.
func (g *Generator) Check(scope Scope, userID uint, passwordHash string, active bool, token string) bool {
	dash := strings.IndexByte(token, '-')
	if dash <= 0 {
		return false
	}
	days, err := strconv.ParseInt(token[:dash], 36, 64)
	if err != nil || days < 0 {
		return false
	}

	expected := g.makeAt(scope, userID, passwordHash, active, days)
	if !hmac.Equal([]byte(expected), []byte(token)) {
		return false
	}

	age := time.Duration(g.daysSinceEpoch(g.now())-days) * 24 * time.Hour
	return age >= 0 && age <= g.ttl
}

func (g *Generator) makeAt(scope Scope, userID uint, passwordHash string, active bool, days int64) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(string(scope)))
	mac.Write([]byte("|"))
	mac.Write([]byte(strconv.FormatUint(uint64(userID), 10)))
	mac.Write([]byte("|"))
	mac.Write([]byte(passwordHash))
	if scope == ScopeActivation {
		mac.Write([]byte("|"))
		mac.Write([]byte(strconv.FormatBool(active)))
	}
	mac.Write([]byte("|"))
	mac.Write([]byte(strconv.FormatInt(days, 10)))

	digest := hex.EncodeToString(mac.Sum(nil))[:hashLength]
	return strconv.FormatInt(days, 36) + "-" + digest
}

func (g *Generator) daysSinceEpoch(t time.Time) int64 {
	return int64(t.UTC().Sub(tokenEpoch).Hours() / 24)
}
