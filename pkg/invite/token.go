package invite

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token codec errors. Decode failures split into two kinds so callers can
// tell a garbled string from one carrying a bad signature.
var (
	ErrTokenMalformed        = errors.New("invitation token is malformed")
	ErrTokenSignatureInvalid = errors.New("invitation token signature is invalid")
)

// TokenCodec signs invitation claims into a compact token string and verifies
// them back out. It is pure: encoding and decoding never touch storage. The
// secret is process-wide configuration handed in at construction, so every
// process configured with the same secret verifies identically.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Encode signs claims with HMAC-SHA256.
func (c *TokenCodec) Encode(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"tid":           claims.TID,
		"invitee_email": claims.InviteeEmail,
		"invited_by":    claims.InvitedBy,
		"role":          claims.Role,
		"url":           claims.URL,
		"expires_at":    claims.ExpiresAt,
	})

	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing invitation claims: %w", err)
	}

	return signed, nil
}

// Decode verifies the token signature and deserializes the claims. It returns
// ErrTokenMalformed when the string can't be parsed as a token, and
// ErrTokenSignatureInvalid when the signature doesn't verify against the
// codec's secret. Expiry is not checked here; that belongs to the claims
// validator.
func (c *TokenCodec) Decode(token string) (Claims, error) {
	// Strict base64 decoding so a token altered in any character, including
	// the padding bits of the final signature character, fails to parse.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithStrictDecoding(),
	)
	parsed, err := parser.Parse(token, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return Claims{}, mapJWTError(err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrTokenMalformed
	}

	return claimsFromMap(mapClaims), nil
}

func claimsFromMap(m jwt.MapClaims) Claims {
	var claims Claims

	claims.TID, _ = m["tid"].(string)
	claims.InviteeEmail, _ = m["invitee_email"].(string)
	claims.Role, _ = m["role"].(string)
	claims.URL, _ = m["url"].(string)
	claims.ExpiresAt, _ = m["expires_at"].(string)

	// Numbers come back from JSON as float64.
	if v, ok := m["invited_by"].(float64); ok {
		claims.InvitedBy = int(v)
	}

	return claims
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenSignatureInvalid
	default:
		return ErrTokenMalformed
	}
}
