package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	goRoles "github.com/MrEthical07/goRoles"
)

var (
	// ErrNoBearerToken is returned when the Authorization header holds no
	// bearer token.
	ErrNoBearerToken = errors.New("no bearer token")
	// ErrInvalidToken is returned when the bearer token fails verification.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the JWT claim set the bearer extractor understands: the raw
// permission integer alongside the registered claims.
type Claims struct {
	Perms uint64 `json:"perms"`
	jwt.RegisteredClaims
}

// BearerExtractor returns an [Extractor] that reads an HS256-signed bearer
// token from the Authorization header and reconstitutes the role set from
// its perms claim. The claim carries the raw integer produced by
// [goRoles.Set.Value]; no re-validation happens on the way back in.
func BearerExtractor[T goRoles.Role](m *goRoles.Manager[T], key []byte) Extractor[T] {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(r *http.Request) (goRoles.Set[T], error) {
		raw, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			return 0, ErrNoBearerToken
		}

		var claims Claims
		token, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err != nil || !token.Valid {
			return 0, ErrInvalidToken
		}

		return m.FromValue(claims.Perms), nil
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
