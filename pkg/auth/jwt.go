package auth

import (
	"fmt"
	"sort"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AnonymousName is what /me reports when no authority is configured.
const AnonymousName = "anonymous"

type Claim struct {
	Type  string
	Value string
}

type Identity struct {
	Name   string
	Claims []Claim
}

func Anonymous() Identity {
	return Identity{Name: AnonymousName}
}

type JWT struct {
	Secret string
}

func (j *JWT) CreateToken(name string, extra map[string]string) (string, error) {
	claims := jwt.MapClaims{
		"name": name,
		"exp":  time.Now().Add(3 * time.Hour).Unix(),
	}

	for k, v := range extra {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(j.Secret))
}

func (j *JWT) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(j.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}

	return token.Claims.(jwt.MapClaims), nil
}

// IdentityFromClaims resolves the caller name from the name claim, then
// sub, then the anonymous placeholder. Claims are sorted so the echo
// endpoint answers deterministically.
func IdentityFromClaims(claims jwt.MapClaims) Identity {
	identity := Identity{Name: AnonymousName}

	if name, ok := claims["name"].(string); ok && name != "" {
		identity.Name = name
	} else if sub, ok := claims["sub"].(string); ok && sub != "" {
		identity.Name = sub
	}

	keys := make([]string, 0, len(claims))

	for k := range claims {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		identity.Claims = append(identity.Claims, Claim{
			Type:  k,
			Value: fmt.Sprintf("%v", claims[k]),
		})
	}

	return identity
}
