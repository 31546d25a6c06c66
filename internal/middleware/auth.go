package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

var ErrInvalidToken = errors.New("invalid token")

// Claims carry the caller id in sub and the marketplace role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func IssueToken(secret string, actor domain.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseToken(secret, raw string) (domain.Actor, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Actor{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return domain.Actor{}, ErrInvalidToken
	}

	role, err := domain.ParseRole(claims.Role)
	// system role is only for internal callers
	if err != nil || role == domain.RoleSystem {
		return domain.Actor{}, ErrInvalidToken
	}
	return domain.Actor{Role: role, ID: claims.Subject}, nil
}

// Auth resolves the actor from a Bearer header or, for websocket clients that
// cannot set headers, from the token query parameter.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw := c.Query("token")
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid authorization format"})
				return
			}
			raw = parts[1]
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing token"})
			return
		}

		actor, err := ParseToken(secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

func RequireRole(allowed ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "unauthorized"})
			return
		}
		for _, r := range allowed {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
	}
}

func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}

// WithActor is used by tests to skip token parsing.
func WithActor(actor domain.Actor) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set(actorKey, actor)
		c.Next()
	}
}
