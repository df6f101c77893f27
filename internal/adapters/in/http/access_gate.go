package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"wasteflow/internal/core/domain/model/kernel"
	"wasteflow/internal/core/ports"
	"wasteflow/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var ErrUnauthenticated = errors.New("unauthenticated")

const principalKey = "principal"

// Principal is the caller identified by a bearer token.
type Principal struct {
	UserID   kernel.UUID
	UserType ports.UserType
	Role     string
}

// AccessClaims are the claims the identity service puts in its tokens.
type AccessClaims struct {
	UserType string `json:"user_type"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AccessGate authenticates HS256 bearer tokens and checks user types and
// roles at the HTTP edge.
type AccessGate struct {
	secret []byte
	parser *jwt.Parser
}

func NewAccessGate(secret string) (*AccessGate, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("jwtSecret")
	}
	return &AccessGate{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// Parse verifies the token and extracts the principal.
func (g *AccessGate) Parse(token string) (Principal, error) {
	claims := &AccessClaims{}
	parsed, err := g.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return g.secret, nil
	})
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if !parsed.Valid {
		return Principal{}, ErrUnauthenticated
	}

	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: subject is not a user id", ErrUnauthenticated)
	}
	if claims.UserType == "" {
		return Principal{}, fmt.Errorf("%w: user_type claim is missing", ErrUnauthenticated)
	}

	return Principal{
		UserID:   kernel.UUIDFromGoogle(sub),
		UserType: ports.UserType(claims.UserType),
		Role:     claims.Role,
	}, nil
}

// Authenticate rejects requests without a valid bearer token and stores
// the principal on the context.
func (g *AccessGate) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid Authorization header")
		}

		principal, err := g.Parse(strings.TrimSpace(token))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token").SetInternal(err)
		}

		c.Set(principalKey, principal)
		return next(c)
	}
}

// Rule decides whether a principal may pass.
type Rule func(Principal) bool

func UserTypeIs(userType ports.UserType) Rule {
	return func(p Principal) bool { return p.UserType == userType }
}

func RoleIs(role string) Rule {
	return func(p Principal) bool { return p.Role == role }
}

// Allow passes principals matching any of the rules; others get 403.
func Allow(rules ...Rule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := PrincipalFrom(c)
			if err != nil {
				return err
			}
			for _, allowed := range rules {
				if allowed(principal) {
					return next(c)
				}
			}
			return errs.NewPermissionDeniedError(c.Request().Method + " " + c.Path())
		}
	}
}

// PrincipalFrom returns the principal stored by Authenticate.
func PrincipalFrom(c echo.Context) (Principal, error) {
	principal, ok := c.Get(principalKey).(Principal)
	if !ok {
		return Principal{}, ErrUnauthenticated
	}
	return principal, nil
}
