package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/augustolallana/api-omega/configs"
)

const principalKey = "auth.principal"

// Principal is the verified identity carried by a bearer token.
type Principal struct {
	UserID  string
	IsAdmin bool
}

// FromContext returns the authenticated principal, if any.
func FromContext(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

type Authz struct {
	cfg configs.Config
}

func NewAuthz(cfg configs.Config) *Authz {
	return &Authz{cfg: cfg}
}

// RequireAuth verifies the bearer JWT and stores the principal in the
// request context.
func (a *Authz) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := a.verify(c)
		if !ok {
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireAdmin additionally demands the admin capability flag.
func (a *Authz) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := a.verify(c)
		if !ok {
			return
		}
		if !p.IsAdmin {
			forbidden(c, "insufficient_scope", "admin access required")
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

func (a *Authz) verify(c *gin.Context) (Principal, bool) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		unauth(c, "invalid_request", "missing bearer token")
		return Principal{}, false
	}

	raw := strings.TrimPrefix(auth, "Bearer ")
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(a.cfg.Security.JWTSecret), nil
	}, jwt.WithLeeway(30*time.Second)) // small clock skew

	if err != nil || !token.Valid {
		unauth(c, "invalid_token", "invalid jwt")
		return Principal{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		unauth(c, "invalid_token", "claims parsing error")
		return Principal{}, false
	}
	if claims["iss"] != a.cfg.Security.Issuer || claims["aud"] != a.cfg.Security.Audience {
		unauth(c, "invalid_token", "iss/aud mismatch")
		return Principal{}, false
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		unauth(c, "invalid_token", "missing subject")
		return Principal{}, false
	}
	admin, _ := claims["admin"].(bool)
	return Principal{UserID: sub, IsAdmin: admin}, true
}

func unauth(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code, "error_description": desc})
}

func forbidden(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": code, "error_description": desc})
}
