package middleware

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	appconfig "github.com/acg-data/bizgenius-sub001/internal/config"
	"github.com/acg-data/bizgenius-sub001/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	HeaderLocalDevUser = "X-Local-Dev-User"
	HeaderLocalDevRole = "X-Local-Dev-Role"

	RoleAdmin = "admin"

	identityKey = "identity"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)

	ErrNoVerificationKey = errors.New("no token verification key configured")
)

// Identity is the caller resolved from the identity-provider token.
type Identity struct {
	UserID string
	Admin  bool
}

// Authenticator verifies bearer tokens issued by the identity provider.
// HS256 tokens use the shared secret; RS256 tokens are checked against every
// PEM public key loaded from file.
type Authenticator struct {
	secret        []byte
	publicKeys    []any
	devAllowLocal bool
}

func NewAuthenticator(cfg appconfig.Config) (*Authenticator, error) {
	a := &Authenticator{
		secret:        []byte(cfg.AuthJWTSecret),
		devAllowLocal: cfg.AuthDevAllowLocal,
	}
	if cfg.AuthJWTPublicKeyFile != "" {
		keys, err := loadPublicKeys(cfg.AuthJWTPublicKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load jwt public keys: %w", err)
		}
		a.publicKeys = keys
	}
	if a.devAllowLocal {
		log.Printf("[auth][middleware] dev bypass enabled header=%s", HeaderLocalDevUser)
	}
	return a, nil
}

func loadPublicKeys(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var keys []any
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			cert, certErr := x509.ParseCertificate(block.Bytes)
			if certErr != nil {
				continue
			}
			key = cert.PublicKey
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("no valid keys found in %s", path)
	}
	return keys, nil
}

// RequireUser rejects requests without a valid identity. The token is read
// from the Authorization header, or from ?token= for websocket upgrades.
func (a *Authenticator) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := a.authenticate(c.Request)
		if err != nil {
			log.Printf("[auth][middleware] rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		SetIdentity(c, id)
		c.Next()
	}
}

// RequireAdmin must run after RequireUser.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if !id.Admin {
			log.Printf("[auth][middleware] admin required user_id=%s path=%s", id.UserID, c.FullPath())
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func (a *Authenticator) authenticate(r *http.Request) (Identity, error) {
	if a.devAllowLocal {
		if user := strings.TrimSpace(r.Header.Get(HeaderLocalDevUser)); user != "" {
			return Identity{UserID: user, Admin: strings.EqualFold(r.Header.Get(HeaderLocalDevRole), RoleAdmin)}, nil
		}
	}

	tokenStr := bearerToken(r)
	if tokenStr == "" {
		return Identity{}, errors.New("missing bearer token")
	}
	return a.verifyToken(tokenStr)
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

func (a *Authenticator) verifyToken(tokenStr string) (Identity, error) {
	var candidates []any
	if len(a.secret) > 0 {
		candidates = append(candidates, a.secret)
	}
	candidates = append(candidates, a.publicKeys...)
	if len(candidates) == 0 {
		return Identity{}, ErrNoVerificationKey
	}

	var (
		token *jwt.Token
		err   error
	)
	for _, key := range candidates {
		token, err = jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			switch t.Method.(type) {
			case *jwt.SigningMethodHMAC:
				if _, ok := key.([]byte); !ok {
					return nil, errors.New("hmac token for public key")
				}
			case *jwt.SigningMethodRSA:
				if _, ok := key.([]byte); ok {
					return nil, errors.New("rsa token for shared secret")
				}
			}
			return key, nil
		}, jwt.WithValidMethods([]string{"HS256", "RS256"}), jwt.WithExpirationRequired())
		if err == nil && token.Valid {
			break
		}
	}
	if err != nil {
		return Identity{}, fmt.Errorf("token parse error: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}
	sub, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(sub) == "" {
		return Identity{}, errors.New("missing sub claim")
	}
	return Identity{UserID: sub, Admin: hasAdminRole(claims)}, nil
}

func hasAdminRole(claims jwt.MapClaims) bool {
	if role, ok := claims["role"].(string); ok && role == RoleAdmin {
		return true
	}
	if roles, ok := claims["roles"].([]any); ok {
		for _, r := range roles {
			if s, ok := r.(string); ok && s == RoleAdmin {
				return true
			}
		}
	}
	return false
}

func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// UserID is the authenticated caller's id, or "" outside RequireUser.
func UserID(c *gin.Context) string {
	id, _ := IdentityFrom(c)
	return id.UserID
}
