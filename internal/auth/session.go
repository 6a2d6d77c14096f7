// internal/auth/session.go
package auth

import (
	"crypto/ed25519"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// privateKey and publicKey are used for signing and verifying role session tokens.
var (
	privateKey ed25519.PrivateKey
	publicKey  ed25519.PublicKey

	// tokenExpireSec indicates how many seconds until JWT expiration (0 => never).
	tokenExpireSec int
)

// parseTokenExpireTime reads the TOKEN_EXPIRE_TIME env var.
func parseTokenExpireTime() error {
	duration := os.Getenv("TOKEN_EXPIRE_TIME")
	if duration == "never" || duration == "0" || duration == "" {
		tokenExpireSec = 0
		return nil
	}
	d, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("failed to parse token expire time: %w", err)
	}
	tokenExpireSec = int(d.Seconds())
	return nil
}

// Init generates a fresh ed25519 key pair at runtime. Sessions are
// deliberately ephemeral: a server restart invalidates outstanding tokens the
// same way a reload clears the in-memory authentication flags.
func Init() {
	var err error
	publicKey, privateKey, err = ed25519.GenerateKey(nil)
	if err != nil {
		fmt.Printf("failed to generate ed25519 key pair: %v\n", err)
		os.Exit(1)
	}
	if err := parseTokenExpireTime(); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}

// CreateRoleToken creates a signed JWT whose "role" claim carries the access
// role the holder authenticated for.
func CreateRoleToken(role Role) (string, error) {
	claims := jwt.MapClaims{
		"role": string(role),
	}
	if tokenExpireSec > 0 {
		claims["exp"] = time.Now().Add(time.Duration(tokenExpireSec) * time.Second).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return token.SignedString(privateKey)
}

// AuthenticateRoleToken verifies a JWT string and returns its role claim.
func AuthenticateRoleToken(tokenString string) (Role, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("jwt parse error: %w", err)
	}
	if !t.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid jwt claims")
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", fmt.Errorf("missing role in jwt")
	}
	role := Role(roleStr)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q in jwt", roleStr)
	}
	return role, nil
}
