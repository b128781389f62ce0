package jwt

import (
	"crypto/sha256"
	"encoding/base64"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(userID string, username string, employeeID *string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth

	// ExpiresAt reads the exp claim of a signed token.
	ExpiresAt(token string) (int64, error)

	RevokeToken(token string, expiresAt int64)
	RestoreRevoked(tokenHash string, expiresAt int64)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
		now:                       time.Now,
	}
}

// HashToken is the form under which revoked tokens are stored.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return base64.StdEncoding.EncodeToString(hash[:])
}

func (j *JWTService) GenerateAccessToken(userID string, username string, employeeID *string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = j.now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"username":    username,
		"employee_id": j.returnValueOrNil(employeeID),
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) ExpiresAt(token string) (int64, error) {
	decoded, err := j.tokenAuth.Decode(token)
	if err != nil {
		return 0, err
	}
	return decoded.Expiration().Unix(), nil
}

func (j *JWTService) RevokeToken(token string, expiresAt int64) {
	j.RestoreRevoked(HashToken(token), expiresAt)
}

// RestoreRevoked records a revoked token hash and drops entries that have expired.
func (j *JWTService) RestoreRevoked(tokenHash string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	now := j.now().Unix()
	for h, exp := range j.revokedTokens {
		if exp <= now {
			delete(j.revokedTokens, h)
		}
	}
	if expiresAt > now {
		j.revokedTokens[tokenHash] = expiresAt
	}
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[HashToken(token)]
	return revoked
}

func (j *JWTService) returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	} else {
		return *value
	}
}
