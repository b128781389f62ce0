package fakes

import (
	"context"
	"sync"
)

type JWTRepository struct {
	mu      sync.Mutex
	Revoked map[string]int64
}

func NewJWTRepository() *JWTRepository {
	return &JWTRepository{Revoked: map[string]int64{}}
}

func (r *JWTRepository) RevokeToken(ctx context.Context, tokenHash string, expiresAt int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Revoked[tokenHash] = expiresAt
	return nil
}

func (r *JWTRepository) ListActiveRevoked(ctx context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int64, len(r.Revoked))
	for k, v := range r.Revoked {
		out[k] = v
	}
	return out, nil
}

func (r *JWTRepository) PurgeExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
