package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/database"
)

// JWTRepository persists revoked access tokens so logouts survive restarts.
type JWTRepository interface {
	RevokeToken(ctx context.Context, tokenHash string, expiresAt int64) error
	ListActiveRevoked(ctx context.Context) (map[string]int64, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type jwtRepositoryImpl struct {
	db *database.DB
}

// NewJWTRepository creates a new instance of JWTRepository.
func NewJWTRepository(db *database.DB) JWTRepository {
	return &jwtRepositoryImpl{db: db}
}

func (j *jwtRepositoryImpl) RevokeToken(ctx context.Context, tokenHash string, expiresAt int64) error {
	q := GetQuerier(ctx, j.db)
	query := `
		INSERT INTO revoked_tokens (token_hash, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (token_hash) DO NOTHING
	`
	if _, err := q.Exec(ctx, query, tokenHash, time.Unix(expiresAt, 0).UTC()); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (j *jwtRepositoryImpl) ListActiveRevoked(ctx context.Context) (map[string]int64, error) {
	q := GetQuerier(ctx, j.db)
	rows, err := q.Query(ctx, `SELECT token_hash, expires_at FROM revoked_tokens WHERE expires_at > NOW()`)
	if err != nil {
		return nil, fmt.Errorf("failed to list revoked tokens: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var hash string
		var expiresAt time.Time
		if err := rows.Scan(&hash, &expiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan revoked token: %w", err)
		}
		out[hash] = expiresAt.Unix()
	}
	return out, rows.Err()
}

func (j *jwtRepositoryImpl) PurgeExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, j.db)
	tag, err := q.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge revoked tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
