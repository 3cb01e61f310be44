package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionData is what we keep server-side per login.
type SessionData struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{
		client: client,
	}
}

// StoreSession persists the session and a reverse token -> user lookup.
func (r *SessionRepository) StoreSession(ctx context.Context, userID, token string, data SessionData, ttl time.Duration) error {
	key := fmt.Sprintf("session:user:%s", userID)

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}

	tokenKey := fmt.Sprintf("session:lookup:%s", token)
	if err := r.client.Set(ctx, tokenKey, userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session lookup: %w", err)
	}

	return nil
}

// ValidateToken resolves a bearer token to the user it was issued to.
func (r *SessionRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	tokenKey := fmt.Sprintf("session:lookup:%s", token)

	userID, err := r.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.New("token not found or expired")
		}
		return "", fmt.Errorf("failed to validate token: %w", err)
	}

	return userID, nil
}

// DeleteSession drops both the session document and the token lookup.
func (r *SessionRepository) DeleteSession(ctx context.Context, userID, token string) error {
	key := fmt.Sprintf("session:user:%s", userID)
	tokenKey := fmt.Sprintf("session:lookup:%s", token)

	if err := r.client.Del(ctx, key, tokenKey).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
