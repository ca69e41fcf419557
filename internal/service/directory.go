package service

import (
	"context"
	"time"

	"github.com/CTF179/photocomp/internal/cache"
	"github.com/CTF179/photocomp/internal/domain"
)

// UserGetter is the user directory lookup consumed by the membership service.
type UserGetter interface {
	GetByID(userID string) (*domain.User, error)
}

const (
	userCacheTTL     = 5 * time.Minute
	userCacheTimeout = time.Second
)

// CachedUserDirectory wraps a user directory with the optional Redis cache.
// Cache errors are treated as misses; the directory is the source of truth.
type CachedUserDirectory struct {
	users UserGetter
}

// NewCachedUserDirectory creates a caching wrapper around the given directory.
func NewCachedUserDirectory(users UserGetter) *CachedUserDirectory {
	return &CachedUserDirectory{users: users}
}

// GetByID retrieves a user, serving repeated lookups from the cache.
// Missing users are not cached.
func (d *CachedUserDirectory) GetByID(userID string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), userCacheTimeout)
	defer cancel()

	var cached domain.User
	if err := cache.Get(ctx, userCacheKey(userID), &cached); err == nil {
		return &cached, nil
	}

	user, err := d.users.GetByID(userID)
	if err != nil || user == nil {
		return user, err
	}

	_ = cache.Set(ctx, userCacheKey(userID), user, userCacheTTL)
	return user, nil
}

func userCacheKey(userID string) string {
	return "user:" + userID
}
