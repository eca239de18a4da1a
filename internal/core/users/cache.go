package users

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachingRepository wraps a UserRepository with a bounded LRU of users by id.
// Users never change after creation, so cached entries never go stale.
// Misses (ErrUserNotFound) are not cached: the user may be created later.
type CachingRepository struct {
	UserRepository
	byID *lru.Cache[string, *User]
}

// NewCachingRepository creates a caching wrapper holding at most size users
func NewCachingRepository(repo UserRepository, size int) (*CachingRepository, error) {
	cache, err := lru.New[string, *User](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create user cache: %w", err)
	}
	return &CachingRepository{UserRepository: repo, byID: cache}, nil
}

// GetByID returns the cached user or loads and caches it
func (r *CachingRepository) GetByID(ctx context.Context, id string) (*User, error) {
	if user, ok := r.byID.Get(id); ok {
		return user, nil
	}

	user, err := r.UserRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.byID.Add(id, user)
	return user, nil
}

// Create persists the user and primes the cache
func (r *CachingRepository) Create(ctx context.Context, user *User) error {
	if err := r.UserRepository.Create(ctx, user); err != nil {
		return err
	}
	r.byID.Add(user.ID, user)
	return nil
}
