package profiles

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo keeps profiles in a mutex-guarded map keyed by email. It backs
// dev mode when no database is configured, and the handler tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{profiles: make(map[string]Profile)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	existing, ok := r.profiles[profile.Email]
	if ok {
		// Same semantics as the SQL COALESCE: identity and creation time are
		// stable, and a nil FormattedCV keeps the stored value.
		profile.ID = existing.ID
		profile.IdentityKey = existing.IdentityKey
		profile.CreatedAt = existing.CreatedAt
		if profile.FormattedCV == nil {
			profile.FormattedCV = existing.FormattedCV
		}
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.profiles[profile.Email] = profile
	return nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[email]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}
