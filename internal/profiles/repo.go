package profiles

import "context"

// Repo persists profiles keyed by email.
//
// Upsert inserts a new row or refreshes the existing one for profile.Email.
// A nil FormattedCV means "leave any previously stored value in place", so a
// failed transformation can never clobber an earlier successful one. The ID
// and IdentityKey only take effect on first insert.
type Repo interface {
	Upsert(ctx context.Context, profile Profile) error
	GetByEmail(ctx context.Context, email string) (Profile, error)
}
