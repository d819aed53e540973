package profiles

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	// COALESCE keeps the stored formatted_cv when the incoming value is NULL,
	// so the non-clobber invariant holds inside the statement itself even when
	// concurrent requests for the same email interleave.
	const query = `
INSERT INTO profiles (id, identity_key, email, full_name, raw_experience, formatted_cv, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
ON CONFLICT (email) DO UPDATE SET
  full_name = EXCLUDED.full_name,
  raw_experience = EXCLUDED.raw_experience,
  formatted_cv = COALESCE(EXCLUDED.formatted_cv, profiles.formatted_cv),
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		profile.ID,
		profile.IdentityKey,
		profile.Email,
		profile.FullName,
		profile.RawExperience,
		nullableText(profile.FormattedCV),
	)
	return err
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (Profile, error) {
	const query = `
SELECT id, identity_key, email, full_name, raw_experience, formatted_cv, created_at, updated_at
FROM profiles
WHERE email = $1
LIMIT 1`
	var profile Profile
	var formattedCV sql.NullString
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&profile.ID,
		&profile.IdentityKey,
		&profile.Email,
		&profile.FullName,
		&profile.RawExperience,
		&formattedCV,
		&profile.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if formattedCV.Valid {
		profile.FormattedCV = &formattedCV.String
	}
	if updatedAt.Valid {
		profile.UpdatedAt = updatedAt.Time
	} else {
		profile.UpdatedAt = time.Now().UTC()
	}
	return profile, nil
}

func nullableText(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
