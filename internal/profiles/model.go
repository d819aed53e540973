package profiles

import "time"

// Profile is the sole persisted entity: one row per email holding the raw
// experience text and, once a transformation has succeeded, the formatted CV.
type Profile struct {
	ID            string    `json:"id"`
	IdentityKey   string    `json:"identityKey"`
	Email         string    `json:"email"`
	FullName      string    `json:"fullName"`
	RawExperience string    `json:"rawExperience"`
	FormattedCV   *string   `json:"formattedCv,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
