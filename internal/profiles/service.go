package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hustlecv-backend/internal/llm"
	"hustlecv-backend/internal/shared/metrics"
	"hustlecv-backend/internal/shared/telemetry"
	"hustlecv-backend/internal/shared/util"
)

// Generation outcomes reported to the caller.
const (
	StatusSuccess        = "success"
	StatusPartialSuccess = "partial_success"
)

// GenerateInput carries the request fields for a generation.
type GenerateInput struct {
	FullName      string
	Email         string
	RawExperience string
}

// GenerateResult is the outcome of a generation. CV holds the transformed
// text on success, or a diagnostic message on partial success.
type GenerateResult struct {
	Status string
	CV     string
}

// Service orchestrates the transformer and the profile store.
type Service struct {
	Repo Repo
	LLM  llm.Client
}

func NewService(repo Repo, client llm.Client) *Service {
	return &Service{Repo: repo, LLM: client}
}

// Generate transforms raw experience text and upserts the profile row.
//
// A transformer failure is an expected, recoverable condition: the raw input
// is still saved and the caller gets a partial_success result. Only a store
// failure returns a non-nil error.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (GenerateResult, error) {
	if s == nil || s.Repo == nil || s.LLM == nil {
		return GenerateResult{}, errors.New("profiles service not configured")
	}
	if err := validate(in); err != nil {
		return GenerateResult{}, err
	}
	metrics.IncGenerateStarted()

	start := time.Now()
	cv, transformErr := s.LLM.TransformExperience(ctx, in.RawExperience)
	metrics.ObserveTransformDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	profile := Profile{
		ID:            uuid.NewString(),
		IdentityKey:   util.IdentityKey(in.Email),
		Email:         in.Email,
		FullName:      in.FullName,
		RawExperience: in.RawExperience,
	}
	if transformErr == nil {
		profile.FormattedCV = &cv
	}

	if err := s.Repo.Upsert(ctx, profile); err != nil {
		metrics.IncGenerateFailed()
		return GenerateResult{}, fmt.Errorf("upsert profile: %w", err)
	}

	if transformErr != nil {
		metrics.IncGenerateDegraded()
		telemetry.Error("generate.transform_failed", map[string]any{
			"email": in.Email,
			"error": transformErr.Error(),
		})
		return GenerateResult{
			Status: StatusPartialSuccess,
			CV:     "CV transformation failed, but your experience was saved. Please try again later. Details: " + transformErr.Error(),
		}, nil
	}

	metrics.IncGenerateSucceeded()
	return GenerateResult{Status: StatusSuccess, CV: cv}, nil
}

// GetByEmail returns the stored profile for the export path.
func (s *Service) GetByEmail(ctx context.Context, email string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(email) == "" {
		return Profile{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return s.Repo.GetByEmail(ctx, email)
}

func validate(in GenerateInput) error {
	switch {
	case strings.TrimSpace(in.FullName) == "":
		return fmt.Errorf("%w: full_name is required", ErrInvalidInput)
	case strings.TrimSpace(in.Email) == "":
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	case strings.TrimSpace(in.RawExperience) == "":
		return fmt.Errorf("%w: raw_experience is required", ErrInvalidInput)
	}
	return nil
}
