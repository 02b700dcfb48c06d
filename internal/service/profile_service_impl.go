package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/koyomi/internal/domain"
	"github.com/alexanderramin/koyomi/internal/repository"
)

// MaxDisplayNameLen bounds profile display names, in code points.
const MaxDisplayNameLen = 60

type profileService struct {
	profiles repository.ProfileRepo
	now      func() time.Time
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles, now: time.Now}
}

// Ensure returns the profile for id, creating it on first use.
func (s *profileService) Ensure(ctx context.Context, id string) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	now := s.now().UTC()
	p = &domain.Profile{ID: id, CreatedAt: now, UpdatedAt: now}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	return p, nil
}

func (s *profileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.profiles.Get(ctx, id)
}

func (s *profileService) SetDisplayName(ctx context.Context, id, name string) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n > MaxDisplayNameLen {
		return nil, fmt.Errorf("display name must be at most %d characters (got %d)", MaxDisplayNameLen, n)
	}
	p, err := s.Ensure(ctx, id)
	if err != nil {
		return nil, err
	}
	p.DisplayName = name
	p.UpdatedAt = s.now().UTC()
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
