package service

import (
	"context"
	"fmt"

	"github.com/mglover/tripwise/internal/repo"
)

// TagService exposes the tag labels in use across a user's trips.
type TagService struct {
	tags repo.TagRepo
}

// NewTagService constructs a TagService backed by the provided TagRepo.
func NewTagService(tags repo.TagRepo) *TagService {
	return &TagService{tags: tags}
}

// List returns the user's distinct trip tags, sorted alphabetically.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TagService) List(ctx context.Context, userID string) ([]string, error) {
	tags, err := s.tags.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TagService.List: %w", err)
	}
	if tags == nil {
		return []string{}, nil
	}
	return tags, nil
}
