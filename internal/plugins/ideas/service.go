package ideas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vidjot/vidjot/internal/apperror"
	"github.com/vidjot/vidjot/internal/sanitize"
)

// IdeaService defines the business logic contract for the idea lifecycle.
// Handlers call these methods -- they never touch the repository directly.
type IdeaService interface {
	List(ctx context.Context) ([]Idea, error)
	Get(ctx context.Context, id int64) (*Idea, error)
	Create(ctx context.Context, input CreateIdeaInput) (*Idea, error)
	Update(ctx context.Context, id int64, input UpdateIdeaInput) error
	Delete(ctx context.Context, id int64) error
}

// ideaService implements IdeaService.
type ideaService struct {
	repo IdeaRepository
}

// NewIdeaService creates a new idea service with the given repository.
func NewIdeaService(repo IdeaRepository) IdeaService {
	return &ideaService{repo: repo}
}

// List returns all ideas, newest first.
func (s *ideaService) List(ctx context.Context) ([]Idea, error) {
	ideas, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing ideas: %w", err))
	}
	return ideas, nil
}

// Get returns a single idea by ID. Passes the repository's not-found error
// through untouched so the caller can render a 404.
func (s *ideaService) Get(ctx context.Context, id int64) (*Idea, error) {
	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.NewInternal(fmt.Errorf("finding idea: %w", err))
	}
	return idea, nil
}

// Create validates and persists a new idea. Title and details are stripped
// of HTML before the required-field check, so markup-only input counts as
// empty.
func (s *ideaService) Create(ctx context.Context, input CreateIdeaInput) (*Idea, error) {
	title, details, err := cleanIdeaText(input.Title, input.Details)
	if err != nil {
		return nil, err
	}

	idea := &Idea{
		Title:     title,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, idea); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("creating idea: %w", err))
	}

	slog.Info("idea created", slog.Int64("idea_id", idea.ID))

	return idea, nil
}

// Update replaces an idea's title and details, with the same validation as
// Create. Updating an ID that no longer exists is a silent no-op -- the
// record was already gone, which is what the caller wanted changed anyway.
func (s *ideaService) Update(ctx context.Context, id int64, input UpdateIdeaInput) error {
	title, details, err := cleanIdeaText(input.Title, input.Details)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, title, details); err != nil {
		return apperror.NewInternal(fmt.Errorf("updating idea: %w", err))
	}

	slog.Info("idea updated", slog.Int64("idea_id", id))

	return nil
}

// Delete removes an idea. Deleting an ID that never existed succeeds --
// the end state (no such record) is identical either way.
func (s *ideaService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.NewInternal(fmt.Errorf("deleting idea: %w", err))
	}

	slog.Info("idea deleted", slog.Int64("idea_id", id))

	return nil
}

// cleanIdeaText sanitizes both form fields and enforces that neither is
// empty afterwards. Shared by Create and Update so the add and edit paths
// validate identically.
func cleanIdeaText(title, details string) (string, string, error) {
	title = sanitize.Text(title)
	details = sanitize.Text(details)

	if title == "" || details == "" {
		return "", "", apperror.NewValidation("Please fill out all the required fields")
	}

	return title, details, nil
}
