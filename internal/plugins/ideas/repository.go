package ideas

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vidjot/vidjot/internal/apperror"
)

// IdeaRepository defines the data access contract for idea operations.
type IdeaRepository interface {
	Create(ctx context.Context, idea *Idea) error
	FindByID(ctx context.Context, id int64) (*Idea, error)
	ListAll(ctx context.Context) ([]Idea, error)
	Update(ctx context.Context, id int64, title, details string) error
	Delete(ctx context.Context, id int64) error
}

// ideaRepository implements IdeaRepository with hand-written MariaDB queries.
type ideaRepository struct {
	db *sql.DB
}

// NewIdeaRepository creates a new idea repository backed by the given DB pool.
func NewIdeaRepository(db *sql.DB) IdeaRepository {
	return &ideaRepository{db: db}
}

// Create inserts a new idea row and fills in the store-assigned ID.
func (r *ideaRepository) Create(ctx context.Context, idea *Idea) error {
	query := `INSERT INTO ideas (title, details, created_at) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, idea.Title, idea.Details, idea.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting idea: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading idea id: %w", err)
	}
	idea.ID = id

	return nil
}

// FindByID retrieves an idea by its ID.
// Returns apperror.NotFound if no idea exists with this ID.
func (r *ideaRepository) FindByID(ctx context.Context, id int64) (*Idea, error) {
	query := `SELECT id, title, details, created_at FROM ideas WHERE id = ?`

	idea := &Idea{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&idea.ID,
		&idea.Title,
		&idea.Details,
		&idea.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("idea not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying idea by id: %w", err)
	}

	return idea, nil
}

// ListAll returns every idea, newest first.
func (r *ideaRepository) ListAll(ctx context.Context) ([]Idea, error) {
	query := `SELECT id, title, details, created_at FROM ideas ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing ideas: %w", err)
	}
	defer rows.Close()

	var ideas []Idea
	for rows.Next() {
		var idea Idea
		if err := rows.Scan(&idea.ID, &idea.Title, &idea.Details, &idea.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning idea row: %w", err)
		}
		ideas = append(ideas, idea)
	}

	return ideas, rows.Err()
}

// Update replaces the title and details of the idea with the given ID.
// Updating a missing ID affects zero rows and is not an error.
func (r *ideaRepository) Update(ctx context.Context, id int64, title, details string) error {
	query := `UPDATE ideas SET title = ?, details = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, title, details, id); err != nil {
		return fmt.Errorf("updating idea: %w", err)
	}

	return nil
}

// Delete removes the idea with the given ID. Deleting a missing ID affects
// zero rows and is not an error.
func (r *ideaRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM ideas WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting idea: %w", err)
	}

	return nil
}
