package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
}

type categoryRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCategoryRepository(db database.Querier, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT id, name, slug, created_at, updated_at FROM categories ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var category entity.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, rows.Err()
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	query := `SELECT id, name, slug, created_at, updated_at FROM categories WHERE id = $1`

	var category entity.Category
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name, &category.Slug, &category.CreatedAt, &category.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return nil, fmt.Errorf("find category by ID %s: %w", id.String(), err)
	}

	return &category, nil
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	query := `SELECT id, name, slug, created_at, updated_at FROM categories WHERE slug = $1`

	var category entity.Category
	err := r.db.QueryRow(ctx, query, slug).Scan(&category.ID, &category.Name, &category.Slug, &category.CreatedAt, &category.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find category by slug %s: %w", slug, err)
	}

	return &category, nil
}
