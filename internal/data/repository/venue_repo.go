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

// VenueFilter narrows catalog listings. Zero values mean "no filter".
type VenueFilter struct {
	CategorySlug string
	City         string
	Search       string
}

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Venue, error)
	FindAll(ctx context.Context, filter VenueFilter, limit, offset int) ([]*entity.Venue, error)
	CountAll(ctx context.Context, filter VenueFilter) (int64, error)
	Update(ctx context.Context, venue *entity.Venue) error
	// Delete removes the venue; bookings, payments and add-ons cascade via
	// foreign keys. The only flow that physically deletes bookings.
	Delete(ctx context.Context, id uuid.UUID) error
}

type venueRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewVenueRepository(db database.Querier, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

const venueColumns = `v.id, v.category_id, v.name, v.slug, v.description, v.location, v.city, v.address,
	v.price_per_hour, v.capacity, v.facilities, v.image_url, v.available_start_time, v.available_end_time,
	v.created_at, v.updated_at`

func scanVenue(row pgx.Row) (*entity.Venue, error) {
	var venue entity.Venue
	err := row.Scan(
		&venue.ID,
		&venue.CategoryID,
		&venue.Name,
		&venue.Slug,
		&venue.Description,
		&venue.Location,
		&venue.City,
		&venue.Address,
		&venue.PricePerHour,
		&venue.Capacity,
		&venue.Facilities,
		&venue.ImageURL,
		&venue.AvailableStartTime,
		&venue.AvailableEndTime,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	query := `
		INSERT INTO venues (id, category_id, name, slug, description, location, city, address,
		                    price_per_hour, capacity, facilities, image_url,
		                    available_start_time, available_end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		venue.ID,
		venue.CategoryID,
		venue.Name,
		venue.Slug,
		venue.Description,
		venue.Location,
		venue.City,
		venue.Address,
		venue.PricePerHour,
		venue.Capacity,
		venue.Facilities,
		venue.ImageURL,
		venue.AvailableStartTime,
		venue.AvailableEndTime,
		venue.CreatedAt,
		venue.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("slug", venue.Slug),
		)
		return fmt.Errorf("create venue %s: %w", venue.Slug, err)
	}

	return nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues v WHERE v.id = $1`

	venue, err := scanVenue(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return nil, fmt.Errorf("find venue by ID %s: %w", id.String(), err)
	}

	return venue, nil
}

func (r *venueRepository) FindBySlug(ctx context.Context, slug string) (*entity.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues v WHERE v.slug = $1`

	venue, err := scanVenue(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find venue by slug %s: %w", slug, err)
	}

	return venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context, filter VenueFilter, limit, offset int) ([]*entity.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues v
		JOIN categories c ON c.id = v.category_id
		WHERE ($1 = '' OR c.slug = $1)
		  AND ($2 = '' OR v.city ILIKE $2)
		  AND ($3 = '' OR v.name ILIKE '%' || $3 || '%' OR v.location ILIKE '%' || $3 || '%')
		ORDER BY v.name
		LIMIT $4 OFFSET $5
	`

	rows, err := r.db.Query(ctx, query, filter.CategorySlug, filter.City, filter.Search, limit, offset)
	if err != nil {
		r.log.Error("Failed to list venues", zap.Error(err))
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var venues []*entity.Venue
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, venue)
	}

	return venues, rows.Err()
}

func (r *venueRepository) CountAll(ctx context.Context, filter VenueFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM venues v
		JOIN categories c ON c.id = v.category_id
		WHERE ($1 = '' OR c.slug = $1)
		  AND ($2 = '' OR v.city ILIKE $2)
		  AND ($3 = '' OR v.name ILIKE '%' || $3 || '%' OR v.location ILIKE '%' || $3 || '%')
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, filter.CategorySlug, filter.City, filter.Search).Scan(&count); err != nil {
		r.log.Error("Failed to count venues", zap.Error(err))
		return 0, fmt.Errorf("count venues: %w", err)
	}

	return count, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	query := `
		UPDATE venues
		SET category_id = $2, name = $3, slug = $4, description = $5, location = $6,
		    city = $7, address = $8, price_per_hour = $9, capacity = $10, facilities = $11,
		    image_url = $12, available_start_time = $13, available_end_time = $14, updated_at = $15
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		venue.ID,
		venue.CategoryID,
		venue.Name,
		venue.Slug,
		venue.Description,
		venue.Location,
		venue.City,
		venue.Address,
		venue.PricePerHour,
		venue.Capacity,
		venue.Facilities,
		venue.ImageURL,
		venue.AvailableStartTime,
		venue.AvailableEndTime,
		venue.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update venue",
			zap.Error(err),
			zap.String("venue_id", venue.ID.String()),
		)
		return fmt.Errorf("update venue %s: %w", venue.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("venue %s not found", venue.ID.String())
	}

	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM venues WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete venue",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return fmt.Errorf("delete venue %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("venue %s not found", id.String())
	}

	r.log.Info("Venue deleted", zap.String("venue_id", id.String()))
	return nil
}
