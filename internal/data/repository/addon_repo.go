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

type AddOnRepository interface {
	Create(ctx context.Context, addon *entity.AddOn) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AddOn, error)
	// FindByIDs loads add-ons by id set; prices are always read fresh so
	// cost recomputation uses current prices, never a snapshot.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.AddOn, error)
	FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.AddOn, error)
	Update(ctx context.Context, addon *entity.AddOn) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type addOnRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewAddOnRepository(db database.Querier, log *zap.Logger) AddOnRepository {
	return &addOnRepository{
		db:  db,
		log: log.With(zap.String("repository", "addon")),
	}
}

const addOnColumns = `id, venue_id, name, description, price, created_at, updated_at`

func scanAddOn(row pgx.Row) (*entity.AddOn, error) {
	var addon entity.AddOn
	err := row.Scan(
		&addon.ID,
		&addon.VenueID,
		&addon.Name,
		&addon.Description,
		&addon.Price,
		&addon.CreatedAt,
		&addon.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &addon, nil
}

func (r *addOnRepository) Create(ctx context.Context, addon *entity.AddOn) error {
	query := `
		INSERT INTO addons (id, venue_id, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		addon.ID,
		addon.VenueID,
		addon.Name,
		addon.Description,
		addon.Price,
		addon.CreatedAt,
		addon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create add-on",
			zap.Error(err),
			zap.String("venue_id", addon.VenueID.String()),
			zap.String("name", addon.Name),
		)
		return fmt.Errorf("create add-on %s: %w", addon.Name, err)
	}

	return nil
}

func (r *addOnRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AddOn, error) {
	query := `SELECT ` + addOnColumns + ` FROM addons WHERE id = $1`

	addon, err := scanAddOn(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find add-on by ID",
			zap.Error(err),
			zap.String("addon_id", id.String()),
		)
		return nil, fmt.Errorf("find add-on by ID %s: %w", id.String(), err)
	}

	return addon, nil
}

func (r *addOnRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.AddOn, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + addOnColumns + ` FROM addons WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find add-ons by IDs", zap.Error(err))
		return nil, fmt.Errorf("find add-ons by IDs: %w", err)
	}
	defer rows.Close()

	return collectAddOns(rows)
}

func (r *addOnRepository) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.AddOn, error) {
	query := `SELECT ` + addOnColumns + ` FROM addons WHERE venue_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		r.log.Error("Failed to find add-ons by venue ID",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
		return nil, fmt.Errorf("find add-ons by venue ID %s: %w", venueID.String(), err)
	}
	defer rows.Close()

	return collectAddOns(rows)
}

func (r *addOnRepository) Update(ctx context.Context, addon *entity.AddOn) error {
	query := `
		UPDATE addons
		SET name = $2, description = $3, price = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		addon.ID,
		addon.Name,
		addon.Description,
		addon.Price,
		addon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update add-on",
			zap.Error(err),
			zap.String("addon_id", addon.ID.String()),
		)
		return fmt.Errorf("update add-on %s: %w", addon.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("add-on %s not found", addon.ID.String())
	}

	return nil
}

func (r *addOnRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM addons WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete add-on",
			zap.Error(err),
			zap.String("addon_id", id.String()),
		)
		return fmt.Errorf("delete add-on %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("add-on %s not found", id.String())
	}

	return nil
}

func collectAddOns(rows pgx.Rows) ([]*entity.AddOn, error) {
	var addons []*entity.AddOn
	for rows.Next() {
		addon, err := scanAddOn(rows)
		if err != nil {
			return nil, fmt.Errorf("scan add-on row: %w", err)
		}
		addons = append(addons, addon)
	}
	return addons, rows.Err()
}
