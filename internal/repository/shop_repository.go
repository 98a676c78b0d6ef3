package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shopmap/internal/apperr"
	"shopmap/internal/models"
)

type shopRepository struct {
	db *sqlx.DB
}

func NewShopRepository(db *sqlx.DB) ShopRepository {
	return &shopRepository{db: db}
}

// Upsert creates the shop or, when the OSM id is already registered, loads the
// existing row into shop. The unique index on osm_id is what prevents dual
// registration of the same place.
func (r *shopRepository) Upsert(ctx context.Context, shop *models.Shop) error {
	if shop.ShopID == "" {
		shop.ShopID = uuid.New().String()
	}

	query := `
		INSERT INTO shops (shop_id, osm_id, name, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (osm_id) DO UPDATE SET name = EXCLUDED.name
		RETURNING shop_id, osm_id, name, latitude, longitude
	`

	err := r.db.GetContext(ctx, shop, query,
		shop.ShopID, shop.OSMID, shop.Name, shop.Latitude, shop.Longitude)
	if err != nil {
		return apperr.Storage("failed to upsert shop: %v", err)
	}

	return nil
}

func (r *shopRepository) GetByID(ctx context.Context, shopID string) (*models.Shop, error) {
	var shop models.Shop

	query := `SELECT * FROM shops WHERE shop_id = $1`

	err := r.db.GetContext(ctx, &shop, query, shopID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("shop %s not found", shopID)
		}
		return nil, apperr.Storage("failed to get shop: %v", err)
	}

	return &shop, nil
}

func (r *shopRepository) GetByOSMID(ctx context.Context, osmID int64) (*models.Shop, error) {
	var shop models.Shop

	query := `SELECT * FROM shops WHERE osm_id = $1`

	err := r.db.GetContext(ctx, &shop, query, osmID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("shop with osm id %d not found", osmID)
		}
		return nil, apperr.Storage("failed to get shop by osm id: %v", err)
	}

	return &shop, nil
}
