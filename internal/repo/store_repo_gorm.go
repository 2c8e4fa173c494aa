package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"store-ratings/internal/domain"
)

type StoreRepo struct{ db *gorm.DB }

func NewStoreRepo(db *gorm.DB) *StoreRepo { return &StoreRepo{db: db} }

func (r *StoreRepo) Create(ctx context.Context, s *domain.Store) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StoreRepo) FindByID(ctx context.Context, id uint) (*domain.Store, error) {
	var s domain.Store
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *StoreRepo) ByOwner(ctx context.Context, ownerID uint) ([]domain.Store, error) {
	var stores []domain.Store
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&stores).Error
	return stores, err
}

func (r *StoreRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Store{}).Count(&n).Error
	return n, err
}

// StoreFilter is the recognized filter/sort configuration for store
// listings.
type StoreFilter struct {
	Name      string
	Email     string
	Address   string
	SortBy    string
	SortOrder string
}

// StoreRow is one store-listing row: store columns plus aggregates and
// the requesting user's own rating (null when absent).
type StoreRow struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         *string   `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int64     `json:"rating_count"`
	UserRating    *int      `json:"user_rating"`
}

// AdminStoreRow adds owner info for the admin listing.
type AdminStoreRow struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         *string   `json:"email"`
	Address       string    `json:"address"`
	OwnerID       *uint     `json:"owner_id"`
	OwnerName     *string   `json:"owner_name"`
	OwnerEmail    *string   `json:"owner_email"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int64     `json:"rating_count"`
}

// OwnerStoreRow is one of an owner's stores with its aggregate, used by
// the store-owner dashboard and the admin user detail.
type OwnerStoreRow struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         *string   `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating float64   `json:"average_rating"`
	RatingCount   int64     `json:"rating_count"`
}

func (r *StoreRepo) OwnerStores(ctx context.Context, ownerID uint) ([]OwnerStoreRow, error) {
	var rows []OwnerStoreRow
	err := r.db.WithContext(ctx).Model(&domain.Store{}).
		Select(`stores.id, stores.name, stores.email, stores.address, stores.created_at,
			COALESCE(AVG(r.rating_value), 0) AS average_rating,
			COUNT(r.id) AS rating_count`).
		Joins("LEFT JOIN ratings r ON r.store_id = stores.id").
		Where("stores.owner_id = ?", ownerID).
		Group("stores.id").
		Order("stores.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// Sortable columns per endpoint. Aggregate names map to their SQL
// expressions so ORDER BY matches the computed columns.
var storeSortExprs = map[string]string{
	"name":           "stores.name",
	"email":          "stores.email",
	"address":        "stores.address",
	"created_at":     "stores.created_at",
	"average_rating": "AVG(r.rating_value)",
	"rating_count":   "COUNT(r.id)",
}

// ListWithUserRating builds the store-listing query: left join to ratings
// for the aggregate, plus a correlated lookup of the caller's own rating.
func (r *StoreRepo) ListWithUserRating(ctx context.Context, f StoreFilter, userID uint) ([]StoreRow, error) {
	q := r.db.WithContext(ctx).Model(&domain.Store{}).
		Select(`stores.id, stores.name, stores.email, stores.address, stores.created_at,
			COALESCE(AVG(r.rating_value), 0) AS average_rating,
			COUNT(r.id) AS rating_count,
			(SELECT rating_value FROM ratings WHERE ratings.store_id = stores.id AND ratings.user_id = ?) AS user_rating`,
			userID).
		Joins("LEFT JOIN ratings r ON r.store_id = stores.id").
		Group("stores.id")
	q = likeFilter(q, "stores.name", f.Name)
	q = likeFilter(q, "stores.address", f.Address)
	q = q.Order(orderClause(storeSortExprs, f.SortBy, f.SortOrder, "stores.name ASC"))

	var rows []StoreRow
	err := q.Scan(&rows).Error
	return rows, err
}

// AdminList is the admin store listing: owner joined in, aggregates,
// filters over name/email/address.
func (r *StoreRepo) AdminList(ctx context.Context, f StoreFilter) ([]AdminStoreRow, error) {
	q := r.db.WithContext(ctx).Model(&domain.Store{}).
		Select(`stores.id, stores.name, stores.email, stores.address, stores.owner_id, stores.created_at,
			u.name AS owner_name, u.email AS owner_email,
			COALESCE(AVG(r.rating_value), 0) AS average_rating,
			COUNT(r.id) AS rating_count`).
		Joins("LEFT JOIN users u ON u.id = stores.owner_id").
		Joins("LEFT JOIN ratings r ON r.store_id = stores.id").
		Group("stores.id, u.name, u.email")
	q = likeFilter(q, "stores.name", f.Name)
	q = likeFilter(q, "stores.email", f.Email)
	q = likeFilter(q, "stores.address", f.Address)
	q = q.Order(orderClause(storeSortExprs, f.SortBy, f.SortOrder, "stores.name ASC"))

	var rows []AdminStoreRow
	err := q.Scan(&rows).Error
	return rows, err
}
