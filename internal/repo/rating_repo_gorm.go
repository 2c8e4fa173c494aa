package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"store-ratings/internal/domain"
)

type RatingRepo struct{ db *gorm.DB }

func NewRatingRepo(db *gorm.DB) *RatingRepo { return &RatingRepo{db: db} }

// Aggregate is the derived rating summary for one store.
type Aggregate struct {
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
}

// Upsert inserts the rating or, when the (user, store) row already
// exists, overwrites its value and refreshes updated_at in one atomic
// statement. Two concurrent writers resolve to last-writer-wins without a
// constraint error surfacing.
func (r *RatingRepo) Upsert(ctx context.Context, userID, storeID uint, value int) (*domain.Rating, error) {
	row := domain.Rating{UserID: userID, StoreID: storeID, RatingValue: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"rating_value": value,
			"updated_at":   time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	// Re-read: on the conflict path Create does not hydrate the row.
	var out domain.Rating
	err = r.db.WithContext(ctx).
		First(&out, "user_id = ? AND store_id = ?", userID, storeID).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RatingRepo) StoreAggregate(ctx context.Context, storeID uint) (Aggregate, error) {
	var agg Aggregate
	err := r.db.WithContext(ctx).Model(&domain.Rating{}).
		Select("COALESCE(AVG(rating_value), 0) AS average_rating, COUNT(*) AS rating_count").
		Where("store_id = ?", storeID).
		Scan(&agg).Error
	return agg, err
}

// UserRatingRow is one entry of a user's rating history, with the store
// name joined in.
type UserRatingRow struct {
	ID          uint      `json:"id"`
	StoreID     uint      `json:"store_id"`
	StoreName   string    `json:"store_name"`
	RatingValue int       `json:"rating_value"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *RatingRepo) ByUser(ctx context.Context, userID uint) ([]UserRatingRow, error) {
	var rows []UserRatingRow
	err := r.db.WithContext(ctx).Model(&domain.Rating{}).
		Select("ratings.id, ratings.store_id, s.name AS store_name, ratings.rating_value, ratings.created_at, ratings.updated_at").
		Joins("JOIN stores s ON s.id = ratings.store_id").
		Where("ratings.user_id = ?", userID).
		Order("ratings.updated_at DESC").
		Scan(&rows).Error
	return rows, err
}

// StoreRatingRow is one rating of a store with the rater's identity, for
// the store-owner dashboard.
type StoreRatingRow struct {
	ID          uint      `json:"id"`
	RatingValue int       `json:"rating_value"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      uint      `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
}

func (r *RatingRepo) ByStoreWithUsers(ctx context.Context, storeID uint) ([]StoreRatingRow, error) {
	var rows []StoreRatingRow
	err := r.db.WithContext(ctx).Model(&domain.Rating{}).
		Select("ratings.id, ratings.rating_value, ratings.created_at, ratings.updated_at, u.id AS user_id, u.name AS user_name, u.email AS user_email").
		Joins("JOIN users u ON u.id = ratings.user_id").
		Where("ratings.store_id = ?", storeID).
		Order("ratings.updated_at DESC").
		Scan(&rows).Error
	return rows, err
}

// GlobalStats returns the total rating count and the all-stores average,
// 0 when no ratings exist.
func (r *RatingRepo) GlobalStats(ctx context.Context) (int64, float64, error) {
	var out struct {
		Total   int64
		Average float64
	}
	err := r.db.WithContext(ctx).Model(&domain.Rating{}).
		Select("COUNT(*) AS total, COALESCE(AVG(rating_value), 0) AS average").
		Scan(&out).Error
	return out.Total, out.Average, err
}
