package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"store-ratings/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

// UserFilter is the recognized filter/sort configuration for the admin
// user listing.
type UserFilter struct {
	Name      string
	Email     string
	Address   string
	Role      string
	SortBy    string
	SortOrder string
}

var userSortExprs = map[string]string{
	"name":       "name",
	"email":      "email",
	"address":    "address",
	"role":       "role",
	"created_at": "created_at",
}

func (r *UserRepo) List(ctx context.Context, f UserFilter) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{}).
		Select("id, name, email, address, role, created_at")
	q = likeFilter(q, "name", f.Name)
	q = likeFilter(q, "email", f.Email)
	q = likeFilter(q, "address", f.Address)
	if role, ok := domain.ParseRole(f.Role); ok {
		q = q.Where("role = ?", role)
	}
	q = q.Order(orderClause(userSortExprs, f.SortBy, f.SortOrder, "created_at DESC"))

	var users []domain.User
	err := q.Find(&users).Error
	return users, err
}

// ProfileUpdate maps each optional field to its predeclared column
// assignment; only provided fields reach the UPDATE.
type ProfileUpdate struct {
	Name    *string
	Address *string
}

func (p ProfileUpdate) Empty() bool { return p.Name == nil && p.Address == nil }

func (r *UserRepo) UpdateProfile(ctx context.Context, id uint, p ProfileUpdate) (*domain.User, error) {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Address != nil {
		cols["address"] = *p.Address
	}
	if len(cols) > 0 {
		if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(cols).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (r *UserRepo) CountByRole(ctx context.Context) (int64, map[domain.Role]int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}
	var rows []struct {
		Role  domain.Role
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Select("role, COUNT(*) AS count").Group("role").Scan(&rows).Error
	if err != nil {
		return 0, nil, err
	}
	byRole := make(map[domain.Role]int64, len(rows))
	for _, row := range rows {
		byRole[row.Role] = row.Count
	}
	return total, byRole, nil
}
