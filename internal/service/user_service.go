package service

import (
	"context"

	"store-ratings/internal/apperr"
	"store-ratings/internal/domain"
	"store-ratings/internal/repo"
	"store-ratings/pkg/utils"
)

type UserService struct {
	users   *repo.UserRepo
	stores  *repo.StoreRepo
	ratings *repo.RatingRepo
}

func NewUserService(users *repo.UserRepo, stores *repo.StoreRepo, ratings *repo.RatingRepo) *UserService {
	return &UserService{users: users, stores: stores, ratings: ratings}
}

// Profile returns the user plus their rating history.
func (s *UserService) Profile(ctx context.Context, userID uint) (*domain.User, []repo.UserRatingRow, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, apperr.Internal("Server error while fetching user profile", err)
	}
	if u == nil {
		return nil, nil, apperr.NotFound("User not found")
	}
	ratings, err := s.ratings.ByUser(ctx, userID)
	if err != nil {
		return nil, nil, apperr.Internal("Server error while fetching user profile", err)
	}
	return u, ratings, nil
}

// UpdateProfile updates only the provided fields; asking for nothing is a
// client error.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, p repo.ProfileUpdate) (*domain.User, error) {
	if p.Empty() {
		return nil, apperr.BadRequest("No valid fields to update")
	}
	var nameCheck, addrCheck *apperr.FieldError
	if p.Name != nil {
		nameCheck = domain.CheckName(*p.Name)
	}
	if p.Address != nil {
		addrCheck = domain.CheckAddress(*p.Address)
	}
	if err := domain.Collect(nameCheck, addrCheck); err != nil {
		return nil, err
	}
	existing, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Server error during profile update", err)
	}
	if existing == nil {
		return nil, apperr.NotFound("User not found")
	}
	u, err := s.users.UpdateProfile(ctx, userID, p)
	if err != nil {
		return nil, apperr.Internal("Server error during profile update", err)
	}
	return u, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	if err := domain.Collect(domain.CheckPassword(next)); err != nil {
		return err
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return apperr.Internal("Server error during password update", err)
	}
	if u == nil {
		return apperr.NotFound("User not found")
	}
	if !utils.CheckPassword(current, u.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}
	if err := s.users.UpdatePassword(ctx, userID, utils.HashPassword(next)); err != nil {
		return apperr.Internal("Server error during password update", err)
	}
	return nil
}

type AdminCreateUserInput struct {
	Name     string
	Email    string
	Password string
	Address  *string
	Role     string
}

// AdminCreate creates a user with an explicit role.
func (s *UserService) AdminCreate(ctx context.Context, in AdminCreateUserInput) (*domain.User, error) {
	var addrCheck *apperr.FieldError
	if in.Address != nil {
		addrCheck = domain.CheckAddress(*in.Address)
	}
	if err := domain.Collect(
		domain.CheckName(in.Name),
		domain.CheckEmail(in.Email),
		domain.CheckPassword(in.Password),
		addrCheck,
		domain.CheckRole(in.Role),
	); err != nil {
		return nil, err
	}
	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, apperr.Internal("Server error during user creation", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already in use")
	}
	role, _ := domain.ParseRole(in.Role)
	u := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		Address:      in.Address,
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isDupKey(err) {
			return nil, apperr.Conflict("Email already in use")
		}
		return nil, apperr.Internal("Server error during user creation", err)
	}
	return u, nil
}

func (s *UserService) AdminList(ctx context.Context, f repo.UserFilter) ([]domain.User, error) {
	users, err := s.users.List(ctx, f)
	if err != nil {
		return nil, apperr.Internal("Server error while fetching users", err)
	}
	return users, nil
}

// UserDetail is a user plus, for store owners, their stores with
// aggregates.
type UserDetail struct {
	User   *domain.User         `json:"user"`
	Stores []repo.OwnerStoreRow `json:"stores,omitempty"`
}

func (s *UserService) AdminGet(ctx context.Context, userID uint) (*UserDetail, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Server error while fetching user details", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	out := &UserDetail{User: u}
	if u.Role == domain.RoleStoreOwner {
		stores, err := s.stores.OwnerStores(ctx, userID)
		if err != nil {
			return nil, apperr.Internal("Server error while fetching user details", err)
		}
		out.Stores = stores
	}
	return out, nil
}
