package service

import (
	"context"

	"store-ratings/internal/apperr"
	"store-ratings/internal/domain"
	"store-ratings/internal/repo"
)

type StoreService struct {
	stores  *repo.StoreRepo
	users   *repo.UserRepo
	ratings *repo.RatingRepo
}

func NewStoreService(stores *repo.StoreRepo, users *repo.UserRepo, ratings *repo.RatingRepo) *StoreService {
	return &StoreService{stores: stores, users: users, ratings: ratings}
}

func (s *StoreService) List(ctx context.Context, userID uint, f repo.StoreFilter) ([]repo.StoreRow, error) {
	rows, err := s.stores.ListWithUserRating(ctx, f, userID)
	if err != nil {
		return nil, apperr.Internal("Server error while fetching stores", err)
	}
	return rows, nil
}

func (s *StoreService) AdminList(ctx context.Context, f repo.StoreFilter) ([]repo.AdminStoreRow, error) {
	rows, err := s.stores.AdminList(ctx, f)
	if err != nil {
		return nil, apperr.Internal("Server error while fetching stores", err)
	}
	return rows, nil
}

// SubmitRating upserts the caller's rating and returns the row together
// with the store's refreshed aggregate.
func (s *StoreService) SubmitRating(ctx context.Context, userID, storeID uint, value int) (*domain.Rating, repo.Aggregate, error) {
	if value < 1 || value > 5 {
		return nil, repo.Aggregate{}, apperr.Validation(apperr.FieldError{
			Field: "rating_value", Message: "Rating must be between 1 and 5",
		})
	}
	store, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		return nil, repo.Aggregate{}, apperr.Internal("Server error during rating submission", err)
	}
	if store == nil {
		return nil, repo.Aggregate{}, apperr.NotFound("Store not found")
	}
	rating, err := s.ratings.Upsert(ctx, userID, storeID, value)
	if err != nil {
		return nil, repo.Aggregate{}, apperr.Internal("Server error during rating submission", err)
	}
	agg, err := s.ratings.StoreAggregate(ctx, storeID)
	if err != nil {
		return nil, repo.Aggregate{}, apperr.Internal("Server error during rating submission", err)
	}
	return rating, agg, nil
}

type StoreInput struct {
	Name    string
	Email   *string
	Address string
	OwnerID *uint
}

func (s *StoreService) validateStore(in StoreInput, requireAddress bool) error {
	var emailCheck, addrCheck *apperr.FieldError
	if in.Email != nil {
		emailCheck = domain.CheckEmail(*in.Email)
	}
	if requireAddress && in.Address == "" {
		addrCheck = &apperr.FieldError{Field: "address", Message: "Address is required"}
	} else {
		addrCheck = domain.CheckAddress(in.Address)
	}
	return domain.Collect(domain.CheckName(in.Name), emailCheck, addrCheck)
}

// AdminCreate creates a store, optionally assigned to an owner who must
// exist and hold the store_owner role.
func (s *StoreService) AdminCreate(ctx context.Context, in StoreInput) (*domain.Store, error) {
	if err := s.validateStore(in, false); err != nil {
		return nil, err
	}
	if in.OwnerID != nil {
		owner, err := s.users.FindByID(ctx, *in.OwnerID)
		if err != nil {
			return nil, apperr.Internal("Server error during store creation", err)
		}
		if owner == nil {
			return nil, apperr.NotFound("Owner not found")
		}
		if owner.Role != domain.RoleStoreOwner {
			return nil, apperr.BadRequest("Assigned user must have store_owner role")
		}
	}
	return s.create(ctx, in)
}

// OwnerCreate creates a store owned by the caller.
func (s *StoreService) OwnerCreate(ctx context.Context, ownerID uint, in StoreInput) (*domain.Store, error) {
	if err := s.validateStore(in, true); err != nil {
		return nil, err
	}
	in.OwnerID = &ownerID
	return s.create(ctx, in)
}

func (s *StoreService) create(ctx context.Context, in StoreInput) (*domain.Store, error) {
	store := &domain.Store{
		Name:    in.Name,
		Email:   in.Email,
		Address: in.Address,
		OwnerID: in.OwnerID,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		if isDupKey(err) {
			return nil, apperr.Conflict("Store email already in use")
		}
		return nil, apperr.Internal("Server error during store creation", err)
	}
	return store, nil
}
