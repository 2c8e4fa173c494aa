package service

import (
	"context"
	"time"

	"store-ratings/internal/apperr"
	"store-ratings/internal/core/auth"
	"store-ratings/internal/core/cache"
	"store-ratings/internal/repo"
)

type DashboardService struct {
	users   *repo.UserRepo
	stores  *repo.StoreRepo
	ratings *repo.RatingRepo
	cache   *cache.Cache // optional; nil reads straight from the DB
}

func NewDashboardService(users *repo.UserRepo, stores *repo.StoreRepo, ratings *repo.RatingRepo, c *cache.Cache) *DashboardService {
	return &DashboardService{users: users, stores: stores, ratings: ratings, cache: c}
}

type UserStats struct {
	Total  int64            `json:"total"`
	ByRole map[string]int64 `json:"by_role"`
}

type StoreStats struct {
	Total int64 `json:"total"`
}

type RatingStats struct {
	Total   int64   `json:"total"`
	Average float64 `json:"average"`
}

type AdminStats struct {
	Users   UserStats   `json:"users"`
	Stores  StoreStats  `json:"stores"`
	Ratings RatingStats `json:"ratings"`
}

const adminStatsKey = "dashboard:admin"
const adminStatsTTL = 30 * time.Second

func (s *DashboardService) AdminStats(ctx context.Context) (*AdminStats, error) {
	if s.cache == nil {
		return s.loadAdminStats(ctx)
	}
	out, err := cache.GetOrLoadJSON[AdminStats](s.cache, ctx, adminStatsKey, adminStatsTTL, s.loadAdminStats)
	if err != nil {
		return nil, apperr.Internal("Server error while fetching dashboard data", err)
	}
	return out, nil
}

func (s *DashboardService) loadAdminStats(ctx context.Context) (*AdminStats, error) {
	totalUsers, byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, apperr.Internal("Server error while fetching dashboard data", err)
	}
	roleCounts := make(map[string]int64, len(byRole))
	for r, n := range byRole {
		roleCounts[r.String()] = n
	}
	totalStores, err := s.stores.Count(ctx)
	if err != nil {
		return nil, apperr.Internal("Server error while fetching dashboard data", err)
	}
	totalRatings, avg, err := s.ratings.GlobalStats(ctx)
	if err != nil {
		return nil, apperr.Internal("Server error while fetching dashboard data", err)
	}
	return &AdminStats{
		Users:   UserStats{Total: totalUsers, ByRole: roleCounts},
		Stores:  StoreStats{Total: totalStores},
		Ratings: RatingStats{Total: totalRatings, Average: avg},
	}, nil
}

type OwnerInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OwnerStoreDetail struct {
	repo.OwnerStoreRow
	RatingsSummary repo.Aggregate        `json:"ratings_summary"`
	Ratings        []repo.StoreRatingRow `json:"ratings"`
}

type OwnerDashboard struct {
	Owner       OwnerInfo          `json:"owner"`
	StoresCount int                `json:"stores_count"`
	Stores      []OwnerStoreDetail `json:"stores"`
}

// OwnerDashboardFor assembles the caller's stores with per-rater detail.
func (s *DashboardService) OwnerDashboardFor(ctx context.Context, claims *auth.Claims) (*OwnerDashboard, error) {
	rows, err := s.stores.OwnerStores(ctx, claims.UserID)
	if err != nil {
		return nil, apperr.Internal("Server error while fetching dashboard data", err)
	}
	if len(rows) == 0 {
		return nil, apperr.NotFound("No stores found for this owner")
	}
	out := &OwnerDashboard{
		Owner:       OwnerInfo{ID: claims.UserID, Name: claims.Name, Email: claims.Email},
		StoresCount: len(rows),
		Stores:      make([]OwnerStoreDetail, 0, len(rows)),
	}
	for _, row := range rows {
		ratings, err := s.ratings.ByStoreWithUsers(ctx, row.ID)
		if err != nil {
			return nil, apperr.Internal("Server error while fetching dashboard data", err)
		}
		out.Stores = append(out.Stores, OwnerStoreDetail{
			OwnerStoreRow:  row,
			RatingsSummary: repo.Aggregate{AverageRating: row.AverageRating, RatingCount: row.RatingCount},
			Ratings:        ratings,
		})
	}
	return out, nil
}
