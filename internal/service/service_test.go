package service_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"store-ratings/internal/core/auth"
	"store-ratings/internal/domain"
	"store-ratings/internal/repo"
	"store-ratings/internal/service"
)

var dbSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svctest%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(domain.Models()...))
	return db
}

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "store-ratings-test", TTL: time.Hour}
}

type testEnv struct {
	db        *gorm.DB
	users     *repo.UserRepo
	stores    *repo.StoreRepo
	ratings   *repo.RatingRepo
	auth      *service.AuthService
	userSvc   *service.UserService
	storeSvc  *service.StoreService
	dashboard *service.DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	stores := repo.NewStoreRepo(db)
	ratings := repo.NewRatingRepo(db)
	jwter := testJWTer()
	return &testEnv{
		db:        db,
		users:     users,
		stores:    stores,
		ratings:   ratings,
		auth:      service.NewAuthService(users, jwter),
		userSvc:   service.NewUserService(users, stores, ratings),
		storeSvc:  service.NewStoreService(stores, users, ratings),
		dashboard: service.NewDashboardService(users, stores, ratings, nil),
	}
}
