package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"store-ratings/internal/core/auth"
	"store-ratings/internal/domain"
	"store-ratings/internal/transport/http/handler"
	mdw "store-ratings/internal/transport/http/middleware"
)

type Handlers struct {
	Auth  *handler.AuthHandler
	User  *handler.UserHandler
	Store *handler.StoreHandler
	Admin *handler.AdminHandler
	Owner *handler.OwnerHandler
}

// NewEngine wires the middleware chain and mounts every route group with
// its explicit role allow-set.
func NewEngine(l *zap.Logger, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public; per-IP limited to slow credential stuffing
	pub := r.Group("/auth", mdw.RateLimitPerIP(10, 20))
	pub.POST("/signup", h.Auth.Signup)
	pub.POST("/login", h.Auth.Login)
	pub.POST("/logout", h.Auth.Logout)

	api := r.Group("/api")

	// Any authenticated user
	users := api.Group("/users", mdw.AuthJWT(jwter))
	users.GET("/me", h.User.Me)
	users.PUT("/me", h.User.UpdateMe)
	users.PUT("/me/password", h.User.UpdatePassword)

	stores := api.Group("/stores", mdw.AuthJWT(jwter))
	stores.GET("", h.Store.List)
	stores.POST("/:storeId/ratings", h.Store.SubmitRating)

	// Administrators
	admin := api.Group("/admin", mdw.AuthJWT(jwter, domain.RoleAdmin))
	admin.POST("/users", h.Admin.CreateUser)
	admin.GET("/users", h.Admin.ListUsers)
	admin.GET("/users/:userId", h.Admin.GetUser)
	admin.POST("/stores", h.Admin.CreateStore)
	admin.GET("/stores", h.Admin.ListStores)
	admin.GET("/dashboard", h.Admin.Dashboard)

	// Store owners
	owner := api.Group("/store-owner", mdw.AuthJWT(jwter, domain.RoleStoreOwner))
	owner.GET("/dashboard", h.Owner.Dashboard)
	owner.POST("/stores", h.Owner.CreateStore)

	return r
}
