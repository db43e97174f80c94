package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusgo/campus-market/internal/core/service"
)

type Services struct {
	Users     *service.UserService
	Products  *service.ProductService
	Favorites *service.FavoriteService
	Orders    *service.OrderService
	Stats     *service.StatsService
}

// NewRouter wires all endpoints, middleware and the static frontend.
func NewRouter(svc Services, staticDir string, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log), CORS())

	users := NewUserHandler(svc.Users)
	products := NewProductHandler(svc.Products)
	favorites := NewFavoriteHandler(svc.Favorites)
	orders := NewOrderHandler(svc.Orders)
	stats := NewStatsHandler(svc.Stats)

	r.GET("/product_list", products.List)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/login", users.Login)
		api.POST("/register", users.Register)
		api.POST("/publish_product", products.Publish)
		api.GET("/categories", products.Categories)
		api.GET("/user_products/:user_id", products.UserProducts)
		api.POST("/toggle_favorite", favorites.Toggle)
		api.GET("/user_favorites/:user_id", favorites.UserFavorites)
		api.GET("/check_favorite/:user_id/:product_id", favorites.CheckFavorite)
		api.POST("/create_order", orders.Create)
		api.GET("/hot_categories", stats.HotCategories)
		api.GET("/price_distribution", stats.PriceDistribution)
		api.GET("/debug/tables", stats.DebugTables)
	}

	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "login.html"))
	})

	// Serve bundled frontend files; anything unknown gets a JSON 404 instead
	// of the framework default.
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			path := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				c.File(path)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": "file not found"})
	})

	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":      http.StatusOK,
		"message":   "campus marketplace API is running",
		"timestamp": time.Now().Format("2006-01-02 15:04:05"),
		"version":   "2.0",
	})
}
