package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solvera/storefront-api/controllers"
	"github.com/solvera/storefront-api/middleware"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Catalog  *controllers.CatalogController
	Cart     *controllers.CartController
	Wishlist *controllers.WishlistController
	Auth     *controllers.AuthController
	Profile  *controllers.ProfileController
	Order    *controllers.OrderController
}

// Register mounts all routes on the engine. Catalog browsing and auth are
// public; cart, wishlist, orders and profile require a valid bearer token.
func Register(router *gin.Engine, ctrl Controllers, jwtSecret string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	products := router.Group("/products")
	{
		products.GET("", ctrl.Catalog.ListProducts)
		products.GET("/search", ctrl.Catalog.SearchProducts)
		products.GET("/:id", ctrl.Catalog.GetProduct)
	}

	authed := router.Group("/")
	authed.Use(middleware.JWTAuth(jwtSecret))
	{
		cart := authed.Group("/cart")
		{
			cart.GET("", ctrl.Cart.GetCart)
			cart.POST("", ctrl.Cart.AddItem)
			cart.PATCH("/:id", ctrl.Cart.UpdateItem)
			cart.DELETE("/:id", ctrl.Cart.RemoveItem)
			cart.DELETE("", ctrl.Cart.ClearCart)
		}

		wishlist := authed.Group("/wishlist")
		{
			wishlist.GET("", ctrl.Wishlist.ListItems)
			wishlist.POST("", ctrl.Wishlist.AddItem)
			wishlist.DELETE("/:id", ctrl.Wishlist.RemoveItem)
			wishlist.POST("/:id/cart", ctrl.Wishlist.MoveToCart)
		}

		orders := authed.Group("/orders")
		{
			orders.GET("", ctrl.Order.ListOrders)
			orders.GET("/:id", ctrl.Order.GetOrder)
		}

		users := authed.Group("/users")
		{
			users.GET("/me", ctrl.Profile.GetProfile)
			users.PUT("/me", ctrl.Profile.UpdateProfile)
		}
	}
}
