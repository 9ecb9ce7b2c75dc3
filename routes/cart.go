package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/OnurOzayyy/ecommerce/cart"
	cartControllers "github.com/OnurOzayyy/ecommerce/controllers/cart"
	checkoutControllers "github.com/OnurOzayyy/ecommerce/controllers/checkout"
	"github.com/OnurOzayyy/ecommerce/middleware"
)

// SetupCartRoutes registers the cart and checkout endpoints. All of them
// require a resolved session identity.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, svc *cart.Service) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ResolveSession)
	{
		cartGroup.GET("/", cartControllers.CartView(svc))                 // GET /cart?item=&qty=&delete=
		cartGroup.GET("/count", cartControllers.ItemCount(svc))           // GET /cart/count
		cartGroup.DELETE("/:variation_id", cartControllers.RemoveItem(svc)) // DELETE /cart/:variation_id
		cartGroup.DELETE("/", cartControllers.ClearCart(svc))             // DELETE /cart
	}

	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.ResolveSession)
	{
		checkoutGroup.GET("/", checkoutControllers.CheckoutView(svc))    // GET /checkout
		checkoutGroup.POST("/guest", checkoutControllers.GuestCheckout(db)) // POST /checkout/guest
	}
}
