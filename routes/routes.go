package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/kidsstyle-mall-deliberate/cart"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/catalog"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/orders"
	"github.com/apper-canvas/kidsstyle-mall-deliberate/recent"
)

// Deps bundles the services the route groups wire handlers to.
type Deps struct {
	Catalog *catalog.Store
	Cart    *cart.Container
	Recent  *recent.Tracker
	Orders  *orders.Service
}

// SetupRoutes is the single entry-point that wires up the shop, cart and
// order route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupShopRoutes(r, deps)
	SetupCartRoutes(r, deps)
	SetupOrderRoutes(r, deps)
}
