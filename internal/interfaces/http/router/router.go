package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KishoreVB70/icp-marketplace/internal/interfaces/http/handler"
	"github.com/KishoreVB70/icp-marketplace/internal/interfaces/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	addressHandler *handler.AddressHandler,
) {
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	api.Use(middleware.CallerIdentity())
	{
		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.POST("/products", productHandler.CreateProduct)
		api.PUT("/products/:id", productHandler.UpdateProduct)
		api.DELETE("/products/:id", productHandler.DeleteProduct)

		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.CreateOrder)

		api.GET("/principal-to-address/:principalHex", addressHandler.PrincipalToAddress)
	}
}
