package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/handlers"
)

func registerItemRoutes(router gin.IRoutes, handler *handlers.ItemHandler) {
	router.GET("/items", handler.ListItems)
	router.POST("/items", handler.CreateItem)
	router.GET("/items/:item_id", handler.GetItem)
	router.PUT("/items/:item_id", handler.UpdateItem)
	router.DELETE("/items/:item_id", handler.DeleteItem)
	router.POST("/items/:item_id/photos", handler.AddPhoto)
	router.DELETE("/photos/:photo_id", handler.DeletePhoto)

	router.GET("/categories", handler.ListCategories)
	router.POST("/categories", handler.CreateCategory)
	router.GET("/cities", handler.ListCities)
}
