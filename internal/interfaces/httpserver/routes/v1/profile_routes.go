package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/handlers"
)

func registerProfileRoutes(router gin.IRoutes, handler *handlers.ProfileHandler) {
	router.GET("/users/profile", handler.GetProfile)
	router.PUT("/users/profile", handler.UpdateProfile)
}
