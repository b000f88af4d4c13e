package server

import (
	"net/http"
	"time"

	httpHandler "token-tool/interfaces/http"
	"token-tool/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	tokenHandler httpHandler.ITokenHandler,
	vaultHandler httpHandler.IVaultHandler,
	facebookAuthHandler httpHandler.IFacebookAuthHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "http://localhost:3000", "https://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// OAuth login dialog routes (optional way to obtain a short-lived token)
	if facebookAuthHandler != nil {
		router.GET("/auth/facebook", facebookAuthHandler.GetAuthURL)
		router.GET("/auth/facebook/callback", facebookAuthHandler.Callback)
	}

	api := router.Group("api")

	token := api.Group("/token")
	{
		token.POST("/exchange", tokenHandler.Exchange)
		token.POST("/pages", tokenHandler.Pages)
		token.POST("/inspect", tokenHandler.Inspect)
		token.POST("/ping", tokenHandler.Ping)
	}

	vault := api.Group("/vault")
	{
		vault.GET("", vaultHandler.List)
		vault.POST("", vaultHandler.Add)
		vault.POST("/pages", vaultHandler.AddPages)
		vault.DELETE("", vaultHandler.Clear)
		vault.GET("/export", vaultHandler.Export)
		vault.POST("/import", vaultHandler.Import)
		vault.POST("/selection", vaultHandler.Selection)
		vault.POST("/export-selected", vaultHandler.ExportSelected)
	}

	return router
}
