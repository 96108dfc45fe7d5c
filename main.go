package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rabbitoyo/catalog-admin-ui/audit"
	"github.com/rabbitoyo/catalog-admin-ui/backend"
	"github.com/rabbitoyo/catalog-admin-ui/config"
	"github.com/rabbitoyo/catalog-admin-ui/console"
	"github.com/rabbitoyo/catalog-admin-ui/handlers"
	"github.com/rabbitoyo/catalog-admin-ui/middleware"
	"github.com/rabbitoyo/catalog-admin-ui/session"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	// Prioritize loading environment variables from /etc/catalog-admin-ui/.env, then fall back to the project root directory
	if err := godotenv.Load("/etc/catalog-admin-ui/.env"); err != nil {
		if err2 := godotenv.Load(); err2 != nil {
			log.Println("No .env found in /etc/catalog-admin-ui or project root; using defaults.")
		} else {
			log.Println("Loaded .env from project root.")
		}
	} else {
		log.Println("Loaded .env from /etc/catalog-admin-ui/.env")
	}
	cfg := config.LoadConfig()

	// Audit trail is optional; the console works without a database
	if cfg.AuditDBHost != "" {
		if err := audit.Init(cfg); err != nil {
			fmt.Printf("failed to init audit database: %v\n", err)
			os.Exit(1)
		}
	}

	authClient := backend.NewAuthClient(cfg.BackendURL)
	adminClient := backend.NewAdminClient(cfg.BackendURL, cfg.BackendPath)
	app := console.New(authClient, adminClient)
	sessions := session.New(cfg.CookieSecret, cfg.CookieName)

	authHandler := handlers.NewAuthHandler(app, sessions)
	productHandler := handlers.NewProductHandler(app)
	modalHandler := handlers.NewModalHandler(app)

	r := gin.Default()

	// Load HTML templates for /login and /
	r.LoadHTMLGlob("templates/*")

	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/logout", authHandler.Logout)
		auth.GET("/check", authHandler.Check)
	}

	// Pages
	r.GET("/login", middleware.RedirectIfAuthenticated(sessions), handlers.LoginPage)
	r.GET("/", middleware.AuthPageRequired(sessions), handlers.IndexPage)

	api := r.Group("/api/v1", middleware.AuthRequired(sessions))
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.PATCH("/:id/enabled", productHandler.ToggleEnabled)
		}
		modal := api.Group("/modal")
		{
			modal.GET("", modalHandler.Get)
			modal.POST("/open", modalHandler.Open)
			modal.POST("/close", modalHandler.Close)
			modal.POST("/field", modalHandler.SetField)
			modal.POST("/images", modalHandler.AddImage)
			modal.DELETE("/images/:index", modalHandler.RemoveImage)
			modal.POST("/save", modalHandler.Save)
			modal.POST("/delete", modalHandler.Delete)
		}
	}

	// Allow specifying the listening address via UI_ADDR (e.g., 0.0.0.0:9999); otherwise fall back to UI_PORT managed by config
	addr := cfg.UIAddr + ":" + cfg.UIPort
	r.Run(addr)
}
