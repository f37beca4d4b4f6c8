package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/agendabarber/booking-api/internal/config"
	dbpkg "github.com/agendabarber/booking-api/internal/db"
	"github.com/agendabarber/booking-api/internal/routes"
	"github.com/agendabarber/booking-api/internal/timezone"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	cfg := config.Load()
	timezone.SetShop(cfg.ShopTimezone)

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
