package main

import (
	"github.com/benbeisheim/chessington-backend/internal/config"
	"github.com/benbeisheim/chessington-backend/internal/server"
	"github.com/benbeisheim/chessington-backend/internal/service"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	app := server.New(cfg, gameService)
	log.Infof("listening on %s", cfg.Addr)
	log.Fatal(app.Listen(cfg.Addr))
}
