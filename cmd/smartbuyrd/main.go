package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/smartbuyr/storefront/internal/config"
	"github.com/smartbuyr/storefront/internal/stub"
)

// smartbuyrd is the development backend: the full storefront API served from
// memory, seeded with a small catalog.
func main() {
	godotenv.Load()
	cfg := config.Load()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	store := stub.NewStore(stub.SeedProducts())
	app := stub.New(store, cfg.JWTSecret, log)

	log.Info("listening", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
