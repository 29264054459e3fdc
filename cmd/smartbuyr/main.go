package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/smartbuyr/storefront/internal/cart"
	"github.com/smartbuyr/storefront/internal/config"
	"github.com/smartbuyr/storefront/internal/product"
	"github.com/smartbuyr/storefront/internal/rest"
	"github.com/smartbuyr/storefront/internal/ui"
	"github.com/smartbuyr/storefront/internal/user"
	"github.com/smartbuyr/storefront/internal/wishlist"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	if err := os.MkdirAll(cfg.StateDir, 0o700); err != nil {
		fmt.Fprintln(os.Stderr, "could not create state directory:", err)
		os.Exit(1)
	}

	// the terminal belongs to the UI, so logs go to a file in the state dir
	log, err := fileLogger(filepath.Join(cfg.StateDir, "smartbuyr.log"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not open log file:", err)
		os.Exit(1)
	}
	defer log.Sync()

	api := rest.New(cfg.APIBaseURL, nil, log)
	svc := ui.Services{
		Catalog:  product.NewClient(api),
		Cart:     cart.NewClient(api),
		Wishlist: wishlist.NewClient(api),
		Auth:     user.NewClient(api),
		Sessions: user.NewStore(cfg.StateDir),
	}

	log.Info("starting", zap.String("api", cfg.APIBaseURL))
	p := tea.NewProgram(ui.New(svc, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("ui exited", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func fileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
