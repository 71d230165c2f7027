package main

import (
	"errors"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/chat-client/v2/assets"
	"github.com/chat-client/v2/core"
	"github.com/chat-client/v2/internal/auth"
	"github.com/chat-client/v2/internal/config"
	"github.com/chat-client/v2/internal/logging"
	"github.com/chat-client/v2/services"
	"github.com/chat-client/v2/ui"
)

// showHomeWindow creates and displays the window that replaces the post-login page.
func showHomeWindow(a fyne.App, path string, store core.Store) {
	slog.Info("Showing home window", "path", path)
	home := ui.NewHomeWindow(a, path, store)
	home.Win.Show()
}

func main() {
	logging.New()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := core.OpenStore(cfg)
	if err != nil {
		slog.Error("Failed to open token store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	apiClient, err := services.NewApiClient(cfg.APIURL, cfg.CSRFCookie, cfg.HTTPTimeout)
	if err != nil {
		slog.Error("Failed to create API client", "error", err)
		os.Exit(1)
	}
	if cfg.CSRFToken != "" {
		apiClient.SetCookie(cfg.CSRFCookie, cfg.CSRFToken)
	}
	authSvc := services.NewAuthService(apiClient, cfg.LoginPath, cfg.RegisterPath)

	myApp := app.New()
	if icon := assets.GetIconResource(); icon != nil {
		myApp.SetIcon(icon)
	} else {
		slog.Warn("Failed to load icon from embedded resources")
	}

	// A stored token skips the login window.
	if _, err := store.GetItem(auth.TokenKey); err == nil {
		slog.Info("Token exists, launching main application.")
		showHomeWindow(myApp, cfg.PostLoginPath, store)
	} else {
		if !errors.Is(err, core.ErrNotFound) {
			slog.Error("Failed to read stored token", "error", err)
		}
		slog.Info("No token stored, launching login window.")

		onRegister := func() {
			ui.NewRegisterWindow(myApp, authSvc, store).Win.Show()
		}
		onNavigate := func(path string) {
			showHomeWindow(myApp, path, store)
		}
		ui.NewLoginWindow(myApp, authSvc, store, cfg.PostLoginPath, onNavigate, onRegister).Win.Show()
	}

	myApp.Run()
	slog.Info("Application has exited.")
}
