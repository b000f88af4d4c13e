package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	facebookclient "token-tool/infrastructure/clients/facebook"
	"token-tool/infrastructure/configuration"
	"token-tool/infrastructure/logger"
	"token-tool/infrastructure/persistence"
	httpHandler "token-tool/interfaces/http"
	"token-tool/server"
	"token-tool/usecase"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	for _, envFile := range []string{"config.env", ".env"} {
		if err := godotenv.Load(envFile); err == nil {
			logger.GetLogger().WithField("file", envFile).Info("Loaded env file")
		}
	}
	configuration.Reload()

	app := configuration.C.App

	vaultRepository := persistence.NewVaultRepository(configuration.C.Vault.Path)
	logger.GetLogger().WithFields(map[string]interface{}{
		"path":    configuration.C.Vault.Path,
		"records": vaultRepository.Len(),
	}).Info("Token vault loaded")

	graphClient := facebookclient.NewGraphClient(configuration.C.Graph.Version)

	tokenUsecase := usecase.NewTokenUsecase(graphClient, configuration.C.Display.Timezone)
	vaultUsecase := usecase.NewVaultUsecase(vaultRepository)

	tokenHandler := httpHandler.NewTokenHandler(tokenUsecase)
	vaultHandler := httpHandler.NewVaultHandler(vaultUsecase)

	var facebookAuthHandler httpHandler.IFacebookAuthHandler
	if configuration.C.OAuth.Facebook.AppID != "" && configuration.C.OAuth.Facebook.RedirectURI != "" {
		facebookAuthHandler = httpHandler.NewFacebookAuthHandler()
	} else {
		logger.GetLogger().Info("Facebook OAuth dialog not configured; short-lived tokens must be pasted manually")
	}

	router := server.InitiateRouter(tokenHandler, vaultHandler, facebookAuthHandler)

	port := app.Port
	logger.GetLogger().WithFields(map[string]interface{}{"port": port, "tls": app.TLSEnabled}).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if app.TLSEnabled {
			cert := app.TLSCertFile
			key := app.TLSKeyFile
			if cert == "" || key == "" {
				logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
				if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
			logger.GetLogger().WithFields(map[string]interface{}{"cert": cert, "key": key}).Info("Serving HTTPS")
			if err := httpServer.ListenAndServeTLS(cert, key); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
