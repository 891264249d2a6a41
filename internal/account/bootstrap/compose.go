package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"chargestation/internal/account/adapters/in/transport"
	"chargestation/internal/account/adapters/out/repo"
	"chargestation/internal/account/application/usecase"
	"chargestation/internal/shared/auth"
	"chargestation/internal/shared/config"
	db_conn "chargestation/internal/shared/db"
	"chargestation/internal/shared/logger"
)

// Run starts the auth service and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) {
	log.Info(logger.Entry{Action: "auth_service_starting", Message: "initializing auth service"})

	dbPool, err := db_conn.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal(logger.Entry{
			Action:  "db_connection_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}
	defer db_conn.Close(dbPool, log)

	if err := db_conn.Migrate(ctx, dbPool); err != nil {
		log.Fatal(logger.Entry{
			Action:  "db_migration_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	userRepo := repo.NewUserPgRepository(dbPool)

	registerUC := usecase.NewRegisterService(userRepo, log)
	loginUC := usecase.NewLoginService(userRepo, jwtService, log)

	httpHandler := transport.NewHTTPHandler(registerUC, loginUC, log)

	mux := http.NewServeMux()
	httpHandler.RegisterRoutes(mux)

	addr := fmt.Sprintf(":%d", cfg.Services.AuthServicePort)
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info(logger.Entry{
			Action:  "http_server_starting",
			Message: fmt.Sprintf("listening on %s", addr),
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(logger.Entry{
				Action:  "http_server_failed",
				Message: err.Error(),
				Error:   &logger.ErrObj{Msg: err.Error()},
			})
		}
	}()

	<-ctx.Done()
	log.Info(logger.Entry{Action: "auth_service_stopping", Message: "shutting down auth service"})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(logger.Entry{
			Action:  "http_server_shutdown_failed",
			Message: err.Error(),
			Error:   &logger.ErrObj{Msg: err.Error()},
		})
	} else {
		log.Info(logger.Entry{Action: "http_server_stopped", Message: "http server stopped gracefully"})
	}

	log.Info(logger.Entry{Action: "auth_service_stopped", Message: "auth service stopped"})
}
