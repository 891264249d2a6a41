package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"chargestation/internal/shared/auth"
	"chargestation/internal/shared/config"
	db_conn "chargestation/internal/shared/db"
	"chargestation/internal/shared/logger"
	"chargestation/internal/shared/user"
	"chargestation/internal/vehicle/adapters/in/transport"
	"chargestation/internal/vehicle/adapters/out/repo"
	"chargestation/internal/vehicle/application/usecase"
)

// Run starts the vehicle service and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log *logger.Logger) {
	log.Info(logger.Entry{Action: "vehicle_service_starting", Message: "initializing vehicle service"})

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

	userRepo := user.NewPgRepository(dbPool)
	vehicleRepo := repo.NewVehiclePgRepository(dbPool)

	listVehiclesUC := usecase.NewListVehiclesService(vehicleRepo, log)
	getVehicleUC := usecase.NewGetVehicleService(vehicleRepo, log)
	addVehicleUC := usecase.NewAddVehicleService(vehicleRepo, userRepo, log)
	updateVehicleUC := usecase.NewUpdateVehicleService(vehicleRepo, log)
	deleteVehicleUC := usecase.NewDeleteVehicleService(vehicleRepo, log)

	httpHandler := transport.NewHTTPHandler(
		listVehiclesUC,
		getVehicleUC,
		addVehicleUC,
		updateVehicleUC,
		deleteVehicleUC,
		log,
	)

	mux := http.NewServeMux()

	authn := transport.Authenticate(jwtService, log)
	authz := transport.RequireRoles(log, user.RoleDriver, user.RoleAdmin)

	httpHandler.RegisterRoutes(mux, authn, authz)

	addr := fmt.Sprintf(":%d", cfg.Services.VehicleServicePort)
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
	log.Info(logger.Entry{Action: "vehicle_service_stopping", Message: "shutting down vehicle service"})

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

	log.Info(logger.Entry{Action: "vehicle_service_stopped", Message: "vehicle service stopped"})
}
