package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"chargestation/internal/shared/config"
	"chargestation/internal/shared/logger"

	accountboot "chargestation/internal/account/bootstrap"
	vehicleboot "chargestation/internal/vehicle/bootstrap"
)

func main() {
	svc := flag.String("service", "vehicle", "vehicle|auth|all")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	go func() { <-quit; cancel() }()

	switch *svc {
	case "vehicle":
		log := logger.NewLogger("vehicle-service")
		vehicleboot.Run(ctx, cfg, log)

	case "auth":
		log := logger.NewLogger("auth-service")
		accountboot.Run(ctx, cfg, log)

	case "all":
		vehicleLog := logger.NewLogger("vehicle-service")
		authLog := logger.NewLogger("auth-service")

		go vehicleboot.Run(ctx, cfg, vehicleLog)
		go accountboot.Run(ctx, cfg, authLog)

	default:
		log := logger.NewLogger("bootstrap")
		log.Fatal(logger.Entry{Action: "invalid_service", Message: *svc})
	}

	<-ctx.Done()
}
