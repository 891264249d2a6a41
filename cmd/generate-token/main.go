package main

import (
	"flag"
	"fmt"
	"os"

	"chargestation/internal/shared/auth"
	"chargestation/internal/shared/config"
)

func main() {
	username := flag.String("username", "alice", "username to embed in the token")
	role := flag.String("role", "driver", "role (driver|admin)")
	flag.Parse()

	cfg := config.Load()

	jwtService := auth.NewJWTService(cfg.JWT)

	token, err := jwtService.GenerateToken(*username, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Token generated for %s (%s):\n\n%s\n\n", *username, *role, token)
	fmt.Printf("Example request:\n")
	fmt.Printf("curl http://localhost:%d/vehicles/getall \\\n", cfg.Services.VehicleServicePort)
	fmt.Printf("  -H 'Authorization: Bearer %s'\n", token)
}
