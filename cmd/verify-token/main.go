package main

import (
	"flag"
	"fmt"
	"os"

	"chargestation/internal/shared/auth"
	"chargestation/internal/shared/config"
)

func main() {
	token := flag.String("token", "", "token to verify")
	flag.Parse()

	if *token == "" {
		fmt.Fprintln(os.Stderr, "Error: -token flag is required")
		fmt.Fprintln(os.Stderr, "Usage: go run cmd/verify-token/main.go -token=<TOKEN>")
		os.Exit(1)
	}

	cfg := config.Load()
	jwtService := auth.NewJWTService(cfg.JWT)

	claims, err := jwtService.ValidateToken(*token)
	if err != nil {
		fmt.Printf("Token validation FAILED: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Token is valid.\n\n")
	fmt.Printf("Claims:\n")
	fmt.Printf("  Username: %s\n", claims.Username)
	fmt.Printf("  Role:     %s\n", claims.Role)
	fmt.Printf("  Issuer:   %s\n", claims.Issuer)
	fmt.Printf("  Issued At:  %s\n", claims.IssuedAt.Time)
	fmt.Printf("  Expires At: %s\n", claims.ExpiresAt.Time)
}
