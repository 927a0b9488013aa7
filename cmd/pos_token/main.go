// Command pos_token issues a signed access token for a POS terminal user so
// cashiers and admins can call the protected endpoints.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/pos_payments/internal/platform/config"
	"github.com/SscSPs/pos_payments/internal/utils"
)

func main() {
	userID := flag.String("user", "", "user id placed in the token subject")
	role := flag.String("role", utils.RoleCashier, "role: cashier or admin")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: pos_token -user <id> [-role cashier|admin] [-ttl 12h]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.GenerateJWT(*userID, *role, cfg.JWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		slog.Error("Failed to generate token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
