package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sofiahutsulo/finance-server/pkg/finance"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)

func main() {
	// Load ./.env if present before reading vars; existing env wins.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	jwtSecret = []byte(secret)

	// Amounts go over the wire as JSON numbers, matching the mobile client.
	decimal.MarshalJSONWithoutQuotes = true

	// Support a lightweight migrate command: `./finance-server migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		fmt.Println("migration and seeding completed")
		return
	}

	initDB()

	changeFeed.Subscribe(func(snap finance.Snapshot) {
		slog.Debug("data changed",
			"transactions", len(snap.Transactions),
			"budgets", len(snap.Budgets))
	})

	r := gin.Default()
	r.Use(requestIDMiddleware())

	setupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
