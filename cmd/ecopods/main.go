package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sproutworks/ecopods/internal/api"
	"github.com/sproutworks/ecopods/internal/cli"
	"github.com/sproutworks/ecopods/internal/db"
)

const secretKeyPlaceholder = "change_me_in_production"

func main() {
	hashPIN := flag.Bool("hash-pin", false, "prompt for an admin PIN and print its bcrypt hash")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	if *hashPIN {
		if err := cli.RunHashPINCommand(os.Stdin, os.Stdout); err != nil {
			log.Fatalf("hash-pin failed: %v", err)
		}
		return
	}

	secretKey, err := resolveSecretKey(os.Getenv("SECRET_KEY"))
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "ecopods.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"
	adminPINHash := os.Getenv("ADMIN_PIN_HASH")
	paymentDelay := resolvePaymentDelay(os.Getenv("PAYMENT_DELAY_MS"))

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler, err := api.NewHandler(database, secretKey, adminPINHash, cookieSecure, paymentDelay)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "EcoPods",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure)))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("EcoPods listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// resolveSecretKey rejects keys that would make session cookies forgeable:
// unset values, the .env placeholder, and anything shorter than 32 bytes.
func resolveSecretKey(value string) (string, error) {
	switch {
	case value == "":
		return "", errors.New("SECRET_KEY is not set")
	case value == secretKeyPlaceholder:
		return "", errors.New("SECRET_KEY still holds the placeholder value")
	case len(value) < 32:
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return value, nil
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "header:X-Csrf-Token",
		CookieName:     "ecopods_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}

// resolvePaymentDelay reads PAYMENT_DELAY_MS. An empty or invalid value
// falls back to the payment service default; zero disables the delay.
func resolvePaymentDelay(value string) time.Duration {
	if value == "" {
		return -1
	}
	ms, err := strconv.Atoi(value)
	if err != nil || ms < 0 {
		log.Printf("invalid PAYMENT_DELAY_MS %q, using default", value)
		return -1
	}
	return time.Duration(ms) * time.Millisecond
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
