package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	handler "github.com/fleetops/fleet-dashboard/internal/delivery/http"
	"github.com/fleetops/fleet-dashboard/internal/fleet"
	"github.com/fleetops/fleet-dashboard/internal/logging"
	"github.com/fleetops/fleet-dashboard/internal/sheets"
)

const sheetCSVPattern = "https://docs.google.com/spreadsheets/d/%s/export?format=csv"

func main() {
	// load .env file; env vars may also come from the environment directly
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("no .env file loaded: %s", err)
	}

	logging.InitLogger()
	logger := logging.GetLogger()
	defer logger.RecoverAndLogPanic()

	checkoutURL := feedURL("CHECKOUT_CSV_URL", "CHECKOUT_SHEET_ID", "")
	if checkoutURL == "" {
		log.Fatal("could not get checkout feed environment variables (CHECKOUT_CSV_URL or CHECKOUT_SHEET_ID)")
	}

	maintenanceURL := feedURL("MAINTENANCE_CSV_URL", "MAINTENANCE_SHEET_ID", os.Getenv("MAINTENANCE_SHEET_GID"))
	if maintenanceURL == "" {
		log.Fatal("could not get maintenance feed environment variables (MAINTENANCE_CSV_URL or MAINTENANCE_SHEET_ID)")
	}

	ttl := sheets.DefaultTTL
	if raw := os.Getenv("CACHE_TTL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			log.Fatalf("invalid CACHE_TTL_SECONDS value %q", raw)
		}
		ttl = time.Duration(seconds) * time.Second
	}

	repository := sheets.NewSheetRepository(checkoutURL, maintenanceURL)
	cache := sheets.NewSnapshotCache(repository, ttl)
	service := fleet.NewService(cache)

	router := chi.NewRouter()

	// Simple middleware stack
	router.Use(middleware.Logger)
	router.Use(middleware.Heartbeat("/ping"))
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// The dashboard frontend is served from a different origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Fleet Vehicle Checkout Dashboard"))
	})

	apiRouter := chi.NewRouter()
	handler.NewDashboardHandler(apiRouter, service)
	handler.NewExportHandler(apiRouter, service)
	router.Mount("/api/v1", apiRouter)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("fleet dashboard listening on :%s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("server stopped: %s", err)
	}
}

// feedURL resolves a feed location: an explicit URL wins, otherwise a sheet
// id is expanded to the public CSV export URL, with an optional tab gid.
func feedURL(urlVar, sheetVar, gid string) string {
	if url := os.Getenv(urlVar); url != "" {
		return url
	}
	sheetID := os.Getenv(sheetVar)
	if sheetID == "" {
		return ""
	}
	url := fmt.Sprintf(sheetCSVPattern, sheetID)
	if gid != "" {
		url += "&gid=" + gid
	}
	return url
}
