package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"route-cost-service/internal/adapters/cache"
	"route-cost-service/internal/adapters/matrix"
	"route-cost-service/internal/adapters/model"
	"route-cost-service/internal/adapters/repositories"
	"route-cost-service/internal/api"
	"route-cost-service/internal/catalog"
	"route-cost-service/internal/config"
	"route-cost-service/internal/platform/db"
	"route-cost-service/internal/ports"
	"route-cost-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Redis, Postgres, the matrix provider) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	dataDir := config.Get("DATA_DIR", "data")
	reserveDir := config.Get("RESERVE_DIR", "data/reserve")

	matrixKey := os.Getenv("MATRIX_API_KEY")
	if strings.TrimSpace(matrixKey) == "" {
		log.Fatal("MATRIX_API_KEY is required")
	}
	matrixURL := config.Get("MATRIX_BASE_URL", "https://maps.googleapis.com/maps/api/distancematrix/json")

	depots, vehicles, err := loadCatalogs(dataDir, reserveDir)
	if err != nil {
		log.Fatal(err)
	}

	provider, err := matrix.NewProvider(matrixKey, matrixURL)
	if err != nil {
		log.Fatal(err)
	}

	// Distances persist in Redis; the failover wrapper degrades to an
	// in-process store when Redis keeps rejecting writes.
	redisOpts, err := redis.ParseURL(config.Get("REDIS_URL", "redis://localhost:6379/0"))
	if err != nil {
		log.Fatalf("parse REDIS_URL: %v", err)
	}
	distanceCache := cache.NewFailoverDistanceCache(
		cache.NewRedisDistanceCache(redis.NewClient(redisOpts)),
		cache.DefaultFailureThreshold,
	)

	auditLog, closeDB := openQueryLog(os.Getenv("DATABASE_URL"))
	defer closeDB()

	estimator, err := buildEstimator()
	if err != nil {
		log.Fatal(err)
	}

	resolver := services.NewResolver(distanceCache, provider)
	locator := services.NewLocator(depots, resolver)
	calculator := services.NewCalculator(locator, resolver, estimator)
	recorder := services.NewSampleRecorder(auditLog)

	router := api.NewRouter(calculator, recorder, vehicles, auditLog)

	// Timeouts are tuned for cold-cache calculations (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// loadCatalogs restores missing data files from their shipped reserves and
// loads the static state, depot and vehicle catalogs.
func loadCatalogs(dataDir, reserveDir string) (*catalog.DepotPark, *catalog.VehiclePark, error) {
	for _, name := range []string{"statepark.json", "depotpark.json", "vehicles.json"} {
		if err := catalog.EnsureFile(dataDir+"/"+name, reserveDir+"/"+name); err != nil {
			return nil, nil, err
		}
	}

	states, err := catalog.LoadStates(dataDir + "/statepark.json")
	if err != nil {
		return nil, nil, err
	}
	depots, err := catalog.LoadDepots(dataDir+"/depotpark.json", states)
	if err != nil {
		return nil, nil, err
	}
	vehicles, err := catalog.LoadVehicles(dataDir + "/vehicles.json")
	if err != nil {
		return nil, nil, err
	}

	return depots, vehicles, nil
}

// openQueryLog connects the audit log to Postgres, or keeps it in process
// memory when no DATABASE_URL is configured (local runs).
func openQueryLog(databaseURL string) (ports.QueryLog, func()) {
	if strings.TrimSpace(databaseURL) == "" {
		log.Println("DATABASE_URL not set, audit log is in-memory only")
		return repositories.NewMemoryQueryLog(), func() {}
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	return repositories.NewPostgresQueryLog(pg), func() { _ = pg.Close() }
}

// buildEstimator selects the pricing strategy: the closed-form formula or
// the trained regressor loaded from its artifact.
func buildEstimator() (services.PriceEstimator, error) {
	switch strategy := config.Get("PRICE_ESTIMATOR", "conventional"); strategy {
	case "conventional":
		return services.ConventionalEstimator{}, nil
	case "learned":
		ff, err := model.Load(config.Get("MODEL_PATH", "data/model.json"))
		if err != nil {
			return nil, err
		}
		return services.LearnedEstimator{Model: ff}, nil
	default:
		log.Fatalf("unknown PRICE_ESTIMATOR %q (want conventional or learned)", strategy)
		return nil, nil
	}
}
