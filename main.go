package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sijawara/korin-finance-sub000/docs"
)

// store is the ledger store shared by all handlers. Tests swap in a fake.
var store LedgerStore

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// @title Korin Finance Reporting API
// @version 1.0
// @description Financial reporting and analytics engine over a transaction ledger: income statements, spending trends, category breakdowns, receivable/payable aging and a composite financial health score.
// @BasePath /
func main() {
	// Database connection with defaults
	dbHost := getEnvOrDefault("DB_HOST", "localhost")
	dbPort := getEnvOrDefault("DB_PORT", "5432")
	dbUser := getEnvOrDefault("DB_USER", "postgres")
	dbPassword := getEnvOrDefault("DB_PASSWORD", "password")
	dbName := getEnvOrDefault("DB_NAME", "korinfinance")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	// Connect to database with retry logic
	maxRetries := 30
	retryInterval := time.Second * 2

	var db *sql.DB
	var err error
	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", connStr)
		if err != nil {
			log.Printf("Attempt %d: Error opening database: %v", i+1, err)
			time.Sleep(retryInterval)
			continue
		}

		// Test database connection
		if err = db.Ping(); err != nil {
			log.Printf("Attempt %d: Error connecting to database: %v", i+1, err)
			db.Close()
			time.Sleep(retryInterval)
			continue
		}

		log.Println("Successfully connected to database")
		break
	}

	if err != nil {
		log.Fatal("Failed to connect to database after retries: ", err)
	}

	// Run database migrations
	migrationsPath := filepath.Join(".", "db", "migrations")

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping migrations", migrationsPath)
	} else {
		log.Println("Running database migrations...")
		if err := runMigrations(db, migrationsPath); err != nil {
			log.Fatal("Error running migrations: ", err)
		}

		// Display current migration version
		if version, dirty, err := getMigrationVersion(db, migrationsPath); err == nil {
			if dirty {
				log.Printf("Current migration version: %d (DIRTY - migration failed)", version)
			} else {
				log.Printf("Current migration version: %d", version)
			}
		}
		log.Println("Database migrations completed successfully")
	}
	db.Close()

	// Open the pgx pool used by the handlers
	poolConnStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName)

	pool, err := pgxpool.New(context.Background(), poolConnStr)
	if err != nil {
		log.Fatal("Failed to create connection pool: ", err)
	}
	defer pool.Close()

	store = newPgLedgerStore(pool)

	r := setupRouter()

	port := getEnvOrDefault("PORT", "8080")
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server error: ", err)
	}
}

// setupRouter registers middleware and routes.
func setupRouter() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "X-Owner-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Ledger routes
	r.GET("/api/transactions", getTransactions)
	r.POST("/api/transactions", createTransaction)
	r.PUT("/api/transactions/:id/status", updateTransactionStatus)
	r.DELETE("/api/transactions/:id", deleteTransaction)
	r.GET("/api/categories", getCategories)
	r.POST("/api/categories", createCategory)

	// Report routes
	r.GET("/api/reports/overview", getOverviewReport)
	r.GET("/api/reports/income-statement", getIncomeStatementReport)
	r.GET("/api/reports/spending-trends", getSpendingTrendsReport)
	r.GET("/api/reports/categories", getCategoriesReport)
	r.GET("/api/reports/accounts", getAccountsReport)

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
