package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	JobsDB *pgxpool.Pool

	JobsGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	// Jobs store - use hosted URL if provided
	jobsURL := os.Getenv("JOBS_DB_URL")
	if jobsURL == "" {
		// fallback to local
		jobsURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/nursejobs?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ JOBS_DB_URL not set, using local default")
	}

	var err error
	JobsDB, err = pgxpool.New(context.Background(), jobsURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to jobs database: %v", err)
	}

	if err = JobsDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Jobs database ping failed: %v", err)
	}

	log.Println("✅ Jobs database connected (pgx)")
}

func initGORM() {
	// Quiet logger in production, verbose locally
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var jobsDSN string
	if os.Getenv("JOBS_DB_URL") != "" {
		jobsDSN = os.Getenv("JOBS_DB_URL")
	} else {
		jobsDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=nursejobs port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ JOBS_DB_URL not set, using local GORM default")
	}

	var err error
	JobsGorm, err = gorm.Open(postgres.Open(jobsDSN), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to jobs database with GORM: %v", err)
	}
	if sqlDB, err := JobsGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Jobs database connected (GORM)")
}

func CloseDB() {
	if JobsDB != nil {
		JobsDB.Close()
		log.Println("✅ Jobs database connection closed (pgx)")
	}

	if JobsGorm != nil {
		sqlDB, _ := JobsGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Jobs database connection closed (GORM)")
		}
	}
}

// WithRequestTimeout bounds store queries to the inbound request's lifetime,
// so a client disconnect aborts that request's in-flight facet queries only.
func WithRequestTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
