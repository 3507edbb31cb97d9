package main

import (
	"context"
	"database/sql"
	"expvar"
	"flag"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/leebrouse/cinelist/internal/data"
	"github.com/leebrouse/cinelist/internal/jsonlog"
)

const version = "1.0.0"

type config struct {
	port int
	env  string
	seed string
	db   struct {
		dsn          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  string
	}
	limiter struct {
		rps    float64
		burst  int
		enable bool
	}
	cors struct {
		trustedOrigins []string
	}
}

type application struct {
	config config
	logger *jsonlog.Logger
	models data.Models
}

func main() {
	// a .env file may carry CINELIST_DB_DSN, same as exporting it
	_ = godotenv.Load()

	var cfg config

	flag.IntVar(&cfg.port, "port", 4000, "API server port")
	flag.StringVar(&cfg.env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&cfg.seed, "seed", "", "Path to JSON seed file (empty = built-in seed)")

	flag.StringVar(&cfg.db.dsn, "db-dsn", os.Getenv("CINELIST_DB_DSN"), "PostgreSQL DSN (empty = in-memory store)")
	flag.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.IntVar(&cfg.db.maxIdleConns, "db-max-idle-conns", 25, "PostgreSQL max idle connections")
	flag.StringVar(&cfg.db.maxIdleTime, "db-max-idle-time", "15m", "PostgreSQL max connection idle time")

	flag.Float64Var(&cfg.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.limiter.enable, "limiter-enabled", true, "Enable rate limiter")

	flag.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		cfg.cors.trustedOrigins = strings.Fields(val)
		return nil
	})

	flag.Parse()

	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	var db *sql.DB
	if cfg.db.dsn != "" {
		var err error
		db, err = openDB(cfg)
		if err != nil {
			logger.PrintFatal(err, nil)
		}
		defer db.Close()
		logger.PrintInfo("database connection pool established", nil)
	}

	seed := data.DefaultSeed()
	if cfg.seed != "" {
		var err error
		seed, err = data.LoadSeedFile(cfg.seed)
		if err != nil {
			logger.PrintFatal(err, nil)
		}
	}

	models := data.NewModels(db)

	// the store must be loaded before the server takes a single request
	if err := models.Movies.Load(seed); err != nil {
		logger.PrintFatal(err, map[string]string{
			"seed": cfg.seed,
		})
	}
	logger.PrintInfo("movie store loaded", map[string]string{
		"movies": strconv.Itoa(len(seed)),
	})

	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	if db != nil {
		expvar.Publish("database", expvar.Func(func() any {
			return db.Stats()
		}))
	}
	expvar.Publish("timestamp", expvar.Func(func() any {
		return time.Now().Unix()
	}))

	app := &application{
		config: cfg,
		logger: logger,
		models: models,
	}

	if err := app.serve(); err != nil {
		logger.PrintFatal(err, nil)
	}
}

func openDB(cfg config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.db.maxOpenConns)
	db.SetMaxIdleConns(cfg.db.maxIdleConns)

	duration, err := time.ParseDuration(cfg.db.maxIdleTime)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxIdleTime(duration)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
