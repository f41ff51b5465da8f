package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/depositodopitty/pit/internal/config"
	"github.com/depositodopitty/pit/internal/logger"
	"github.com/depositodopitty/pit/internal/models"
)

// Options controls how the database is opened and prepared.
type Options struct {
	DSN        string
	Debug      bool
	Seed       bool
	Migrations bool // run SQL migrations instead of AutoMigrate (postgres only)
	Retries    int
	RetryDelay time.Duration

	AdminEmail    string
	AdminPassword string

	Log zerolog.Logger
}

// OptionsFromConfig maps the DB related settings of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		DSN:           cfg.DatabaseDSN,
		Debug:         cfg.DBDebug,
		Seed:          cfg.DBSeed,
		Migrations:    cfg.Migrations,
		Retries:       10,
		RetryDelay:    2 * time.Second,
		AdminEmail:    cfg.SeedAdminEmail,
		AdminPassword: cfg.SeedAdminPassword,
		Log:           logger.WithComponent("db"),
	}
}

// Connect opens the database named by opts.DSN, retrying while it comes up.
func Connect(opts Options) (*gorm.DB, error) {
	dsn := NormalizeDSN(opts.DSN)
	if dsn == "" {
		return nil, errors.New("DATABASE_DSN is empty, check the environment configuration")
	}
	var dialector gorm.Dialector
	switch Dialect(dsn) {
	case DialectPostgres:
		dialector = postgres.Open(dsn)
	case DialectSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DSN %q", MaskDSN(dsn))
	}
	logLevel := gormlogger.Silent
	if opts.Debug {
		logLevel = gormlogger.Info
	}
	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel), TranslateError: true}

	retries := max(opts.Retries, 1)
	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < retries; i++ {
		db, err = gorm.Open(dialector, cfg)
		if err == nil {
			break
		}
		opts.Log.Warn().Err(err).Int("attempt", i+1).Msg("retrying DB connection")
		time.Sleep(opts.RetryDelay)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	opts.Log.Info().Str("dsn", MaskDSN(dsn)).Str("dialect", db.Dialector.Name()).Msg("database connected")
	return db, nil
}

// ConnectAndMigrate connects, brings the schema up to date and seeds when asked.
func ConnectAndMigrate(opts Options) (*gorm.DB, error) {
	db, err := Connect(opts)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db, opts); err != nil {
		return nil, err
	}
	if opts.Seed {
		if err := Seed(db, opts); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return db, nil
}

// Migrate runs the embedded SQL migrations when requested on postgres, and
// AutoMigrate otherwise.
func Migrate(db *gorm.DB, opts Options) error {
	dsn := NormalizeDSN(opts.DSN)
	if opts.Migrations && Dialect(dsn) == DialectPostgres {
		if err := runSQLMigrations(ToURLDSN(dsn)); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		if opts.Migrations {
			opts.Log.Warn().Msg("SQL migrations target postgres; using AutoMigrate for this database")
		}
		for _, m := range models.All() {
			if err := db.AutoMigrate(m); err != nil {
				return fmt.Errorf("automigrate %T: %w", m, err)
			}
		}
	}
	for _, table := range []string{"users", "customers", "suppliers", "products", "budgets", "budget_items", "accounts_payables", "accounts_receivables"} {
		if !db.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}
