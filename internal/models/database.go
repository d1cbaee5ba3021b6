package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/finsight/backend/internal/config"
	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type FSContext string

const (
	DBContextURL FSContext = "finsight-backend-url"
)

// Dialector returns the gorm dialector for the configured database.
//
// If a database host is configured, postgresql is used. Otherwise,
// the sqlite database file in the data directory is used.
func Dialector(cfg config.DatabaseConfig) gorm.Dialector {
	if cfg.Host != "" {
		log.Debug().Str("host", cfg.Host).Msg("using postgresql")
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
		return postgres.Open(dsn)
	}

	log.Debug().Str("path", cfg.SQLitePath).Msg("using sqlite")
	return SQLite(cfg.SQLitePath)
}

// SQLite returns a dialector for the sqlite database at path with
// foreign keys enabled.
func SQLite(path string) gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path))
}

// Connect opens the database, configures the connection pool, registers
// the error translation callbacks and migrates the schema.
func Connect(dialector gorm.Dialector, pool config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: &logger{
			Logger:        log.Logger,
			SlowThreshold: 200 * time.Millisecond,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	// sqlite only supports one writer. Serializing all access prevents
	// SQLITE_BUSY errors.
	if dialector.Name() == "sqlite" {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}

	if err := registerCallbacks(db); err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "finsight:after_query", queryCallback},
		{db.Callback().Query().After("*"), "finsight:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "finsight:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "finsight:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "finsight:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "finsight:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "finsight:after_delete", deleteCallback},
		{db.Callback().Delete().After("*"), "finsight:after_delete_general", generalCallback},
		{db.Callback().Raw().After("*"), "finsight:after_raw_general", generalCallback},
		{db.Callback().Row().After("*"), "finsight:after_row_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return fmt.Errorf("could not register callback %s: %w", c.name, err)
		}
	}

	return nil
}

var plural = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = plural.ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// uniqueConstraints maps unique indexes to the errors returned when they are violated.
//
// sqlite reports the columns, postgresql reports the index name.
var uniqueConstraints = []struct {
	sqlite   string
	postgres string
	err      error
}{
	{"budget_allocations.budget_id, budget_allocations.category_id, budget_allocations.wallet_id", "idx_allocation_tuple", ErrAllocationNotUnique},
	{"users.email", "idx_user_email", ErrUserEmailNotUnique},
	{"wallets.owner_id, wallets.name", "idx_wallet_owner_name", ErrWalletNameNotUnique},
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	for _, c := range uniqueConstraints {
		if strings.Contains(msg, "UNIQUE constraint failed: "+c.sqlite) || strings.Contains(msg, fmt.Sprintf("unique constraint \"%s\"", c.postgres)) {
			db.Error = c.err
			return
		}
	}

	if isForeignKeyError(msg) {
		db.Error = ErrReferenceNotFound
	}
}

// deleteCallback replaces foreign key violations on deletion
// with a user friendly error
func deleteCallback(db *gorm.DB) {
	if db.Error != nil && isForeignKeyError(db.Error.Error()) {
		db.Error = ErrResourceInUse
	}
}

func isForeignKeyError(msg string) bool {
	return strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "violates foreign key constraint")
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// Migrate migrates all models to the schema defined in the code and
// creates the default categories.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(User{}, Wallet{}, Category{}, Expense{}, Income{}, MatchRule{}, Budget{}, Allocation{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	if err := seedDefaultCategories(db); err != nil {
		return fmt.Errorf("error creating default categories: %w", err)
	}

	return nil
}
