package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func getLogger(level logger.LogLevel) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true, // Don't include params in the SQL log
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB, maxOpen int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

// NewGormDB opens a connection for the given driver. SQLite is limited to a single
// connection so in-memory databases survive and writers never contend.
func NewGormDB(driver, dsn string, isProd bool) (*gorm.DB, error) {
	level := logger.Info
	if isProd {
		level = logger.Warn
	}

	switch driver {
	case DriverPostgres, "":
		return open(postgres.Open(dsn), level, 100)
	case DriverSQLite:
		return open(sqlite.Open(dsn), level, 1)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// NewGormDBFromDSN keeps the postgres-only entry point used by integration tests.
func NewGormDBFromDSN(dsn string) (*gorm.DB, error) {
	return NewGormDB(DriverPostgres, dsn, false)
}

// NewInMemoryDB returns a private SQLite database with foreign keys enabled.
func NewInMemoryDB() (*gorm.DB, error) {
	return open(sqlite.Open("file::memory:?_foreign_keys=on"), logger.Silent, 1)
}

func open(dialector gorm.Dialector, level logger.LogLevel, maxOpen int) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: getLogger(level),
	})
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, maxOpen); err != nil {
		return nil, err
	}

	return db, nil
}
