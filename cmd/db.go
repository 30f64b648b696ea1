package cmd

import (
	"database/sql"
	"fmt"

	// database/sql driver for the bootstrap connection.
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CreateDbIfNotExists connects to the maintenance database and creates the
// application database when it is missing. CREATE DATABASE cannot run inside
// a transaction, so this uses a plain database/sql connection rather than GORM.
func CreateDbIfNotExists(config Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open maintenance connection: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", config.DBName).
		Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database existence: %w", err)
	}

	if !exists {
		// Identifiers cannot be bound; the name comes from deployment
		// configuration, not user input.
		if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", config.DBName)); err != nil {
			return fmt.Errorf("create database %s: %w", config.DBName, err)
		}
	}

	return nil
}

// MustConnectDb opens the GORM connection pool to the application database.
func MustConnectDb(config Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database %s: %w", config.DBName, err)
	}

	return db, nil
}
