package main

import (
	"database/sql"
	"fmt"
	"formbuilder/config"
	"log"
	"os"

	_ "github.com/lib/pq"
)

// Applies migrations/<n>.sql in order against the configured postgres
// database, starting after the stored version.
func main() {
	db, err := sql.Open("postgres", config.PostgresDSN(config.Env())+" search_path=formbuilder")
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	version, err := getMigrationVersion(db)
	if err != nil {
		log.Fatal(err)
	}

	for {
		version++
		err = migrateUp(db, version)
		if err != nil {
			break
		}
	}
}

func migrateUp(db *sql.DB, version int) error {
	file, err := os.ReadFile(fmt.Sprintf("migrations/%d.sql", version))
	if err != nil {
		log.Println("Cannot migrate further up")
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(string(file)); err != nil {
		log.Printf("error executing migration %d: %v", version, err)
		tx.Rollback()
		return err
	}
	if _, err = tx.Exec("UPDATE migrations SET version = $1", version); err != nil {
		log.Printf("error updating migration version: %v", err)
		tx.Rollback()
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	log.Printf("Migrated to version %d", version)
	return nil
}

func getMigrationVersion(db *sql.DB) (version int, err error) {
	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS formbuilder;"); err != nil {
		return 0, err
	}
	err = db.QueryRow("SELECT version FROM migrations").Scan(&version)
	if err != nil {
		err := generateMigrationTable(db)
		if err != nil {
			return 0, err
		}
		return 0, nil
	}
	return version, nil
}

func generateMigrationTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INT PRIMARY KEY
		);
		INSERT INTO migrations (version) VALUES (0);
	`)
	return err
}
