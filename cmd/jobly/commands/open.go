// Package commands implements the jobly CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	go_jobly "github.com/PayRam/go-jobly"
	"github.com/PayRam/go-jobly/internal/config"
	"github.com/PayRam/go-jobly/internal/db"
	"gorm.io/gorm"
)

// openDatabase loads the configuration and opens the migrated database
func openDatabase() (*gorm.DB, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	database, err := db.InitDB(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return database, cfg, nil
}

// openService connects without migrating; NewJoblyService runs the migrations.
func openService() (*go_jobly.JoblyService, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	database, err := db.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	return go_jobly.NewJoblyService(database, go_jobly.WithBcryptCost(cfg.Auth.BcryptCost)), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
