// server/internal/database/catalog.go
package database

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dc-directory-api-server/config"
	"dc-directory-api-server/internal/models"
	"dc-directory-api-server/internal/store"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	SourceFile  = "file"
	SourceMongo = "mongo"
	SourceNone  = "none"
)

// seedFile is the layout of the YAML catalog.
type seedFile struct {
	DataCenters []models.DataCenter `yaml:"datacenters"`
}

// LoadFile reads a YAML catalog.
func LoadFile(path string) ([]models.DataCenter, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return f.DataCenters, nil
}

// Seed fills s with the configured initial catalog. The store stays empty when
// the source is "none" or the seed file does not exist.
func Seed(ctx context.Context, cfg config.Config, s *store.Store, log zerolog.Logger) error {
	var (
		records []models.DataCenter
		err     error
	)

	switch cfg.Catalog.Source {
	case SourceNone, "":
		log.Info().Msg("catalog seeding disabled, starting with an empty directory")
		return nil
	case SourceFile:
		records, err = LoadFile(cfg.Catalog.SeedFile)
		if errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("file", cfg.Catalog.SeedFile).Msg("seed file not found, starting with an empty directory")
			return nil
		}
	case SourceMongo:
		records, err = loadMongo(ctx, cfg.Mongo)
	default:
		return fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
	if err != nil {
		return err
	}

	if err := s.ReplaceAll(records); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	log.Info().Str("source", cfg.Catalog.Source).Int("records", len(records)).Msg("catalog seeded")
	return nil
}

func loadMongo(ctx context.Context, cfg config.MongoConfig) ([]models.DataCenter, error) {
	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	return LoadCollection(ctx, client.Database(cfg.DBName).Collection(cfg.Collection))
}
