package service

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/database"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db     *sql.DB
	loader *DataLoaderService
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB, loader *DataLoaderService) *SystemService {
	return &SystemService{
		db:     db,
		loader: loader,
	}
}

// CheckHealth checks the health of the preference database
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// LoadStatus returns the status of the analysis data.
func (s *SystemService) LoadStatus() model.LoadStatus {
	return s.loader.State().Status
}

// CheckVersion returns the application and schema versions.
func (s *SystemService) CheckVersion(ctx context.Context) (model.VersionInfo, error) {
	v, err := database.Version(ctx, s.db)
	if err != nil {
		return model.VersionInfo{}, err
	}
	return model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  strconv.FormatInt(v, 10),
		DataFile:   s.loader.Source(),
	}, nil
}
