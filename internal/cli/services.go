package cli

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/client-directory/internal/audit"
	"github.com/BruksfildServices01/client-directory/internal/config"
	dbpkg "github.com/BruksfildServices01/client-directory/internal/db"
	domain "github.com/BruksfildServices01/client-directory/internal/domain/client"
	infraRepo "github.com/BruksfildServices01/client-directory/internal/infra/repository"
	ucClient "github.com/BruksfildServices01/client-directory/internal/usecase/client"
)

// Services holds all initialized services
type Services struct {
	DB        *gorm.DB
	Repo      domain.Repository
	Audit     *audit.Dispatcher
	Directory *ucClient.Directory
}

// initServices opens the configured store and ensures the schema exists.
func (a *app) initServices(ctx context.Context) (*Services, error) {
	logger := slog.Default()
	s := &Services{}

	switch a.cfg.Store {
	case config.StoreMemory:
		s.Repo = infraRepo.NewClientMemoryRepository()
	default:
		db, err := dbpkg.Open(a.cfg, logger)
		if err != nil {
			return nil, err
		}
		s.DB = db
		s.Repo = infraRepo.NewClientGormRepository(db)
	}

	s.Audit = audit.NewDispatcher(audit.New(logger))
	s.Directory = ucClient.NewDirectory(s.Repo, s.Audit)

	if err := s.Directory.InitSchema.Execute(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Close closes all resources
func (s *Services) Close() {
	if s.Audit != nil {
		s.Audit.Close()
	}
	if s.DB != nil {
		if err := dbpkg.Close(s.DB); err != nil {
			slog.Warn("failed to close database", "error", err)
		}
	}
}
