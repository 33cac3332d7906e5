package service

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/xolan/waterlog/internal/config"
	"github.com/xolan/waterlog/internal/daystore"
)

const (
	// DaysDir holds one JSON file per day for the file medium
	DaysDir = "days"
	// DatabaseFile is the SQLite database used by the sqlite medium
	DatabaseFile = "waterlog.db"
)

// Services holds all service instances used by the application
type Services struct {
	Ledger *LedgerService
	Config *ConfigService
	Log    zerolog.Logger

	// DataDir is where day state is kept
	DataDir string

	closer io.Closer
}

// NewServices creates a new Services instance with default paths. The
// logger's level comes from the config unless debug forces it.
func NewServices(log zerolog.Logger, debug bool) (*Services, error) {
	dataDir, err := config.GetConfigDir()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if debug {
		level = zerolog.DebugLevel
	}

	return NewServicesWithPaths(dataDir, configPath, cfg, log.Level(level))
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(dataDir, configPath string, cfg config.Config, log zerolog.Logger) (*Services, error) {
	medium, closer, err := OpenMedium(cfg.Storage, dataDir)
	if err != nil {
		return nil, err
	}

	store := daystore.New(medium,
		daystore.WithLogger(log.With().Str("component", "daystore").Logger()),
		daystore.WithDefaultUnit(cfg.DefaultUnitIndex()),
	)
	log.Debug().Str("storage", cfg.Storage).Str("dir", dataDir).Msg("day store ready")

	return &Services{
		Ledger:  NewLedgerService(store, cfg),
		Config:  NewConfigService(configPath, cfg),
		Log:     log,
		DataDir: dataDir,
		closer:  closer,
	}, nil
}

// Close releases the storage medium
func (s *Services) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// OpenMedium opens the storage backend named by kind under dataDir. The
// returned closer is nil when the medium holds no resources.
func OpenMedium(kind, dataDir string) (daystore.Medium, io.Closer, error) {
	switch kind {
	case config.StorageFile, "":
		m, err := daystore.NewDirMedium(filepath.Join(dataDir, DaysDir))
		if err != nil {
			return nil, nil, err
		}
		return m, nil, nil
	case config.StorageSQLite:
		m, err := daystore.OpenSQLite(filepath.Join(dataDir, DatabaseFile))
		if err != nil {
			return nil, nil, err
		}
		return m, m, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", kind)
	}
}
