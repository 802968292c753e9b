package cmd

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	config "digiwork-hub.com/digiwork-hub/internal/configs"
)

// bootstrap loads the configuration, installs the global logger and opens
// the migrated database. The returned function flushes the logger.
func bootstrap() (*config.Config, *gorm.DB, func(), error) {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return nil, nil, func() {}, err
	}
	undo := zap.ReplaceGlobals(logger)
	cleanup := func() {
		_ = logger.Sync()
		undo()
	}

	db, err := config.NewDatabase(cfg)
	if err != nil {
		cleanup()
		return nil, nil, func() {}, err
	}
	if err := config.Migrate(db); err != nil {
		cleanup()
		return nil, nil, func() {}, err
	}

	return cfg, db, cleanup, nil
}
