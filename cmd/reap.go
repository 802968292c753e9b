package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	repository "digiwork-hub.com/digiwork-hub/internal/repositories"
	"digiwork-hub.com/digiwork-hub/internal/services"
	"digiwork-hub.com/digiwork-hub/internal/storage"
)

var reapCmd = &cobra.Command{
	Use:   "reap",
	Short: "Remove stored files that no record references",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		files, err := storage.NewOsFileStore(cfg.UploadRoot)
		if err != nil {
			return err
		}

		reaper := services.NewReaper(repository.NewStore(db), files, cfg.ReaperGrace)
		removed, err := reaper.Sweep(cmd.Context())
		if err != nil {
			return err
		}

		zap.L().Info("orphan sweep finished", zap.Int("removed", removed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reapCmd)
}
