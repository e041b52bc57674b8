package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lohum/schemetrack/internal/infrastructure/cache"
	"github.com/lohum/schemetrack/internal/infrastructure/monitoring/logging"
	"github.com/lohum/schemetrack/internal/infrastructure/sheets"
)

func newSyncCmd(opts *rootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the feed file from the source worksheet",
		Long:  "Fetches the dashboard worksheet, normalizes the records and atomically\nrewrites the feed file. Requires sheet credentials in the config file or\nenvironment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Sheets.ClientID == "" || cfg.Sheets.RefreshToken == "" {
				return fmt.Errorf("sheet credentials are not configured")
			}

			path := outPath
			if path == "" {
				path = cfg.Feed.Path
			}

			logger, err := logging.NewLogger(logging.Config{
				Level:       cfg.Log.Level,
				Format:      "console",
				OutputPaths: []string{"stderr"},
			})
			if err != nil {
				return err
			}
			defer logger.Sync()

			var snapshots sheets.SnapshotCache
			if cfg.Cache.Enabled {
				c := cache.New(cfg.Cache, logger)
				defer c.Close()
				snapshots = c
			}

			syncer := sheets.NewSyncer(sheets.NewClient(cfg.Sheets), path, snapshots, logger, nil)
			count, err := syncer.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", count, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "feed file path (default: data.path from config)")
	return cmd
}
