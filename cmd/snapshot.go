package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sebastiantruijens/moviefinder/internal/htmlview"
	"github.com/sebastiantruijens/moviefinder/internal/logging"
	"github.com/sebastiantruijens/moviefinder/internal/metrics"
	"github.com/sebastiantruijens/moviefinder/internal/tmdb"
)

var (
	snapshotOut   string
	snapshotQuery string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the Trending or Search panel to a static HTML page",
	Long: `Fetches trending movies, or the results for --query, and writes the
page with the same cards, tabs and empty-state messages as the terminal UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, closer, err := logging.New(logging.Config{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			File:   "-",
		})
		if err != nil {
			return err
		}
		defer closer.Close()

		w := os.Stdout
		if snapshotOut != "" && snapshotOut != "-" {
			f, err := os.Create(snapshotOut)
			if err != nil {
				return fmt.Errorf("creating %s: %w", snapshotOut, err)
			}
			defer f.Close()
			w = f
		}

		client := newClient(cfg, log, metrics.New())
		if err := htmlview.Snapshot(cmd.Context(), client, tmdb.Images{Base: cfg.ImageBaseURL}, snapshotQuery, w); err != nil {
			return err
		}
		if w != os.Stdout {
			log.WithField("path", snapshotOut).Info("snapshot written")
		}
		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "", "output file (default stdout)")
	snapshotCmd.Flags().StringVarP(&snapshotQuery, "query", "q", "", "search query; blank shows trending")
	rootCmd.AddCommand(snapshotCmd)
}
