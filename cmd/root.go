package cmd

import (
	"context"
	"fmt"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sebastiantruijens/moviefinder/internal/ansiimg"
	"github.com/sebastiantruijens/moviefinder/internal/config"
	"github.com/sebastiantruijens/moviefinder/internal/logging"
	"github.com/sebastiantruijens/moviefinder/internal/metrics"
	"github.com/sebastiantruijens/moviefinder/internal/tmdb"
	"github.com/sebastiantruijens/moviefinder/internal/tui"
)

var (
	cfgFile  string
	apiKey   string
	logLevel string
	noImages bool
)

var rootCmd = &cobra.Command{
	Use:   "moviefinder",
	Short: "Browse TMDB movies from the terminal",
	Long: `Movie Finder shows this week's trending movies, lets you browse by genre
or search by title, and opens a details view with cast and overview.
Data comes from The Movie Database (TMDB) API.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, closer, err := logging.New(logging.Config{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			File:   cfg.LogFile,
		})
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		m := metrics.New()
		if cfg.MetricsAddr != "" {
			go func() {
				if err := m.Serve(ctx, cfg.MetricsAddr, log); err != nil {
					log.WithError(err).Error("metrics server stopped")
				}
			}()
		}

		client := newClient(cfg, log, m)
		var loader *ansiimg.Loader
		if cfg.Images {
			loader = ansiimg.NewLoader(&http.Client{Timeout: cfg.RequestTimeout})
		}

		log.WithFields(logrus.Fields{
			"api_base_url": cfg.APIBaseURL,
			"images":       cfg.Images,
		}).Info("starting moviefinder")

		model := tui.New(tui.Options{
			Client:  client,
			Images:  tmdb.Images{Base: cfg.ImageBaseURL},
			Loader:  loader,
			Log:     log,
			Metrics: m,
		})
		if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
			return fmt.Errorf("running ui: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "TMDB API key (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noImages, "no-images", false, "disable poster and cast images")
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if noImages {
		cfg.Images = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newClient(cfg *config.Config, log logrus.FieldLogger, m *metrics.Metrics) *tmdb.Client {
	return tmdb.NewClient(cfg.APIBaseURL, cfg.APIKey,
		tmdb.WithTimeout(cfg.RequestTimeout),
		tmdb.WithLanguage(cfg.Language),
		tmdb.WithLogger(log),
		tmdb.WithMetrics(m),
	)
}
