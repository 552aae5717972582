// Package commands implements the recipebox command line.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recipebox/config"
	"recipebox/logging"
	"recipebox/navbar"
	"recipebox/pages"
	"recipebox/router"
	"recipebox/store"
	"recipebox/view"
	"recipebox/web"
)

var (
	// Global flags
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "recipebox",
	Short: "recipebox - a small personal recipe site",
	Long: `recipebox serves a personal recipe website from a directory of
<slug>.json recipe documents (or a Firestore collection).

Pages are rendered from an HTML template: the index lists every recipe and
/recipes/<slug> shows one. Unknown or broken recipes fall back to the index.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "recipebox.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd, renderCmd, buildCmd, cookCmd, fractionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore returns the configured store and a close function.
func openStore(ctx context.Context) (store.Store, func() error, error) {
	switch cfg.Store.Kind {
	case "firestore":
		client, err := store.NewFirestoreClient(ctx, cfg.Store.ProjectID, cfg.Store.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		fs := store.NewFirestoreStore(client, cfg.Store.Collection)
		return fs, fs.Close, nil
	default:
		return store.NewDirStore(cfg.RecipesDir, logger), func() error { return nil }, nil
	}
}

func loadTemplate() ([]byte, error) {
	if cfg.Template == "" {
		return web.Template, nil
	}
	data, err := os.ReadFile(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return data, nil
}

func navOptions() *navbar.Options {
	opts := navbar.DefaultOptions()
	if cfg.Nav.HomeURL != "" {
		opts.HomeURL = cfg.Nav.HomeURL
	}
	if cfg.Nav.Image != "" {
		opts.Image = cfg.Nav.Image
	}
	if cfg.Nav.WordmarkAccent != "" {
		opts.WordmarkAccent = cfg.Nav.WordmarkAccent
	}
	if cfg.Nav.Wordmark != "" {
		opts.Wordmark = cfg.Nav.Wordmark
	}
	return &opts
}

// newPageBuilder wires the configured template and navbar to st using path
// addressing, the only scheme a server sees.
func newPageBuilder(st store.Store) (*pages.Builder, error) {
	tmpl, err := loadTemplate()
	if err != nil {
		return nil, err
	}
	return &pages.Builder{
		Template:   tmpl,
		IDs:        view.DefaultIDs(),
		Store:      st,
		Addressing: router.Path,
		Nav:        navOptions(),
		Logger:     logger,
	}, nil
}
