package commands

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"recipebox/site"
)

var (
	buildOut   string
	buildWatch bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	Long: `Renders index.html, recipes/<slug>/index.html and recipes/<slug>.json for
every recipe and copies the image assets, so any static file server can host
the site. With --watch the site is rebuilt whenever a recipe file changes.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "public", "output directory")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild when recipes change")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	builder, err := newPageBuilder(st)
	if err != nil {
		return err
	}
	opts := site.Options{
		OutDir:      buildOut,
		AssetsDir:   cfg.AssetsDir,
		Concurrency: cfg.BuildConcurrency,
		Logger:      logger,
	}

	rebuild := func() error { return site.Build(ctx, builder, opts) }
	if err := rebuild(); err != nil {
		return err
	}
	if !buildWatch {
		return nil
	}
	return site.Watch(ctx, cfg.RecipesDir, 300*time.Millisecond, logger, rebuild)
}
