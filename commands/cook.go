package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recipebox/router"
	"recipebox/tui"
)

var cookBaseURL string

var cookCmd = &cobra.Command{
	Use:   "cook [slug]",
	Short: "Step through a recipe in the terminal",
	Long: `Opens a full-screen view of one recipe. In a wide terminal the steps are
shown one at a time: use the arrow keys, n/p, or drag with the mouse to move
between them. Narrow terminals list every step.`,
	Args: cobra.ExactArgs(1),
	RunE: runCook,
}

func init() {
	cookCmd.Flags().StringVar(&cookBaseURL, "base-url", "", "site to fetch recipe JSON from")
}

func runCook(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	slug := args[0]

	var loader router.Loader
	if cookBaseURL != "" {
		l, err := router.NewHTTPLoader(cookBaseURL, nil)
		if err != nil {
			return err
		}
		loader = l
	} else {
		st, closeStore, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore()
		loader = router.LoaderFunc(st.Get)
	}

	recipe, err := loader.Load(ctx, slug)
	if err != nil {
		return err
	}

	renderer, err := tui.NewRenderer(80)
	if err != nil {
		logger.Warn("markdown renderer unavailable", zap.Error(err))
		renderer = nil
	}
	return tui.Run(recipe, renderer)
}
