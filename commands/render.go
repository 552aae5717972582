package commands

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recipebox/router"
	"recipebox/view"
)

var (
	renderBaseURL    string
	renderAddressing string
)

var renderCmd = &cobra.Command{
	Use:   "render [location]",
	Short: "Render the page for a location and print it",
	Long: `Runs the page router for one location, such as "/recipes/pancakes" or
"#pancakes", and prints the resulting HTML.

With --base-url (or base_url in the config) the recipe is fetched over HTTP
from <base-url>/recipes/<slug>.json; otherwise it is read from the configured
store. An empty location renders the index.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderBaseURL, "base-url", "", "site to fetch recipe JSON from")
	renderCmd.Flags().StringVar(&renderAddressing, "addressing", "", "path or hash (default from config)")
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	location := ""
	if len(args) == 1 {
		location = args[0]
	}

	scheme := cfg.Addressing
	if renderAddressing != "" {
		scheme = renderAddressing
	}
	addressing, err := router.ParseAddressing(scheme)
	if err != nil {
		return err
	}

	var loader router.Loader
	baseURL := cfg.BaseURL
	if renderBaseURL != "" {
		baseURL = renderBaseURL
	}
	if baseURL != "" {
		if loader, err = router.NewHTTPLoader(baseURL, nil); err != nil {
			return err
		}
	} else {
		st, closeStore, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore()
		loader = router.LoaderFunc(st.Get)
	}

	tmpl, err := loadTemplate()
	if err != nil {
		return err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(tmpl))
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	page, err := view.Bind(doc, view.DefaultIDs())
	if err != nil {
		return err
	}

	rt := router.New(page, loader, router.WithAddressing(addressing), router.WithLogger(logger))
	state, err := rt.Navigate(ctx, location)
	if err != nil {
		return err
	}
	logger.Debug("routed", zap.String("location", location), zap.Stringer("state", state))

	out, err := page.HTML()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
