package main

import (
	"context"
	"fmt"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Sapuran-Berperan/customer-viewer/internal/client"
	"github.com/Sapuran-Berperan/customer-viewer/internal/config"
	"github.com/Sapuran-Berperan/customer-viewer/internal/logging"
	"github.com/Sapuran-Berperan/customer-viewer/internal/query"
	"github.com/Sapuran-Berperan/customer-viewer/internal/tui"
	"github.com/Sapuran-Berperan/customer-viewer/internal/viewer"
)

type rootOptions struct {
	apiURL   string
	search   string
	sortKey  string
	order    string
	page     int
	plain    bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	// .env is optional
	_ = godotenv.Load()
	// an invalid timeout is reported once the logger exists
	cfg, cfgErr := config.LoadViewer()

	opts := rootOptions{}

	cmd := &cobra.Command{
		Use:          "viewer",
		Short:        "Browse customer records",
		Long:         "Fetches the customer table once and lets you search, sort and page through it.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runViewer(cmd, opts, cfg, cfgErr)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.apiURL, "api-url", cfg.APIBaseURL, "base URL of the customer API")
	flags.StringVar(&opts.search, "search", "", "filter by customer name or location")
	flags.StringVar(&opts.sortKey, "sort", "", "sort by: date, time or none")
	flags.StringVar(&opts.order, "order", string(query.SortAsc), "sort order: asc or desc")
	flags.IntVar(&opts.page, "page", 1, "page to show")
	flags.BoolVar(&opts.plain, "plain", false, "print one page and exit instead of starting the interactive view")
	flags.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	return cmd
}

// initialParams turns the command line flags into query parameters
func initialParams(opts rootOptions) (query.Params, error) {
	key, err := query.ParseSortKey(opts.sortKey)
	if err != nil {
		return query.Params{}, fmt.Errorf("--sort %q: %w", opts.sortKey, err)
	}
	dir, err := query.ParseSortDirection(opts.order)
	if err != nil {
		return query.Params{}, fmt.Errorf("--order %q: %w", opts.order, err)
	}
	if opts.page < 1 {
		return query.Params{}, fmt.Errorf("--page must be at least 1, got %d", opts.page)
	}

	params := query.DefaultParams().WithSearch(opts.search)
	if key != query.SortNone {
		params = params.WithSortKey(key)
	}
	return params.WithSortDirection(dir).WithPage(opts.page), nil
}

func runViewer(cmd *cobra.Command, opts rootOptions, cfg *config.ViewerConfig, cfgErr error) error {
	params, err := initialParams(opts)
	if err != nil {
		return err
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), opts.logLevel)
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("Ignoring fetch timeout, requests will not time out")
	}
	source := client.New(opts.apiURL, &http.Client{Timeout: cfg.FetchTimeout})

	session := viewer.NewSession(source, logger)
	session.Search(params.Search)
	if params.SortKey != query.SortNone {
		session.SortBy(params.SortKey)
	}
	session.SetDirection(params.SortDirection)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.plain {
		// the failure is already logged; print whatever is there
		_ = session.Load(ctx)
		page := query.Apply(session.Records(), session.Params().WithPage(params.Page))
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderPlain(page))
		return nil
	}

	session.SetInitialPage(params.Page)
	program := tea.NewProgram(tui.New(ctx, session), tea.WithContext(ctx), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
