package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/larekshop/storefront/internal/app"
	"github.com/larekshop/storefront/internal/config"
	"github.com/larekshop/storefront/internal/larekapi"
	"github.com/larekshop/storefront/internal/render"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	APIURL string
	CDNURL string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive storefront session",
		Long: `Start an interactive storefront session against the store API.

The session loads the catalog, then reads commands from stdin. Type "help"
inside the session for the command list.

Example:
  storefront run
  storefront run --api-url http://localhost:8081/api`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.APIURL, "api-url", "", "store API base URL (overrides API_URL)")
	cmd.Flags().StringVar(&opts.CDNURL, "cdn-url", "", "product image base URL (overrides CDN_URL)")

	return cmd
}

func runSession(cmd *cobra.Command, opts *RunOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.APIURL != "" {
		cfg.API.BaseURL = opts.APIURL
	}
	if opts.CDNURL != "" {
		cfg.API.CDNURL = opts.CDNURL
	}

	logger, err := buildLogger(cfg.LogLevel, opts.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	client := larekapi.NewClient(cfg.API, logger)
	surface := render.NewTextSurface(cmd.OutOrStdout())

	ctx := cmd.Context()
	storefront := app.New(ctx, client, surface, cfg.API.CDNURL, logger)
	return storefront.Run(ctx, os.Stdin)
}
