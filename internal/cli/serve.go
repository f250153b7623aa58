package cli

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/larekshop/storefront/internal/config"
	"github.com/larekshop/storefront/internal/domain"
	"github.com/larekshop/storefront/internal/stubserver"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Port     string
	Fixtures string
}

// NewServeCommand creates the serve command running the stub backend.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local stub store API",
		Long: `Run a local in-memory implementation of the catalog and order API.

The catalog comes from a YAML fixture file, or from a small built-in
catalog when no file is given.

Example:
  storefront serve
  storefront serve --port 8081 --fixtures products.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStub(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Port, "port", "", "port to listen on (overrides STUB_PORT)")
	cmd.Flags().StringVar(&opts.Fixtures, "fixtures", "", "path to a YAML catalog fixture (overrides STUB_FIXTURES)")

	return cmd
}

func runStub(opts *ServeOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.Port != "" {
		cfg.Stub.Port = opts.Port
	}
	if opts.Fixtures != "" {
		cfg.Stub.FixturePath = opts.Fixtures
	}

	logger, err := buildLogger(cfg.LogLevel, opts.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var products []domain.Product
	if cfg.Stub.FixturePath != "" {
		products, err = stubserver.LoadFixtures(cfg.Stub.FixturePath)
		if err != nil {
			return err
		}
	} else {
		products = stubserver.DefaultCatalog()
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := stubserver.NewServer(products, logger)
	logger.Info("Stub store API listening",
		zap.String("port", cfg.Stub.Port),
		zap.Int("products", len(products)),
	)
	return server.Router().Run(":" + cfg.Stub.Port)
}
