package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cartapp "github.com/dwikikusuma/partshop/internal/cart/app"
	"github.com/dwikikusuma/partshop/internal/cart/infra/adapter"
	"github.com/dwikikusuma/partshop/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/partshop/internal/catalog/app"
	"github.com/dwikikusuma/partshop/internal/catalog/infra/static"
	"github.com/dwikikusuma/partshop/pkg/config"
	"github.com/dwikikusuma/partshop/pkg/logger"
)

type cli struct {
	cfg config.Config
	log zerolog.Logger

	catalogFile string

	catalog *catalogapp.Service
	cart    *cartapp.Service
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "partshop",
		Short:        "Automotive parts catalog and shopping cart",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}

	root.PersistentFlags().StringVar(&c.catalogFile, "catalog", "", "catalog JSON file (default: $CATALOG_FILE or the built-in catalog)")

	root.AddCommand(
		serveCmd(c),
		catalogCmd(c),
		categoriesCmd(c),
		reviewsCmd(c),
		cartCmd(c),
	)
	return root
}

func (c *cli) init() error {
	c.cfg = config.Load()
	if c.catalogFile != "" {
		c.cfg.CatalogFile = c.catalogFile
	}

	c.log = logger.New(logger.Options{
		Service:   "partshop",
		Env:       c.cfg.AppEnv,
		Level:     c.cfg.LogLevel,
		AddSource: true,
		Output:    os.Stderr,
	})

	repo, err := static.Open(c.cfg.CatalogFile)
	if err != nil {
		c.log.Error().Err(err).Str("catalog", c.cfg.CatalogFile).Msg("catalog load failed")
		return err
	}

	c.catalog = catalogapp.NewService(repo)
	c.cart = cartapp.NewService(memory.NewCartRepo(), adapter.NewCatalogServiceReader(c.catalog))
	return nil
}
