package bootstrap

import (
	"log/slog"

	"plugin-storefront/internal/domain/product"
	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/infra/catalog"
	"plugin-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalogs,
		func(c *catalog.Catalogs) *product.Catalog { return c.Products },
		func(c *catalog.Catalogs) *promo.Catalog { return c.Promos },
	),
)

func NewCatalogs(cfg config.Config, logger *slog.Logger) (*catalog.Catalogs, error) {
	return catalog.Load(cfg.Catalog, logger)
}
