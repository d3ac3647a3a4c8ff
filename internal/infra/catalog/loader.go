package catalog

import (
	"fmt"
	"log/slog"
	"os"

	"plugin-storefront/internal/domain/product"
	"plugin-storefront/internal/domain/promo"
	"plugin-storefront/internal/pkg/config"
	"plugin-storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var ErrUnknownLinkedProduct = errs.New("promo links to unknown product")

type fileProduct struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Currency string `yaml:"currency"`
}

type file struct {
	Products []fileProduct      `yaml:"products"`
	Promos   []promo.Definition `yaml:"promos"`
}

// Catalogs bundles the two static registries loaded at start-up.
type Catalogs struct {
	Products *product.Catalog
	Promos   *promo.Catalog
}

// Load reads cfg.File when set and falls back to the built-in catalog.
func Load(cfg config.CatalogConfig, logger *slog.Logger) (*Catalogs, error) {
	if cfg.File == "" {
		logger.Info("using built-in catalog")
		return Build(DefaultProducts(), DefaultPromos())
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to read catalog file %s", cfg.File)
	}
	catalogs, err := Parse(data)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to parse catalog file %s", cfg.File)
	}
	logger.Info("catalog loaded", slog.String("file", cfg.File))
	return catalogs, nil
}

func Parse(data []byte) (*Catalogs, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Wrap(err, "invalid catalog yaml")
	}

	products := make([]product.Product, 0, len(f.Products))
	for _, fp := range f.Products {
		price, err := decimal.NewFromString(fp.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: price %q", product.ErrInvalidProduct, fp.ID, fp.Price)
		}
		products = append(products, product.Product{
			ID:       fp.ID,
			Name:     fp.Name,
			Price:    price,
			Currency: fp.Currency,
		})
	}
	return Build(products, f.Promos)
}

func Build(products []product.Product, promos []promo.Definition) (*Catalogs, error) {
	productCatalog, err := product.NewCatalog(products...)
	if err != nil {
		return nil, err
	}
	for _, def := range promos {
		if _, ok := productCatalog.Lookup(def.LinkedProductID); !ok {
			return nil, errs.Wrapf(ErrUnknownLinkedProduct, "%s -> %s", def.Code, def.LinkedProductID)
		}
	}
	promoCatalog, err := promo.NewCatalog(promos...)
	if err != nil {
		return nil, err
	}
	return &Catalogs{Products: productCatalog, Promos: promoCatalog}, nil
}

func DefaultProducts() []product.Product {
	return []product.Product{
		{ID: "abracadabra", Name: "Abracadabra", Price: decimal.RequireFromString("49.00"), Currency: "USD"},
		{ID: "foam", Name: "Foam", Price: decimal.RequireFromString("29.00"), Currency: "USD"},
	}
}

func DefaultPromos() []promo.Definition {
	return []promo.Definition{
		{
			Code:            "ABRACADABRA20",
			DiscountPercent: 20,
			MaxUses:         25,
			LinkedProductID: "abracadabra",
			Active:          true,
			TimedRelease:    &promo.TimedRelease{DurationHours: 24, ImmediateReleases: 5},
		},
		{
			Code:            "KVRFOAM",
			DiscountPercent: 20,
			MaxUses:         1000,
			LinkedProductID: "foam",
			Active:          true,
		},
	}
}
