package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	// SiteOrigin is the public origin of the marketing site; success and
	// cancel redirect URLs are built from it.
	SiteOrigin string `env:"SITE_ORIGIN" envDefault:"http://localhost:3000"`

	Stripe  Stripe  `envPrefix:"STRIPE_"`
	Paypal  Paypal  `envPrefix:"PAYPAL_"`
	Catalog Catalog `envPrefix:"CATALOG_"`
}

type Stripe struct {
	SecretKey string `env:"SECRET_KEY"`
}

type Paypal struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	BrandName    string `env:"BRAND_NAME" envDefault:"Voltpad"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

func (e Environment) IsProduction() bool {
	return e.Name == "production"
}

type Log struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

// Catalog holds one entry per sellable plan. Prices are minor currency
// units (cents). Unset fields fall back to the built-in catalog defaults.
type Catalog struct {
	Premium    CatalogEntry `envPrefix:"PREMIUM_"`
	Pro        CatalogEntry `envPrefix:"PRO_"`
	Enterprise CatalogEntry `envPrefix:"ENTERPRISE_"`
}

type CatalogEntry struct {
	Name        string `env:"NAME"`
	Description string `env:"DESCRIPTION"`
	PriceCents  int64  `env:"PRICE_CENTS"`
	Currency    string `env:"CURRENCY"`
}
