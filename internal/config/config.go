package config

// Config is the decoded form of config.yaml plus REGALGEN_* environment overrides.
type Config struct {
	SiteName     string        `mapstructure:"siteName"`
	BaseURL      string        `mapstructure:"baseURL"`
	Email        string        `mapstructure:"email"`
	Logo         string        `mapstructure:"logo"`
	Description  string        `mapstructure:"description"`
	OutputDir    string        `mapstructure:"outputDir"`
	ContentDir   string        `mapstructure:"contentDir"`
	LayoutsDir   string        `mapstructure:"layoutsDir"`
	StaticDir    string        `mapstructure:"staticDir"`
	PageExt      string        `mapstructure:"pageExt"`
	LogLevel     string        `mapstructure:"logLevel"`
	LogFormat    string        `mapstructure:"logFormat"`
	ManifestFile string        `mapstructure:"manifestFile"`
	StateFile    string        `mapstructure:"stateFile"`
	Sitemap      SitemapConfig `mapstructure:"sitemap"`
	Robots       RobotsConfig  `mapstructure:"robots"`
	Feed         FeedConfig    `mapstructure:"feed"`
	Related      RelatedConfig `mapstructure:"related"`
}

type SitemapConfig struct {
	File       string        `mapstructure:"file"`
	ChangeFreq string        `mapstructure:"changeFreq"`
	Priority   string        `mapstructure:"priority"`
	TouchAll   bool          `mapstructure:"touchAll"`
	Gzip       bool          `mapstructure:"gzip"`
	Rules      []SitemapRule `mapstructure:"rules"`
}

// SitemapRule overrides priority and change frequency for page files whose
// name starts with Prefix. The first matching rule wins.
type SitemapRule struct {
	Prefix     string `mapstructure:"prefix"`
	Priority   string `mapstructure:"priority"`
	ChangeFreq string `mapstructure:"changeFreq"`
}

type RobotsConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Disallow []string `mapstructure:"disallow"`
}

type FeedConfig struct {
	File             string `mapstructure:"file"`
	TextFile         string `mapstructure:"textFile"`
	Title            string `mapstructure:"title"`
	Description      string `mapstructure:"description"`
	Brand            string `mapstructure:"brand"`
	GoogleCategory   int    `mapstructure:"googleCategory"`
	ProductType      string `mapstructure:"productType"`
	FreeShippingFrom int    `mapstructure:"freeShippingFrom"`
	ShippingPrice    int    `mapstructure:"shippingPrice"`
}

type RelatedConfig struct {
	Count int `mapstructure:"count"`
}

// PageURL returns the absolute URL of a generated page.
func (c Config) PageURL(slug string) string {
	return c.BaseURL + "/" + slug + c.PageExt
}
