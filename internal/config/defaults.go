package config

// Default returns the configuration used when no config file or environment
// override is present.
func Default() Config {
	return Config{
		SiteName:     "Bazarovyregal.cz",
		BaseURL:      "https://www.bazarovyregal.cz",
		Email:        "info@bazarovyregal.cz",
		Logo:         "https://www.bazarovyregal.cz/logo.png",
		Description:  "Největší slevy na kovové regály v ČR. Likvidace skladu, slevy až 75 %.",
		OutputDir:    "public",
		ContentDir:   "content",
		LayoutsDir:   "layouts",
		StaticDir:    "static",
		PageExt:      ".html",
		LogLevel:     "info",
		LogFormat:    "text",
		ManifestFile: "pseo_manifest.json",
		StateFile:    ".regalgen-state.json",
		Sitemap: SitemapConfig{
			File:       "sitemap.xml",
			ChangeFreq: "weekly",
			Priority:   "0.7",
			TouchAll:   true,
		},
		Feed: FeedConfig{
			File:             "merchant_feed.xml",
			TextFile:         "merchant_feed.txt",
			Title:            "Bazarovyregal.cz - Kovove regaly",
			Description:      "Kovove regaly za likvidacni ceny. Slevy az 75%. Zaruka 7 let.",
			Brand:            "BazarovyRegal",
			GoogleCategory:   6356,
			ProductType:      "Domacnost > Regaly > Kovove regaly",
			FreeShippingFrom: 2000,
			ShippingPrice:    99,
		},
		Related: RelatedConfig{Count: 4},
	}
}
