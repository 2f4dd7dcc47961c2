package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/michalbaturko-lang/bazarovyregal/internal/config"
	"github.com/michalbaturko-lang/bazarovyregal/internal/logging"

	"github.com/spf13/viper"
)

var cfgFile string
var appConfig config.Config
var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "regalgen",
	Short: "regalgen - programmatic SEO pages for Bazarovyregal.cz",
	Long: `regalgen generates the static landing pages of Bazarovyregal.cz from the
product catalog and a set of page playbooks, merges them into the sitemap,
and writes the Google Merchant feed. It can also repair and audit an
already deployed output directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(cmd); err != nil {
			return err
		}
		return initializeLogger(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output directory (default is ./public)")
}

// setDefaults registers every key of config.Default so environment
// variables can override keys that appear in no config file.
func setDefaults(v *viper.Viper) {
	d := config.Default()
	v.SetDefault("siteName", d.SiteName)
	v.SetDefault("baseURL", d.BaseURL)
	v.SetDefault("email", d.Email)
	v.SetDefault("logo", d.Logo)
	v.SetDefault("description", d.Description)
	v.SetDefault("outputDir", d.OutputDir)
	v.SetDefault("contentDir", d.ContentDir)
	v.SetDefault("layoutsDir", d.LayoutsDir)
	v.SetDefault("staticDir", d.StaticDir)
	v.SetDefault("pageExt", d.PageExt)
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("logFormat", d.LogFormat)
	v.SetDefault("manifestFile", d.ManifestFile)
	v.SetDefault("stateFile", d.StateFile)

	v.SetDefault("sitemap.file", d.Sitemap.File)
	v.SetDefault("sitemap.changeFreq", d.Sitemap.ChangeFreq)
	v.SetDefault("sitemap.priority", d.Sitemap.Priority)
	v.SetDefault("sitemap.touchAll", d.Sitemap.TouchAll)
	v.SetDefault("sitemap.gzip", d.Sitemap.Gzip)

	v.SetDefault("robots.enabled", d.Robots.Enabled)

	v.SetDefault("feed.file", d.Feed.File)
	v.SetDefault("feed.textFile", d.Feed.TextFile)
	v.SetDefault("feed.title", d.Feed.Title)
	v.SetDefault("feed.description", d.Feed.Description)
	v.SetDefault("feed.brand", d.Feed.Brand)
	v.SetDefault("feed.googleCategory", d.Feed.GoogleCategory)
	v.SetDefault("feed.productType", d.Feed.ProductType)
	v.SetDefault("feed.freeShippingFrom", d.Feed.FreeShippingFrom)
	v.SetDefault("feed.shippingPrice", d.Feed.ShippingPrice)

	v.SetDefault("related.count", d.Related.Count)
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("REGALGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	flags := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{"logLevel": "log-level", "logFormat": "log-format", "outputDir": "output"} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag --%s: %w", flag, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "No config file found in current directory. Using default values and/or environment variables.")
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	appConfig.BaseURL = strings.TrimRight(appConfig.BaseURL, "/")
	return nil
}

func initializeLogger(cmd *cobra.Command) error {
	l, err := logging.New(cmd.ErrOrStderr(), appConfig.LogLevel, appConfig.LogFormat)
	if err != nil {
		return err
	}
	logger, _ = logging.WithRun(l.With("command", cmd.Name()))
	return nil
}
