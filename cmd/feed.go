package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
	"github.com/michalbaturko-lang/bazarovyregal/internal/feed"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Writes the Google Merchant feed (XML and tab-separated)",
	Long: `The feed command writes one Merchant Center item per catalog product,
as an RSS 2.0 XML file and as a tab-separated text file, into the output
directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFeed(cmd)
	},
}

func feedOptions() feed.Options {
	f := appConfig.Feed
	return feed.Options{
		BaseURL:          appConfig.BaseURL,
		PageExt:          appConfig.PageExt,
		Title:            f.Title,
		Description:      f.Description,
		Brand:            f.Brand,
		GoogleCategory:   f.GoogleCategory,
		ProductType:      f.ProductType,
		FreeShippingFrom: f.FreeShippingFrom,
		ShippingPrice:    f.ShippingPrice,
	}
}

func runFeed(cmd *cobra.Command) error {
	c := catalog.Default()
	c.PageExt = appConfig.PageExt
	opts := feedOptions()
	items := feed.Build(c, opts)

	if err := os.MkdirAll(appConfig.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", appConfig.OutputDir, err)
	}

	xmlFile := filepath.Join(appConfig.OutputDir, appConfig.Feed.File)
	if err := writeWith(xmlFile, func(f *os.File) error { return feed.WriteXML(f, items, opts) }); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "XML feed: %s (%d products)\n", xmlFile, len(items))

	if appConfig.Feed.TextFile != "" {
		txtFile := filepath.Join(appConfig.OutputDir, appConfig.Feed.TextFile)
		if err := writeWith(txtFile, func(f *os.File) error { return feed.WriteTSV(f, items) }); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "TSV feed: %s (%d products)\n", txtFile, len(items))
	}
	logger.Info("Merchant feed written", "products", len(items), "file", xmlFile)
	return nil
}

func writeWith(file string, write func(*os.File) error) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", file, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write '%s': %w", file, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close '%s': %w", file, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(feedCmd)
}
