package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/michalbaturko-lang/bazarovyregal/internal/catalog"
)

var catalogFormat string
var catalogAll bool

// catalogRow is the listing shape shared by every output format.
type catalogRow struct {
	Slug          string `json:"slug" yaml:"slug"`
	Name          string `json:"name" yaml:"name"`
	Height        int    `json:"height" yaml:"height"`
	Width         int    `json:"width" yaml:"width"`
	Depth         int    `json:"depth" yaml:"depth"`
	Color         string `json:"color" yaml:"color"`
	Price         int    `json:"price" yaml:"price"`
	PriceOriginal int    `json:"price_original" yaml:"price_original"`
	Discount      int    `json:"discount" yaml:"discount"`
	Capacity      int    `json:"capacity" yaml:"capacity"`
	Bestseller    bool   `json:"bestseller,omitempty" yaml:"bestseller,omitempty"`
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists the product catalog with computed prices",
	Long: `The catalog command prints the featured products (or the full product
matrix with --all) together with the prices and capacities every page and
the merchant feed derive from them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default()
		products := c.Featured
		if catalogAll {
			products = c.Full
		}
		rows := make([]catalogRow, 0, len(products))
		for _, p := range products {
			rows = append(rows, catalogRow{
				Slug:          p.Slug,
				Name:          p.Name(),
				Height:        p.Height,
				Width:         p.Width,
				Depth:         p.Depth,
				Color:         string(p.Color),
				Price:         p.Price,
				PriceOriginal: p.PriceOriginal,
				Discount:      p.Discount(),
				Capacity:      p.Capacity,
				Bestseller:    p.Bestseller,
			})
		}
		return writeCatalog(cmd.OutOrStdout(), rows, catalogFormat)
	},
}

func writeCatalog(w io.Writer, rows []catalogRow, format string) error {
	switch format {
	case "", "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SLUG\tNAME\tPRICE\tORIGINAL\tDISCOUNT\tCAPACITY")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%d Kč\t%d Kč\t-%d %%\t%d kg\n", r.Slug, r.Name, r.Price, r.PriceOriginal, r.Discount, r.Capacity)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(rows)
	case "yaml":
		b, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"slug", "name", "height", "width", "depth", "color", "price", "price_original", "discount", "capacity", "bestseller"}); err != nil {
			return err
		}
		for _, r := range rows {
			record := []string{
				r.Slug, r.Name,
				strconv.Itoa(r.Height), strconv.Itoa(r.Width), strconv.Itoa(r.Depth),
				r.Color,
				strconv.Itoa(r.Price), strconv.Itoa(r.PriceOriginal), strconv.Itoa(r.Discount), strconv.Itoa(r.Capacity),
				strconv.FormatBool(r.Bestseller),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}
	return fmt.Errorf("unknown format '%s', use text, json, yaml or csv", format)
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", "text", "output format: text, json, yaml or csv")
	catalogCmd.Flags().BoolVar(&catalogAll, "all", false, "list the full product matrix instead of the featured products")
	rootCmd.AddCommand(catalogCmd)
}
