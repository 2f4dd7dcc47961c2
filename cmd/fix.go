package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/michalbaturko-lang/bazarovyregal/internal/fixup"
	"github.com/michalbaturko-lang/bazarovyregal/internal/pipeline"
)

var fixPasses string
var fixDryRun bool
var fixDir string

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Repairs already generated HTML in place",
	Long: `The fix command runs repair passes over the top-level files of a
directory (default: the output directory):

  urls       rewrite preview and bare hosts to the canonical host
  menu       replace old navigation blocks with the unified menu
  technical  add canonical, viewport, preconnect hints, lazy images, theme-color
  schema     add Product structured data to product pages that lack it
  lifestyle  add a thumbnail gallery with an interior photo matching the colour

Files are only written when a pass changes them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		passes, err := fixup.ParsePasses(fixPasses)
		if err != nil {
			return err
		}
		dir := fixDir
		if dir == "" {
			dir = appConfig.OutputDir
		}
		f := &fixup.Fixer{
			Site:   pipeline.Site(appConfig),
			Logger: logger,
			DryRun: fixDryRun,
			Hosts:  fixup.DefaultHosts(appConfig.BaseURL),
		}
		res, err := f.Run(dir, passes)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		verb := "Fixed"
		if fixDryRun {
			verb = "Would fix"
		}
		for _, name := range res.Changed {
			fmt.Fprintf(out, "  %s: %s\n", verb, name)
		}
		fmt.Fprintf(out, "\n%s %d of %d files in '%s'\n", verb, len(res.Changed), res.Scanned, dir)
		return nil
	},
}

func init() {
	fixCmd.Flags().StringVar(&fixPasses, "pass", "", "comma-separated passes to run (default: all)")
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "report files that would change without writing them")
	fixCmd.Flags().StringVar(&fixDir, "dir", "", "directory to repair (default is the output directory)")
	rootCmd.AddCommand(fixCmd)
}
