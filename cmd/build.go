package cmd

import (
	"github.com/spf13/cobra"

	"github.com/michalbaturko-lang/bazarovyregal/internal/pipeline"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generates every playbook page, the sitemap, robots.txt and the manifest",
	Long: `The build command runs all page playbooks against the product catalog,
loads editorial Markdown from './content/', drops duplicate and thin pages,
renders the rest with the layouts from './layouts/' (or the built-in ones),
copies './static/' and merges the new URLs into the existing sitemap of the
output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(cmd)
	},
}

func runBuildProcess(cmd *cobra.Command) error {
	p := pipeline.New(appConfig, logger, cmd.OutOrStdout())
	summary, err := p.Run()
	if err != nil {
		return err
	}
	summary.Print(cmd.OutOrStdout())
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
