package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/michalbaturko-lang/bazarovyregal/internal/audit"
)

var auditDir string
var auditMinWords int

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Checks the generated site for missing files, head tags and structured data",
	Long: `The audit command inspects a built output directory offline: critical
files, required head tags, JSON-LD structured data, thin pages, the page
language and the files the sitemap points at. It exits non-zero when any
error-level finding is reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := auditDir
		if dir == "" {
			dir = appConfig.OutputDir
		}
		a, err := audit.New(appConfig.BaseURL, logger)
		if err != nil {
			return err
		}
		if auditMinWords > 0 {
			a.MinWords = auditMinWords
		}
		rep, err := a.Dir(dir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, f := range rep.Findings {
			fmt.Fprintln(out, f.String())
		}
		errs := rep.Errors()
		fmt.Fprintf(out, "\nAudited %d files: %d errors, %d warnings\n", rep.Files, errs, len(rep.Findings)-errs)
		if errs > 0 {
			return fmt.Errorf("audit found %d errors in '%s'", errs, dir)
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditDir, "dir", "", "directory to audit (default is the output directory)")
	auditCmd.Flags().IntVar(&auditMinWords, "min-words", 0, "readable word count below which a page is reported as thin")
	rootCmd.AddCommand(auditCmd)
}
