package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/krakjn/filenamefmt/internal/pipeline"
	"github.com/krakjn/filenamefmt/internal/ui"
)

// printSummary renders the closing run summary in the requested format.
func printSummary(cmd *cobra.Command, printer *ui.Printer, summary pipeline.RunSummary) error {
	switch flags.summary {
	case "text":
		printer.Summaryf("%s", summary.String())
		return nil
	case "yaml":
		out, err := yaml.Marshal(summary)
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	default:
		return fmt.Errorf("unknown summary format %q (want text or yaml)", flags.summary)
	}
}
