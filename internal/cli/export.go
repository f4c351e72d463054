package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/visitor-log/internal/export"
	"github.com/evcraddock/visitor-log/internal/visitor"
)

func newExportCmd() *cobra.Command {
	var filter, sortOrder, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the visitor list as a PDF",
		Long:  "Render the current visitor view, with the same filtering and sorting as list, to a PDF file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(filter, sortOrder, output)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "show only names containing this text (case-insensitive)")
	cmd.Flags().StringVar(&sortOrder, "sort", string(visitor.SortLatest), "sort order (latest|oldest|none)")
	cmd.Flags().StringVarP(&output, "output", "o", export.DefaultFilename, "output file")

	return cmd
}

func runExport(filter, sortOrder, output string) error {
	order := visitor.SortOrder(sortOrder)
	if !order.IsValid() {
		return fmt.Errorf("invalid sort order %q (use latest, oldest, or none)", sortOrder)
	}

	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	records := svc.View(filter, order)
	if err := export.WriteFile(records, output); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{
			"file":  output,
			"count": len(records),
		})
	}

	fmt.Printf("Exported %d visitors to %s.\n", len(records), output)
	return nil
}
