package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/visitor-log/internal/visitor"
)

func newListCmd() *cobra.Command {
	var filter, sortOrder string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visitors",
		Long:  "List visitor records, optionally filtered by name and sorted by check-in time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(filter, sortOrder)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "show only names containing this text (case-insensitive)")
	cmd.Flags().StringVar(&sortOrder, "sort", string(visitor.SortLatest), "sort order (latest|oldest|none)")

	return cmd
}

func runList(filter, sortOrder string) error {
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

	if isJSON() {
		return printJSON(records)
	}

	return printVisitorTable(records)
}
