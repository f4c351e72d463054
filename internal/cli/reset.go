package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every visitor record",
		Long:  "Delete all visitor records from the database. This cannot be undone; visitor ids restart at 1.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm deleting every record")

	return cmd
}

func runReset(force bool) error {
	if !force {
		return fmt.Errorf("refusing to delete all visitor records (re-run with --force)")
	}

	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := svc.Reset(); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"reset": true})
	}

	fmt.Println("All visitor records deleted.")
	return nil
}
