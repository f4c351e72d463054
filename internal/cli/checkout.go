package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <id>",
		Short: "Check a visitor out",
		Long:  "Record the checkout time for a visitor currently on premises. A visitor can only be checked out once.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheckout,
	}
}

func runCheckout(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid visitor ID: %s", args[0])
	}

	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	v, err := svc.CheckOut(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	fmt.Printf("Visitor #%d checked out.\n", v.ID)
	printVisitorSummary(v)
	return nil
}
