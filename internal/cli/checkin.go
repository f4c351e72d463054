package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/visitor-log/internal/visitor"
)

func newCheckinCmd() *cobra.Command {
	var purpose, contact string

	cmd := &cobra.Command{
		Use:   "checkin <name>",
		Short: "Check a visitor in",
		Long:  "Register a visitor as on premises, recording their purpose and contact number.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckin(strings.Join(args, " "), purpose, contact)
		},
	}

	cmd.Flags().StringVar(&purpose, "purpose", string(visitor.Other), "purpose of the visit (Meeting|Delivery|Interview|Maintenance|Other)")
	cmd.Flags().StringVar(&contact, "contact", "", "visitor phone number (digits only)")

	return cmd
}

func runCheckin(name, purpose, contact string) error {
	svc, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	v, err := svc.CheckIn(name, visitor.Purpose(purpose), contact)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	fmt.Printf("Visitor #%d checked in.\n", v.ID)
	printVisitorSummary(v)
	return nil
}
