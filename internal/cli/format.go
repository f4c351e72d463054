package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/evcraddock/visitor-log/internal/visitor"
)

const timeFormat = "2006-01-02 15:04"

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printVisitorSummary prints a single visitor in text format.
func printVisitorSummary(v *visitor.Visitor) {
	fmt.Printf("Visitor #%d\n", v.ID)
	fmt.Printf("  Name:      %s\n", v.Name)
	fmt.Printf("  Purpose:   %s\n", v.Purpose)
	fmt.Printf("  Contact:   %s\n", v.Contact)
	fmt.Printf("  Check-In:  %s\n", v.CheckInTime.Format(timeFormat))
	fmt.Printf("  Check-Out: %s\n", formatCheckOut(v))
}

// printVisitorTable prints visitors as a formatted table.
func printVisitorTable(records []*visitor.Visitor) error {
	if len(records) == 0 {
		fmt.Println("No visitors found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tPURPOSE\tCONTACT\tCHECK-IN\tCHECK-OUT"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t-------\t-------\t--------\t---------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, v := range records {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			v.ID, truncate(v.Name, 30), v.Purpose, v.Contact,
			v.CheckInTime.Format(timeFormat), formatCheckOut(v)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d visitors\n", len(records))
	return nil
}

// formatCheckOut formats the checkout time, or "N/A" while the visitor is
// on premises.
func formatCheckOut(v *visitor.Visitor) string {
	if v.CheckOutTime == nil {
		return "N/A"
	}
	return v.CheckOutTime.Format(timeFormat)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
