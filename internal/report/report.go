// Package report renders people and household summaries as plain text.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"domainmodel/internal/core"
)

// WriteHousehold writes one row per member followed by the household total.
func WriteHousehold(w io.Writer, name string, s core.HouseholdSummary) error {
	if _, err := fmt.Fprintf(w, "Household %s\n", name); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MEMBER\tJOB\tINCOME")
	for _, m := range s.Members {
		job := m.JobTitle
		if job == "" {
			job = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name, job, m.Income)
	}
	fmt.Fprintf(tw, "TOTAL\t\t%s\n", s.Total)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write household %s: %w", name, err)
	}
	return nil
}

// WritePeople writes one description line per person.
func WritePeople(w io.Writer, people []*core.Person) error {
	for _, p := range people {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return fmt.Errorf("write person: %w", err)
		}
	}
	return nil
}
