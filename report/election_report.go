package report

import (
	"fmt"
	"io"

	election "github.com/jicksta/village-election"
	"github.com/olekukonko/tablewriter"
)

type ResultsReport struct {
	Results []election.CandidateResult
}

func NewResultsReport(results []election.CandidateResult) *ResultsReport {
	return &ResultsReport{
		Results: results,
	}
}

// PrintResultsTable writes the results as a Markdown table, one row per candidate in the order given.
func (rr *ResultsReport) PrintResultsTable(writer io.Writer) {
	table := newMarkdownTable(writer)
	table.SetHeader([]string{"Rank", "ID", "Name", "Party", "Votes"})

	for i, result := range rr.Results {
		table.Append([]string{
			fmt.Sprint(i + 1),
			result.ID,
			result.Name,
			result.Party,
			fmt.Sprint(result.Votes),
		})
	}

	table.Render()
}

// PrintWinner writes a one-line announcement of winner.
func PrintWinner(writer io.Writer, winner *election.CandidateResult) {
	if winner == nil {
		fmt.Fprintln(writer, "No winner (no votes cast)")
		return
	}
	fmt.Fprintf(writer, "Winner: %s (%s) of %s with %d votes\n", winner.Name, winner.ID, winner.Party, winner.Votes)
}

// PrintRegionTable writes one row per direct child of region plus a total row for region itself. Columns are the
// candidates of the region's overall results, in result order.
func PrintRegionTable(writer io.Writer, tree *election.RegionTree, region string) error {
	overall, err := tree.Results(region, nil)
	if err != nil {
		return err
	}

	table := newMarkdownTable(writer)
	headings := []string{"Region"}
	for _, result := range overall {
		headings = append(headings, result.Name)
	}
	table.SetHeader(headings)

	for _, child := range tree.Children(region) {
		tally, err := tree.Tally(child)
		if err != nil {
			return err
		}
		cells := []string{child}
		for _, result := range overall {
			cells = append(cells, fmt.Sprint(tally[result.ID]))
		}
		table.Append(cells)
	}

	totals := []string{"Total " + region}
	for _, result := range overall {
		totals = append(totals, fmt.Sprint(result.Votes))
	}
	table.Append(totals)

	table.Render()
	return nil
}

func newMarkdownTable(writer io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)

	// Configure for Markdown table formatting
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoFormatHeaders(false)

	return table
}
