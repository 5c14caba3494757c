package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/framekit/dataset"
	"github.com/katalvlaran/framekit/frame"
	"github.com/katalvlaran/framekit/groupby"
)

// sampleCmd walks the five-row sample through the core operations: the full
// table, the Dog subset, and the grouped mean weight per family.
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Show the toy table and the core operations on it",
	RunE:  showSample,
}

func showSample(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	animals := dataset.Animals()

	fmt.Fprintln(out, "sample table:")
	fmt.Fprint(out, renderFrame(animals))

	dogs, err := animals.FilterEq("species", "Dog")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nspecies == Dog:")
	fmt.Fprint(out, renderFrame(dogs))

	means, err := groupby.Mean(animals, "family", "weight")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nmean weight by family:")
	fmt.Fprint(out, renderFrame(means))

	return nil
}

var (
	frameHeaderStyle = lipgloss.NewStyle().Bold(true)
	frameCellStyle   = lipgloss.NewStyle()
)

// renderFrame prints a frame as a fixed-width table, columns measured with
// lipgloss so styling never skews alignment.
func renderFrame(f *frame.Frame) string {
	names := f.Names()

	cells := make([][]string, len(names))
	for j, name := range names {
		c, err := f.Column(name)
		if err != nil {
			return ""
		}
		col := make([]string, f.Len())
		switch c.Kind() {
		case frame.Float64:
			vals, _ := f.Floats(name)
			for i, v := range vals {
				col[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		case frame.String:
			vals, _ := f.Strings(name)
			copy(col, vals)
		}
		cells[j] = col
	}

	widths := make([]int, len(names))
	for j, name := range names {
		widths[j] = lipgloss.Width(name)
		for _, cell := range cells[j] {
			if w := lipgloss.Width(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var sb strings.Builder
	for j, name := range names {
		if j > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(frameHeaderStyle.Width(widths[j]).Render(name))
	}
	sb.WriteString("\n")
	for i := 0; i < f.Len(); i++ {
		for j := range names {
			if j > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(frameCellStyle.Width(widths[j]).Render(cells[j][i]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
