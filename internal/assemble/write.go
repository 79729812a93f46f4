package assemble

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jjtimmons/stitch/config"
	"github.com/jjtimmons/stitch/internal/frag"
	"github.com/jjtimmons/stitch/internal/overlap"
	"gopkg.in/yaml.v3"
)

// Write the result to w in the passed format. FASTA sequences are
// wrapped every width symbols, or not at all if width is zero
func Write(w io.Writer, r *Result, format string, width int) error {
	switch format {
	case config.FormatFASTA, "":
		return writeFASTA(w, r, width)
	case config.FormatJSON:
		output, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize the assembly: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", output)
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to serialize the assembly: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeFASTA(w io.Writer, r *Result, width int) error {
	if _, err := fmt.Fprintf(w, ">%s\n", r.Name); err != nil {
		return err
	}

	seq := frag.Fragment{Seq: r.Seq}
	n := seq.Len()
	if width <= 0 || n <= width {
		_, err := fmt.Fprintf(w, "%s\n", r.Seq)
		return err
	}

	for start := 0; start < n; start += width {
		end := start + width
		if end > n {
			end = n
		}
		if _, err := fmt.Fprintf(w, "%s\n", seq.Slice(start, end)); err != nil {
			return err
		}
	}
	return nil
}

// WriteEdges writes a table of confirmed overlaps
func WriteEdges(w io.Writer, edges []overlap.Edge) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	if _, err := fmt.Fprintf(tw, "left\tright\toverlap\t\n"); err != nil {
		return err
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t\n", e.Left, e.Right, e.Overlap); err != nil {
			return err
		}
	}
	return tw.Flush()
}
