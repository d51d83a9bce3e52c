package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/rumba/grid"
	"github.com/beka-birhanu/rumba/simulation"
)

const (
	cleanerMark = "C"
	dirtMark    = "*"
	cleanedMark = "."
)

// ASCII draws every snapshot as a boxed text grid, row 0 at the top.
type ASCII struct {
	w io.Writer
}

var _ Renderer = (*ASCII)(nil)

func NewASCII(w io.Writer) *ASCII {
	return &ASCII{w: w}
}

func (a *ASCII) Push(s simulation.Snapshot) error {
	_, err := io.WriteString(a.w, Frame(s))
	return err
}

func (a *ASCII) Flush() error {
	return nil
}

// Frame renders one snapshot. The cleaner hides dirt or cleaned marks under it.
func Frame(s simulation.Snapshot) string {
	marks := make(map[grid.Position]string, len(s.Dirt)+len(s.Cleaned)+1)
	for _, p := range s.Cleaned {
		marks[p] = cleanedMark
	}
	for _, p := range s.Dirt {
		marks[p] = dirtMark
	}
	marks[s.Position] = cleanerMark

	var output strings.Builder
	fmt.Fprintf(&output, "step %d  dirt %d  cleaned %d\n", s.Step, len(s.Dirt), len(s.Cleaned))

	// Top boundary
	border := "+" + strings.Repeat("---+", s.Size.Cols) + "\n"
	output.WriteString(border)

	for row := 0; row < s.Size.Rows; row++ {
		output.WriteString("|")
		for col := 0; col < s.Size.Cols; col++ {
			mark, ok := marks[grid.Position{Row: row, Col: col}]
			if !ok {
				mark = " "
			}
			output.WriteString(" " + mark + " |")
		}
		output.WriteString("\n")
		output.WriteString(border)
	}

	return output.String()
}
