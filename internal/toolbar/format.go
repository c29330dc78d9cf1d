package toolbar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Write renders bar as an indented outline, one node per line.
func Write(w io.Writer, bar *Bar) error {
	bw := bufio.NewWriter(w)
	state := "hidden"
	if bar.Visible() {
		state = "visible"
	}
	fmt.Fprintf(bw, "toolbar %s nodes=%d\n", state, bar.Len())
	writeBranches(bw, bar.Tree(), 1)
	return bw.Flush()
}

func writeBranches(w *bufio.Writer, branches []Branch, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, br := range branches {
		line := fmt.Sprintf("%s- %s [%s]", indent, br.Title, br.ID)
		if br.Group {
			line += " (group)"
		}
		if br.Href != "" {
			line += " -> " + br.Href
		}
		if br.Meta.Class != "" {
			line += " ." + strings.ReplaceAll(br.Meta.Class, " ", ".")
		}
		fmt.Fprintln(w, line)
		writeBranches(w, br.Children, depth+1)
	}
}
