package presenter

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// RenderText writes cards as an aligned table, one block per team.
func RenderText(w io.Writer, cards []Card) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, "no teams match the current selection")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, c := range cards {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.DebutCaption, c.LogoURL)
		fmt.Fprintln(tw, "  season\tplayed\twon\tlost")
		for _, row := range c.Seasons {
			fmt.Fprintf(tw, "  %s\t%d\t%d\t%d\n", row.Season, row.Played, row.Won, row.Lost)
		}
	}
	return tw.Flush()
}

// RenderError writes a visible error state in place of the card list.
func RenderError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "error: could not load teams: %v\n", err)
	return werr
}
