// internal/battle/summary.go
package battle

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteSummary prints the per-seat win rates followed by a statistics table.
func WriteSummary(w io.Writer, res Result) {
	types := [...]PlayerType{res.Config.Player0Type, res.Config.Player1Type}
	for seat, t := range types {
		fmt.Fprintf(w, "Player%d (%s): %6.2f%%\n", seat, t, res.WinRate(seat))
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Player", "Type", "Wins", "Win rate", "95% CI"})
	for seat, t := range types {
		low, hi := res.CI95(seat)
		tw.AppendRow(table.Row{
			fmt.Sprintf("Player%d", seat),
			t,
			res.Wins[seat],
			fmt.Sprintf("%6.2f%%", res.WinRate(seat)),
			fmt.Sprintf("%6.2f%% - %6.2f%%", low, hi),
		})
	}
	tw.AppendFooter(table.Row{"Games", res.Games, "", "Avg turns", fmt.Sprintf("%.2f", res.AvgTurns())})
	tw.SetStyle(table.StyleLight)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	tw.Render()
}
