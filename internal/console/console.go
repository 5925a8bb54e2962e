package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/peterkuimelis/gwx/internal/game"
	gwxlog "github.com/peterkuimelis/gwx/internal/log"
	"github.com/peterkuimelis/gwx/internal/view"
)

// Console is a hot-seat terminal front-end: every command acts for the
// player whose turn it is.
type Console struct {
	g    *game.Game
	in   *bufio.Reader
	out  io.Writer
	quit bool

	title lipgloss.Style
	faint lipgloss.Style
	turn  lipgloss.Style
	frame lipgloss.Style
}

// New creates a console reading commands from in and writing to out.
func New(g *game.Game, in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		g:     g,
		in:    bufio.NewReader(in),
		out:   out,
		title: r.NewStyle().Bold(true),
		faint: r.NewStyle().Faint(true),
		turn:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		frame: r.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}

// Run reads and executes commands until the match ends, the player exits,
// the input runs out or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome! type 'help' for directions")
	c.printPrompt()

	for !c.quit && !c.g.GameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := c.in.ReadString('\n')
		if strings.TrimSpace(line) != "" {
			c.Execute(line)
			if !c.quit && !c.g.GameOver() {
				c.printPrompt()
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}
	}

	if c.g.GameOver() {
		c.printResult()
	}
	fmt.Fprintln(c.out, "Thanks for playing!")
	return nil
}

// Execute runs a single input line.
func (c *Console) Execute(line string) {
	cmd, ok := ForInput(line)
	if !ok {
		fmt.Fprintf(c.out, "Don't know anything about '%s'\n", strings.TrimSpace(line))
		return
	}
	if err := cmd.Run(c, ExtractArguments(line)); err != nil {
		fmt.Fprintf(c.out, "Cannot %s: %v\n", cmd.Name, err)
	}
}

func (c *Console) playCard(index, row int) error {
	hand := c.g.Hand(c.g.CurrentSeat())
	if index < 1 || index > len(hand) {
		return fmt.Errorf("card number must be between 1 and %d", len(hand))
	}
	if row != 0 && !game.ValidRow(row) {
		return fmt.Errorf("row must be between 1 and %d", game.RowCount)
	}
	return c.g.PlayCardAt(hand[index-1].ID, row)
}

func (c *Console) pass() error {
	return c.g.Pass()
}

func (c *Console) printPrompt() {
	p := c.g.CurrentPlayer()
	fmt.Fprintf(c.out, "%s ", c.turn.Render(fmt.Sprintf("[round %d] %s>", c.g.RoundNumber(), p.Name)))
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, "available commands:")
	for _, cmd := range Commands {
		usage := cmd.Name
		if cmd.Usage != "" {
			usage += " " + cmd.Usage
		}
		fmt.Fprintf(c.out, "\t%s : %s\n", usage, cmd.Description)
	}
}

func (c *Console) printHand() {
	seat := c.g.CurrentSeat()
	var sb strings.Builder
	sb.WriteString(c.title.Render(c.g.Players[seat].Name+"'s hand") + "\n")
	cards := view.HandView(c.g.Hand(seat))
	if len(cards) == 0 {
		sb.WriteString(c.faint.Render("(empty)"))
	}
	for i, cv := range cards {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if cv.Type == game.CardTypeSpecial.String() {
			fmt.Fprintf(&sb, "[%d] %s [%s on row %d]", cv.Index, cv.Name, cv.Effect, cv.Row)
		} else {
			fmt.Fprintf(&sb, "[%d] %s (%d, row %d)", cv.Index, cv.Name, cv.Value, cv.Row)
		}
	}
	fmt.Fprintln(c.out, c.frame.Render(sb.String()))
}

func (c *Console) printLog() {
	fmt.Fprint(c.out, gwxlog.FormatAll(c.g.Logger.Events()))
}

// printField draws the second seat's rows above the first seat's, both with
// row 1 nearest the middle.
func (c *Console) printField() {
	sv := view.BuildStateView(c.g, 0)
	top, bottom := sv.Opponent, sv.You

	var lines []string
	lines = append(lines, c.sideHeader(top))
	for i := game.RowCount - 1; i >= 0; i-- {
		lines = append(lines, formatRow(top.Rows[i]))
	}
	lines = append(lines, c.faint.Render(strings.Repeat("─", 30)))
	for i := 0; i < game.RowCount; i++ {
		lines = append(lines, formatRow(bottom.Rows[i]))
	}
	lines = append(lines, c.sideHeader(bottom))
	for _, s := range sv.Specials {
		lines = append(lines, c.faint.Render(fmt.Sprintf("%s (%s) on row %d [%s]", s.Name, s.Owner, s.Row, s.Effect)))
	}
	fmt.Fprintln(c.out, c.frame.Render(strings.Join(lines, "\n")))
}

func (c *Console) sideHeader(pv view.PlayerView) string {
	status := ""
	if pv.Passed {
		status = " (passed)"
	}
	return c.title.Render(fmt.Sprintf("%s  score %d  rounds won %d  hand %d%s",
		pv.Name, pv.Score, pv.Victories, pv.HandCount, status))
}

func formatRow(rv view.RowView) string {
	s := fmt.Sprintf("row %d [%2d]", rv.Row, rv.Strength)
	for _, ec := range rv.Cards {
		s += fmt.Sprintf(" %s(%d)", ec.Name, ec.Value)
	}
	return s
}

func (c *Console) printResult() {
	fmt.Fprintln(c.out, c.title.Render("GAME OVER"))
	for _, r := range c.g.History() {
		winner := "tie"
		if r.Winner >= 0 {
			winner = c.g.Players[r.Winner].Name
		}
		fmt.Fprintf(c.out, "round %d: %d - %d (%s)\n", r.Number, r.Scores[0], r.Scores[1], winner)
	}
	if w, ok := c.g.Winner(); ok {
		fmt.Fprintf(c.out, "%s wins the match!\n", w.Name)
	} else {
		fmt.Fprintln(c.out, "The match is a draw.")
	}
}
