package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	apperrors "github.com/louisbranch/battleship/internal/platform/errors"
	"github.com/louisbranch/battleship/internal/platform/i18n/catalog"
	"github.com/louisbranch/battleship/internal/services/battleship/domain/grid"
	"github.com/louisbranch/battleship/internal/services/battleship/session"
	"golang.org/x/text/message"
)

var (
	// ErrUnparseable rejects input that is not a row number or column letter.
	ErrUnparseable = apperrors.New(apperrors.CodeCoordUnparseable, "coordinate is not parseable")
	// ErrOrientation rejects an orientation answer other than yes or no.
	ErrOrientation = apperrors.New(apperrors.CodeOrientationInvalid, "orientation answer is not yes or no")
)

// Prompter asks the human for input, one line per answer. Reads honor
// context cancellation even while the underlying reader blocks.
type Prompter struct {
	in      io.Reader
	out     io.Writer
	printer *message.Printer

	once  sync.Once
	lines chan string
	// readErr is set before lines is closed.
	readErr error
}

// NewPrompter returns a prompter reading from in and prompting on out.
func NewPrompter(in io.Reader, out io.Writer, locale string) *Prompter {
	return &Prompter{
		in:      in,
		out:     out,
		printer: catalog.Default().Printer(locale),
	}
}

func (p *Prompter) start() {
	p.lines = make(chan string)
	go func() {
		scanner := bufio.NewScanner(p.in)
		for scanner.Scan() {
			p.lines <- scanner.Text()
		}
		p.readErr = scanner.Err()
		if p.readErr == nil {
			p.readErr = io.EOF
		}
		close(p.lines)
	}()
}

func (p *Prompter) ask(ctx context.Context, key string, args ...any) (string, error) {
	p.once.Do(p.start)
	fmt.Fprint(p.out, p.printer.Sprintf(key, args...))
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", fmt.Errorf("read input: %w", p.readErr)
		}
		return strings.TrimSpace(line), nil
	}
}

// Name asks for the player's name.
func (p *Prompter) Name(ctx context.Context) (string, error) {
	return p.ask(ctx, "console.prompt.name")
}

// Placement asks for a ship's origin and orientation. Each answer is parsed
// as soon as it is read, so a bad row is reported before the column prompt.
func (p *Prompter) Placement(ctx context.Context, ship session.ShipStatus) (grid.Placement, error) {
	origin, err := p.askCoord(
		func() (string, error) { return p.ask(ctx, "console.prompt.place_row", ship.Name) },
		func() (string, error) { return p.ask(ctx, "console.prompt.place_col", ship.Name) },
	)
	if err != nil {
		return grid.Placement{}, err
	}
	answer, err := p.ask(ctx, "console.prompt.horizontal")
	if err != nil {
		return grid.Placement{}, err
	}
	horizontal, err := ParseOrientation(answer)
	if err != nil {
		return grid.Placement{}, err
	}
	return grid.Placement{Origin: origin, Horizontal: horizontal}, nil
}

// Target asks for the cell to attack.
func (p *Prompter) Target(ctx context.Context) (grid.Coord, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.printer.Sprintf("console.turn.human"))
	return p.askCoord(
		func() (string, error) { return p.ask(ctx, "console.prompt.attack_row") },
		func() (string, error) { return p.ask(ctx, "console.prompt.attack_col") },
	)
}

func (p *Prompter) askCoord(askRow, askCol func() (string, error)) (grid.Coord, error) {
	rowText, err := askRow()
	if err != nil {
		return grid.Coord{}, err
	}
	row, err := ParseRow(rowText)
	if err != nil {
		return grid.Coord{}, err
	}
	colText, err := askCol()
	if err != nil {
		return grid.Coord{}, err
	}
	col, err := ParseColumn(colText)
	if err != nil {
		return grid.Coord{}, err
	}
	return grid.Coord{Row: row, Col: col}, nil
}

// ParseCoord reads a row number and a column letter (A-J, any case). A row
// outside 0-9 still parses; range checks belong to the board.
func ParseCoord(rowText, colText string) (grid.Coord, error) {
	row, err := ParseRow(rowText)
	if err != nil {
		return grid.Coord{}, err
	}
	col, err := ParseColumn(colText)
	if err != nil {
		return grid.Coord{}, err
	}
	return grid.Coord{Row: row, Col: col}, nil
}

// ParseRow reads a row number.
func ParseRow(text string) (int, error) {
	row, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeCoordUnparseable, "parse row", err)
	}
	return row, nil
}

// ParseColumn maps a column letter to its index.
func ParseColumn(text string) (int, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if len(text) != 1 {
		return 0, ErrUnparseable
	}
	col := strings.Index(grid.ColumnLabels, text)
	if col < 0 {
		return 0, ErrUnparseable
	}
	return col, nil
}

// ParseOrientation accepts yes/no answers in English or Portuguese; yes
// means horizontal.
func ParseOrientation(text string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y", "yes", "s", "sim":
		return true, nil
	case "n", "no", "não", "nao":
		return false, nil
	default:
		return false, ErrOrientation
	}
}

var _ session.Human = (*Prompter)(nil)
