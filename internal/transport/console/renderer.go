package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const legendCellSeparator = "|"

// Renderer - turns boards into text. Cell markers only exist at this layer.
type Renderer struct {
	markers   map[entity.CellState]string
	separator string
}

func NewRenderer(display config.Display) *Renderer {
	return &Renderer{
		markers: map[entity.CellState]string{
			entity.Empty:    display.EmptyMarker,
			entity.Human:    display.HumanMarker,
			entity.Opponent: display.OpponentMarker,
		},
		separator: strings.Repeat("=", display.SeparatorWidth),
	}
}

func (that *Renderer) Marker(state entity.CellState) string {
	if marker, ok := that.markers[state]; ok {
		return marker
	}

	return "?"
}

// Board - the board framed by separator lines, one " M " cell per column.
func (that *Renderer) Board(board *entity.Board) string {
	dimensions := board.Dimensions()

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(that.separator + "\n")
	for row := 0; row < dimensions.Rows; row++ {
		for col := 0; col < dimensions.Cols; col++ {
			sb.WriteString(" " + that.Marker(board.At(entity.Position{Row: row, Col: col})) + " ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(that.separator + "\n")

	return sb.String()
}

// Legend - the coordinate of every cell laid out like the board.
func (that *Renderer) Legend(dimensions entity.Dimensions) string {
	divider := strings.TrimSuffix(strings.Repeat("---"+legendCellSeparator, dimensions.Cols), legendCellSeparator)

	var sb strings.Builder
	for row := 0; row < dimensions.Rows; row++ {
		if row > 0 {
			sb.WriteString(divider + "\n")
		}

		cells := make([]string, 0, dimensions.Cols)
		for col := 0; col < dimensions.Cols; col++ {
			cells = append(cells, fmt.Sprintf("%d,%d", row, col))
		}
		sb.WriteString(strings.Join(cells, legendCellSeparator) + "\n")
	}

	return sb.String()
}
