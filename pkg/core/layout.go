package core

const (
	gridColumns = 3
	gridStepX   = 300
	gridStepY   = 220
)

// TouchPosition is where new notes land on touch devices.
var TouchPosition = Position{X: 14, Y: 14}

// GridPosition places a new note in a three-column grid after the
// non-archived notes already in its bucket. The bucket is the notes sharing
// week, or the notes without any week when week is nil.
func GridPosition(notes []Note, week *int) Position {
	index := 0
	for _, n := range notes {
		if n.Status == StatusArchived {
			continue
		}
		if week != nil {
			if n.HasWeek(*week) {
				index++
			}
			continue
		}
		if len(n.Weeks()) == 0 {
			index++
		}
	}

	column := index % gridColumns
	row := index / gridColumns
	return Position{
		X: DefaultPosition.X + column*gridStepX,
		Y: DefaultPosition.Y + row*gridStepY,
	}
}
