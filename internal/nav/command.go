package nav

import "fmt"

// Kind enumerates the commands every input adapter produces.
type Kind int

const (
	MoveNext Kind = iota
	MovePrev
	MoveDown
	MoveUp
	SelectRow
	JumpColumn
	Confirm
	Close
	ToggleTheme
)

var kindNames = map[Kind]string{
	MoveNext:    "move-next",
	MovePrev:    "move-prev",
	MoveDown:    "move-down",
	MoveUp:      "move-up",
	SelectRow:   "select-row",
	JumpColumn:  "jump-column",
	Confirm:     "confirm",
	Close:       "close",
	ToggleTheme: "toggle-theme",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Command is a single state transition request. Index is used by SelectRow
// and JumpColumn only.
type Command struct {
	Kind  Kind
	Index int
}

func (c Command) String() string {
	switch c.Kind {
	case SelectRow, JumpColumn:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Index)
	}
	return c.Kind.String()
}

// Cmd builds an argument-less command.
func Cmd(k Kind) Command {
	return Command{Kind: k}
}

// Row builds SelectRow(i).
func Row(i int) Command {
	return Command{Kind: SelectRow, Index: i}
}

// Column builds JumpColumn(i).
func Column(i int) Command {
	return Command{Kind: JumpColumn, Index: i}
}
