package recording

import (
	"fmt"

	"github.com/gogpu/ggplay"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one Canvas method.
type CommandType uint8

const (
	// State commands
	CmdPush      CommandType = iota // Save current state
	CmdPop                          // Restore previous state
	CmdTransform                    // Concatenate a matrix

	// Style commands
	CmdSetFillColor // Set fill color

	// Drawing commands
	CmdFillRect    // Fill a rectangle
	CmdFillEllipse // Fill the ellipse inscribed in a rectangle
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdPush:         "Push",
	CmdPop:          "Pop",
	CmdTransform:    "Transform",
	CmdSetFillColor: "SetFillColor",
	CmdFillRect:     "FillRect",
	CmdFillEllipse:  "FillEllipse",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
	// Apply performs the command on c.
	Apply(c ggplay.Canvas)
}

// PushCommand saves the canvas state.
type PushCommand struct{}

func (PushCommand) Type() CommandType     { return CmdPush }
func (PushCommand) Apply(c ggplay.Canvas) { c.Push() }
func (PushCommand) String() string        { return "Push" }

// PopCommand restores the canvas state.
type PopCommand struct{}

func (PopCommand) Type() CommandType     { return CmdPop }
func (PopCommand) Apply(c ggplay.Canvas) { c.Pop() }
func (PopCommand) String() string        { return "Pop" }

// TransformCommand concatenates Matrix onto the current transform.
type TransformCommand struct {
	Matrix ggplay.Matrix
}

func (TransformCommand) Type() CommandType       { return CmdTransform }
func (t TransformCommand) Apply(c ggplay.Canvas) { c.Transform(t.Matrix) }

func (t TransformCommand) String() string {
	m := t.Matrix
	return fmt.Sprintf("Transform(%g %g %g; %g %g %g)", m.A, m.B, m.C, m.D, m.E, m.F)
}

// SetFillColorCommand sets the fill color.
type SetFillColorCommand struct {
	Color ggplay.RGBA
}

func (SetFillColorCommand) Type() CommandType       { return CmdSetFillColor }
func (s SetFillColorCommand) Apply(c ggplay.Canvas) { c.SetFillColor(s.Color) }
func (s SetFillColorCommand) String() string        { return "SetFillColor(" + s.Color.Hex() + ")" }

// FillRectCommand fills Rect.
type FillRectCommand struct {
	Rect ggplay.Rect
}

func (FillRectCommand) Type() CommandType       { return CmdFillRect }
func (f FillRectCommand) Apply(c ggplay.Canvas) { c.FillRect(f.Rect) }
func (f FillRectCommand) String() string        { return "FillRect" + f.Rect.String()[len("Rect"):] }

// FillEllipseCommand fills the ellipse inscribed in Rect.
type FillEllipseCommand struct {
	Rect ggplay.Rect
}

func (FillEllipseCommand) Type() CommandType       { return CmdFillEllipse }
func (f FillEllipseCommand) Apply(c ggplay.Canvas) { c.FillEllipse(f.Rect) }
func (f FillEllipseCommand) String() string        { return "FillEllipse" + f.Rect.String()[len("Rect"):] }
