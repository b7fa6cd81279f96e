package recording

import (
	"fmt"
	"strings"

	"github.com/gogpu/ggplay"
)

// Recorder is a ggplay.Canvas that records every call as a Command.
type Recorder struct {
	commands []Command
	depth    int
	maxDepth int
	unpaired int
}

var _ ggplay.Canvas = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Push records a state save.
func (r *Recorder) Push() {
	r.commands = append(r.commands, PushCommand{})
	r.depth++
	if r.depth > r.maxDepth {
		r.maxDepth = r.depth
	}
}

// Pop records a state restore.
func (r *Recorder) Pop() {
	r.commands = append(r.commands, PopCommand{})
	if r.depth == 0 {
		r.unpaired++
		return
	}
	r.depth--
}

// Transform records a transform concatenation.
func (r *Recorder) Transform(m ggplay.Matrix) {
	r.commands = append(r.commands, TransformCommand{Matrix: m})
}

// SetFillColor records a fill color change.
func (r *Recorder) SetFillColor(c ggplay.RGBA) {
	r.commands = append(r.commands, SetFillColorCommand{Color: c})
}

// FillRect records a rectangle fill.
func (r *Recorder) FillRect(rect ggplay.Rect) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect})
}

// FillEllipse records an ellipse fill.
func (r *Recorder) FillEllipse(in ggplay.Rect) {
	r.commands = append(r.commands, FillEllipseCommand{Rect: in})
}

// Depth returns the number of Pushes not yet matched by a Pop.
func (r *Recorder) Depth() int { return r.depth }

// FinishRecording returns the recorded commands and resets the recorder.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{
		commands: r.commands,
		balanced: r.depth == 0 && r.unpaired == 0,
		maxDepth: r.maxDepth,
	}
	*r = Recorder{}
	return rec
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	commands []Command
	balanced bool
	maxDepth int
}

// Record runs draw against a fresh Recorder and returns the recording.
func Record(draw func(ggplay.Canvas)) *Recording {
	rec := NewRecorder()
	draw(rec)
	return rec.FinishRecording()
}

// Commands returns the recorded commands in order.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Types returns the type of every recorded command in order.
func (r *Recording) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

// Balanced reports whether every Push was matched by a later Pop and no Pop
// ran on an empty stack.
func (r *Recording) Balanced() bool { return r.balanced }

// MaxDepth returns the deepest nesting of saved states.
func (r *Recording) MaxDepth() int { return r.maxDepth }

// Replay applies every command to c in order.
func (r *Recording) Replay(c ggplay.Canvas) {
	for _, cmd := range r.commands {
		cmd.Apply(c)
	}
}

// String lists the commands one per line.
func (r *Recording) String() string {
	var sb strings.Builder
	for _, cmd := range r.commands {
		if s, ok := cmd.(fmt.Stringer); ok {
			sb.WriteString(s.String())
		} else {
			sb.WriteString(cmd.Type().String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
