// Package recording captures Canvas operations as commands.
//
// A Recorder is a ggplay.Canvas that draws nothing; it appends one Command
// per call. The resulting Recording can be inspected (tests use it to check
// that every Push is paired with a Pop) and replayed onto any other Canvas:
//
//	rec := recording.NewRecorder()
//	shape.Draw(rec)
//	r := rec.FinishRecording()
//
//	dc := ggplay.NewContext(200, 200)
//	r.Replay(dc)
package recording
