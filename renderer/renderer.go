package renderer

import "context"

type Renderer interface {
	// Render a single frame from its serialized arguments. Blocks until
	// the frame is done; there is no retry.
	Render(ctx context.Context, frame int, args []string) error

	// Get render statistics for the frames rendered since the last
	// ResetStats call.
	Stats() SweepStats

	// Discard collected statistics; called at the start of every run.
	ResetStats()
}
