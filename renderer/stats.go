package renderer

import "time"

type FrameStat struct {
	// The frame index within the sweep.
	Frame int

	// Number of arguments handed to the renderer.
	NumArgs int

	// Wall time spent waiting for the renderer.
	RenderTime time.Duration
}

type SweepStats struct {
	// Individual frame stats in render order.
	Frames []FrameStat

	// Total render time for all frames.
	RenderTime time.Duration

	// Time spent assembling the video.
	EncodeTime time.Duration
}

// Average render time per frame.
func (s SweepStats) MeanFrameTime() time.Duration {
	if len(s.Frames) == 0 {
		return 0
	}
	return s.RenderTime / time.Duration(len(s.Frames))
}

// The frame that took longest to render. The second return value is false
// if no frames were rendered.
func (s SweepStats) Slowest() (FrameStat, bool) {
	if len(s.Frames) == 0 {
		return FrameStat{}, false
	}
	slowest := s.Frames[0]
	for _, stat := range s.Frames[1:] {
		if stat.RenderTime > slowest.RenderTime {
			slowest = stat
		}
	}
	return slowest, true
}
