package model

import "time"

// RenderResult describes one headless render.
type RenderResult struct {
	Timestamp    time.Time
	Source       string // image path, or "bundled" for the embedded bitmap
	Degrees      []int  // validated one-shot rotations, in input order
	Ticks        int    // simulated one-degree spin ticks
	Angle        float64
	Interpolator string
	Width        int
	Height       int
	OutputPath   string
	Fingerprint  string // hex BLAKE2b-256 of the rendered pixels
}
