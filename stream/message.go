// Package stream fans rendered frames out to network consumers. WebSocket
// viewers get a msgpack feed through the Hub; LED controllers that only
// speak plain HTTP can be fed through a Sink.
package stream

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"conebreaker/game"
)

// Frame is one rendered frame on the wire. Colors is packed RGB, three
// bytes per point, in point-index order.
type Frame struct {
	Tick   uint64 `msgpack:"tick"`
	Phase  uint8  `msgpack:"phase"`
	Colors []byte `msgpack:"colors"`
}

// PackFrame flattens an engine color buffer into a wire frame. The buffer
// is copied, so the engine is free to keep overwriting its own slice.
func PackFrame(tick uint64, phase game.Phase, colors []game.RGB) Frame {
	packed := make([]byte, 0, len(colors)*3)
	for _, c := range colors {
		packed = append(packed, c.R, c.G, c.B)
	}
	return Frame{Tick: tick, Phase: uint8(phase), Colors: packed}
}

// PointCount returns the number of points encoded in the frame.
func (f Frame) PointCount() int {
	return len(f.Colors) / 3
}

// At returns the color of point i. The caller keeps i within PointCount.
func (f Frame) At(i int) game.RGB {
	return game.RGB{R: f.Colors[3*i], G: f.Colors[3*i+1], B: f.Colors[3*i+2]}
}

// Encode serializes a frame for the wire.
func Encode(f Frame) ([]byte, error) {
	return msgpack.Marshal(&f)
}

// Decode parses a wire frame.
func Decode(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("failed to decode frame: %w", err)
	}
	if len(f.Colors)%3 != 0 {
		return Frame{}, fmt.Errorf("frame colors not a multiple of 3: %d bytes", len(f.Colors))
	}
	return f, nil
}
