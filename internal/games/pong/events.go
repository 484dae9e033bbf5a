package pong

// ToneEvent is what happened during one frame, as far as sound goes.
type ToneEvent int

const (
	ToneNone ToneEvent = iota
	ToneWallBounce
	TonePaddleBounce
	TonePointScored
)

// String returns a human-readable name for the event.
func (e ToneEvent) String() string {
	switch e {
	case ToneNone:
		return "None"
	case ToneWallBounce:
		return "WallBounce"
	case TonePaddleBounce:
		return "PaddleBounce"
	case TonePointScored:
		return "PointScored"
	default:
		return "Unknown"
	}
}
