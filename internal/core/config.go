package core

// RuntimeConfig is what the host hands the game loop at start.
type RuntimeConfig struct {
	ScreenW  int   // Pixel buffer width
	ScreenH  int   // Pixel buffer height
	TickRate int   // Frames per second requested from the host
	Seed     int64 // RNG seed, 0 means derive one from the clock
}

// DefaultConfig returns a 16:9 buffer at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  320,
		ScreenH:  180,
		TickRate: 60,
		Seed:     0,
	}
}
