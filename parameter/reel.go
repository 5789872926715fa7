package parameter

import "time"

// Reel Layout
const (
	// ReelCount is the number of reel columns in the logo
	ReelCount = 3

	// StripRepeat is how many times a reel's icon list is concatenated into its strip
	// The stop target always lands in the second copy so deceleration has a full group of runway
	StripRepeat = 3

	// StopRepetition is the zero-based copy of the icon list a reel comes to rest in
	StopRepetition = 1
)

// Sequencer Timing
const (
	// StartDelay is the stagger between consecutive reels entering the spin
	StartDelay = 150 * time.Millisecond

	// SpinBase is the hold time once every reel is spinning
	SpinBase = 1000 * time.Millisecond

	// StopDelay is the stagger between consecutive reel stops
	StopDelay = 400 * time.Millisecond

	// Wait is the display hold after the last reel stopped
	Wait = 3500 * time.Millisecond

	// StopTransition is the eased deceleration time from spin to the target offset
	StopTransition = 600 * time.Millisecond

	// StopEasing is the CSS timing function of the deceleration
	StopEasing = "cubic-bezier(0.15, 1, 0.3, 1)"

	// SpinLoop is one seamless loop period of the blurred spin (one icon group per loop)
	SpinLoop = 400 * time.Millisecond
)
