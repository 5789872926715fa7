package parameter

import "time"

// Logo Appearance
const (
	// IconSize is the reel width and icon box height in px
	IconSize = 80

	// GapSize is the horizontal gap between reels in px
	GapSize = 3

	// IconScale is the svg size relative to its box
	IconScale = 0.7

	BackgroundColor = "#f4f4f4"
	IconColor       = "#000000"
	HeartColor      = "#D32F2F"
	AppleColor      = "#000000"
	WaterColor      = "#000000"
)

// Output
const (
	// DefaultOutput is the generated logo document
	DefaultOutput = "haa_logo.html"

	// DefaultAssetsDir holds one sub-directory of svg icons per reel source
	DefaultAssetsDir = "assets/icons"

	// DefaultConfigFile is the external config looked up when no path is given
	DefaultConfigFile = "haa-logo.yaml"

	// EnvPrefix prefixes every environment override
	EnvPrefix = "HAA"
)

// Tuner Pages
const (
	AlienTunerOutput  = "alien_eye_tuner.html"
	HumanTunerOutput  = "human_geometry_tuner.html"
	HumanMotionOutput = "human_motion_debug.html"

	// MotionFirstPlay is the delay before the first trace replay on the motion page
	MotionFirstPlay = 500 * time.Millisecond

	// MotionReplay is the replay period on the motion page
	MotionReplay = 4000 * time.Millisecond
)

// Terminal Preview
const (
	// PreviewFrameInterval is the render tick (~60 FPS)
	PreviewFrameInterval = 16 * time.Millisecond

	// PreviewReelWidth is the column width of a reel in cells
	PreviewReelWidth = 14

	// PreviewReelGap is the gap between reel columns in cells
	PreviewReelGap = 2

	// PreviewCellRows is the height of one icon box in cells
	PreviewCellRows = 3

	// PreviewVisibleRows is the number of icon boxes shown per reel (winner centered)
	PreviewVisibleRows = 3
)
