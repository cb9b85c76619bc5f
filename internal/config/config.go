package config

import (
	"math"
	"time"
)

const (
	AppID       = "com.github.iburimskiy.confetti"
	AppName     = "confetti"
	WindowTitle = "Confetti"

	// Animation timing
	ParticleCount = 300
	Duration      = 4 * time.Second
	FadeDuration  = 1 * time.Second
	FrameRate     = 60

	// Physics, in pixels and seconds
	Gravity = 600.0
	Drag    = 0.99

	// Launch parameters
	StartYMin      = 0.3
	StartYMax      = 0.7
	TargetSpreadX  = 200.0
	TargetYMin     = 0.2
	TargetYMax     = 0.5
	LaunchSpeedMin = 800.0
	LaunchSpeedMax = 1500.0
	PopMin         = 200.0
	PopMax         = 500.0

	// Piece dimensions
	PieceWidthMin  = 8.0
	PieceWidthMax  = 16.0
	PieceHeightMin = 12.0
	PieceHeightMax = 24.0
	SpinMax        = 10.0
	FullTurn       = 2 * math.Pi

	// Sound
	SampleRate    = 44100
	PopLength     = 250 * time.Millisecond
	DefaultVolume = 0.6
)
