package config

import "time"

const (
	// Terminal raster: one cell covers CellWidthPx × CellHeightPx viewport
	// pixels (chars are ~2:1 tall).
	CellWidthPx  = 8.0
	CellHeightPx = 16.0

	TargetFPS = 30 // frame clock of the terminal host

	// Offline render defaults
	RenderWidth  = 600
	RenderHeight = 600

	// Frame-time history shown in the status bar
	FrameHistory = 30

	// Debounce for config file reloads
	ReloadDebounce = 150 * time.Millisecond

	// App
	AppName    = "DIAL-SWEEP"
	AppVersion = "1.0"
	EnvPrefix  = "DIALSWEEP"
)
