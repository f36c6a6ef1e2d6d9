package config

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Frames per second of the ebiten loop; particle lifetimes are in ticks.
	TPS = 60

	// Music toggle button, anchored to the bottom-right corner
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonMargin = 24

	// Scroll indicator on the right edge
	IndicatorWidth  = 6
	IndicatorMargin = 10

	// Each section of the virtual page is this tall
	SectionHeight = 640

	// Scroll spring
	ScrollStep      = 80.0
	ScrollFrequency = 6.0
	ScrollDamping   = 1.0

	ToastSeconds = 3
)
