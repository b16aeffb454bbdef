package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Palette. Games pick colors by role; the comments give the slide roles.
const (
	ColorDefault      Color = iota
	ColorRed                // obstacle
	ColorGreen              // actor hitbox
	ColorYellow             // blocked face of the last contact
	ColorWhite              // message boxes
	ColorBrightRed          // obstacle while in contact
	ColorBrightYellow       // actor hitbox while in contact
	ColorBrightWhite        // HUD
	ColorGray               // help line
)
