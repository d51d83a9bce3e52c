package config

// ANSI 256 color codes for component log prefixes.
const (
	ColorRed     uint8 = 9
	ColorGreen   uint8 = 10
	ColorMagenta uint8 = 13
	ColorCyan    uint8 = 14
)
