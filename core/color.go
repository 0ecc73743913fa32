package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Color tags carried by bullets and particles
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBWhite  = RGB{255, 255, 255}
	RGBYellow = RGB{255, 255, 0}
	RGBCyan   = RGB{0, 255, 255}
	RGBOrange = RGB{255, 128, 0}
	RGBGreen  = RGB{0, 255, 0}
	RGBRed    = RGB{255, 0, 0}

	// RGBDebris is wall fragment color
	RGBDebris = RGB{153, 102, 51}

	// RGBImpact is bullet-on-wall spark color
	RGBImpact = RGB{204, 204, 204}

	// RGBBotBullet is the tag on every bot-owned bullet
	RGBBotBullet = RGB{255, 80, 80}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
