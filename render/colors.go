package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/storm-arena/core"
)

// Arena palette
var (
	RgbGround     = core.RGB{R: 38, G: 92, B: 38}
	RgbGrid       = core.RGB{R: 51, G: 128, B: 51}
	RgbOffMap     = core.RGB{R: 10, G: 10, B: 14}
	RgbStorm      = core.RGB{R: 110, G: 40, B: 150}
	RgbZoneEdge   = core.RGB{R: 0, G: 128, B: 255}
	RgbWallStrong = core.RGB{R: 160, G: 110, B: 60}
	RgbWallWeak   = core.RGB{R: 90, G: 60, B: 40}
	RgbPlayer     = core.RGBWhite
	RgbBot        = core.RGB{R: 230, G: 60, B: 60}
	RgbAim        = core.RGBYellow
	RgbPreviewOK  = core.RGB{R: 80, G: 220, B: 80}
	RgbPreviewBad = core.RGB{R: 220, G: 60, B: 60}

	RgbHUDText   = core.RGB{R: 230, G: 230, B: 230}
	RgbHUDDim    = core.RGB{R: 140, G: 140, B: 140}
	RgbHUDBg     = core.RGB{R: 20, G: 20, B: 28}
	RgbHealthBar = core.RGB{R: 60, G: 200, B: 60}
	RgbHealthLow = core.RGB{R: 220, G: 50, B: 50}
	RgbSelected  = core.RGB{R: 255, G: 200, B: 0}
	RgbVictory   = core.RGB{R: 255, G: 215, B: 0}
	RgbDefeat    = core.RGB{R: 200, G: 30, B: 30}
)

// Color converts a core color to a terminal color
func Color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}
