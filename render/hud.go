package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
	"github.com/lixenwraith/storm-arena/status"
)

const healthBarWidth = 10

// drawText writes s from (x, y) clipped to the screen, returning the next column
func (r *Renderer) drawText(x, y int, s string, st tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, st)
		}
		x++
	}
	return x
}

func (r *Renderer) clearRow(y int, st tcell.Style) {
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, st)
	}
}

// healthBar renders a fixed-width block bar for value/maxValue
func healthBar(value, maxValue float64) string {
	filled := 0
	if maxValue > 0 {
		filled = int(value / maxValue * healthBarWidth)
	}
	filled = min(max(filled, 0), healthBarWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", healthBarWidth-filled)
}

// drawHUD writes the stats line on row 0
func (r *Renderer) drawHUD(sim *engine.Simulation) {
	if r.height < 1 {
		return
	}
	base := style(RgbHUDText, RgbHUDBg)
	r.clearRow(0, base)

	p := sim.Player()
	barColor := RgbHealthBar
	if p.Health < p.MaxHealth/4 {
		barColor = RgbHealthLow
	}

	x := r.drawText(0, 0, fmt.Sprintf(" HP %3.0f ", p.Health), base)
	x = r.drawText(x, 0, healthBar(p.Health, p.MaxHealth), style(barColor, RgbHUDBg))

	z := sim.Zone()
	elapsed := int(sim.Elapsed())
	x = r.drawText(x, 0, fmt.Sprintf(" MAT %d  MED %d  KILLS %d  BOTS %d  ZONE %.0f ",
		p.Materials, p.Medkits, p.Kills, len(sim.Bots()), z.Radius), base)
	x = r.drawText(x, 0, healthBar(1-z.Progress(), 1), style(RgbZoneEdge, RgbHUDBg))
	r.drawText(x, 0, fmt.Sprintf(" %02d:%02d", elapsed/60, elapsed%60), base)
}

// drawStatusBar writes the weapon list, mode and counters on the last row
func (r *Renderer) drawStatusBar(sim *engine.Simulation) {
	y := r.height - 1
	if y < parameter.HUDRows {
		return
	}
	base := style(RgbHUDText, RgbHUDBg)
	dim := style(RgbHUDDim, RgbHUDBg)
	r.clearRow(y, base)

	x := 1
	for i, spec := range parameter.Weapons() {
		label := fmt.Sprintf("%d %s", i+1, spec.Name)
		st := dim
		if i == sim.SelectedWeapon() {
			label = "[" + label + "]"
			st = style(RgbSelected, RgbHUDBg)
		} else {
			label = " " + label + " "
		}
		x = r.drawText(x, y, label, st) + 1
	}

	mode := strings.ToUpper(sim.Mode().String())
	if sim.Mode() == component.ModeBuild {
		mode += fmt.Sprintf(" rot %d", sim.BuildRotation())
	}
	x = r.drawText(x+1, y, mode, base)

	if r.metrics != nil {
		ticks := r.metrics.Ints.Get(status.KeyTicks).Load()
		fps := r.metrics.Floats.Get(status.KeyFPS).Get()
		r.drawText(x+2, y, fmt.Sprintf("fps %.0f  tick %d", fps, ticks), dim)
	}
}

// drawBanner centers the match outcome over the arena
func (r *Renderer) drawBanner(sim *engine.Simulation) {
	msg := fmt.Sprintf(" ELIMINATED  kills %d  press Enter to restart ", sim.Kills())
	c := RgbDefeat
	if sim.State() == engine.StateWon {
		msg = fmt.Sprintf(" VICTORY ROYALE  kills %d  press Enter to play again ", sim.Kills())
		c = RgbVictory
	}
	n := len([]rune(msg))
	r.drawText((r.width-n)/2, r.height/2, msg, style(RgbHUDBg, c))
}
