package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/core"
	"github.com/lixenwraith/storm-arena/engine"
	"github.com/lixenwraith/storm-arena/parameter"
	"github.com/lixenwraith/storm-arena/status"
	"github.com/lixenwraith/storm-arena/vmath"
)

// Renderer draws the camera view of a simulation into a terminal screen
// Row 0 is the HUD, the last row is the status line, the arena fills the rest
type Renderer struct {
	screen  tcell.Screen
	metrics *status.Registry
	width   int
	height  int
	view    Viewport
}

func NewRenderer(screen tcell.Screen, metrics *status.Registry) *Renderer {
	r := &Renderer{screen: screen, metrics: metrics}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the arena block after a terminal size change
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.view.Col = 0
	r.view.Row = parameter.HUDRows
	r.view.Cols = width
	r.view.Rows = max(0, height-parameter.HUDRows-parameter.StatusRows)
}

// Viewport returns the projection used by the last frame
func (r *Renderer) Viewport() Viewport { return r.view }

// ToWorld maps a screen cell to world coordinates through the current camera
func (r *Renderer) ToWorld(col, row int) (float64, float64) {
	return r.view.ToWorld(col, row)
}

// RenderFrame draws the whole frame and shows it
func (r *Renderer) RenderFrame(sim *engine.Simulation) {
	r.screen.Clear()
	r.view.Camera = sim.Camera()

	if r.view.Cols > 0 && r.view.Rows > 0 {
		r.drawGround(sim)
		r.drawWalls(sim.Walls())
		if sim.Mode() == component.ModeBuild && sim.Player().Materials >= parameter.BuildCost {
			r.drawPreview(sim)
		}
		r.drawParticles(sim.Particles())
		r.drawBullets(sim.PlayerBullets())
		r.drawBullets(sim.BotBullets())
		r.drawBots(sim.Bots())
		r.drawPlayer(sim)
		r.drawAim(sim)
	}

	r.drawHUD(sim)
	r.drawStatusBar(sim)
	if sim.State().Terminal() {
		r.drawBanner(sim)
	}

	r.screen.Show()
}

// drawGround fills every arena cell with ground, grid, storm or zone edge
func (r *Renderer) drawGround(sim *engine.Simulation) {
	w := sim.World()
	z := sim.Zone()
	cw, cellH := r.view.CellSize()
	edge := math.Max(cw, cellH) / 2

	for row := 0; row < r.view.Rows; row++ {
		for col := 0; col < r.view.Cols; col++ {
			x0, y0 := r.view.cellOrigin(col, row)
			cx, cy := x0+cw/2, y0+cellH/2
			sx, sy := r.view.Col+col, r.view.Row+row

			if !w.InBounds(cx, cy) {
				r.screen.SetContent(sx, sy, ' ', nil, style(RgbOffMap, RgbOffMap))
				continue
			}

			bg := RgbGround
			d := vmath.Distance(cx, cy, z.X, z.Y)
			if d > z.Radius {
				bg = RgbGround.Blend(RgbStorm, 0.6)
			}

			ch := ' '
			fg := RgbGrid
			switch {
			case math.Abs(d-z.Radius) <= edge:
				ch, fg = '·', RgbZoneEdge
			case crossesGrid(x0, cw) || crossesGrid(y0, cellH):
				ch = '·'
			}
			r.screen.SetContent(sx, sy, ch, nil, style(fg, bg))
		}
	}
}

// crossesGrid reports whether [v, v+span) contains a grid line
func crossesGrid(v, span float64) bool {
	return math.Floor(v/parameter.GridSpacing) != math.Floor((v+span)/parameter.GridSpacing)
}

// fillRect paints every cell the world rectangle touches
func (r *Renderer) fillRect(rect vmath.Rect, ch rune, st tcell.Style) {
	cw, cellH := r.view.CellSize()
	cam := r.view.Camera

	c0 := int(math.Floor((rect.X - cam.X) / cw))
	c1 := int(math.Ceil((rect.X+rect.W-cam.X)/cw)) - 1
	r0 := int(math.Floor((rect.Y - cam.Y) / cellH))
	r1 := int(math.Ceil((rect.Y+rect.H-cam.Y)/cellH)) - 1

	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, r.view.Cols-1), min(r1, r.view.Rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.screen.SetContent(r.view.Col+col, r.view.Row+row, ch, nil, st)
		}
	}
}

func (r *Renderer) drawWalls(walls []*component.Wall) {
	for _, wall := range walls {
		c := RgbWallWeak.Blend(RgbWallStrong, wall.Integrity())
		r.fillRect(wall.Rect, '█', style(c, RgbGround))
	}
}

func (r *Renderer) drawPreview(sim *engine.Simulation) {
	rect, ok := sim.BuildPreview()
	c := RgbPreviewOK
	if !ok {
		c = RgbPreviewBad
	}
	r.fillRect(rect, '▒', style(c, RgbGround))
}

// plot draws a glyph at a world point, keeping the cell background
func (r *Renderer) plot(x, y float64, ch rune, fg core.RGB) {
	col, row, ok := r.view.ToCell(x, y)
	if !ok {
		return
	}
	_, _, st, _ := r.screen.GetContent(col, row)
	r.screen.SetContent(col, row, ch, nil, st.Foreground(Color(fg)))
}

func (r *Renderer) drawParticles(particles []*component.Particle) {
	for _, p := range particles {
		r.plot(p.X, p.Y, '.', p.Color.Scale(p.Life/parameter.ParticleLifetime))
	}
}

func (r *Renderer) drawBullets(bullets []*component.Bullet) {
	for _, b := range bullets {
		r.plot(b.X, b.Y, '•', b.Color)
	}
}

func (r *Renderer) drawBots(bots []*component.Bot) {
	for _, b := range bots {
		// Wounded bots fade toward the ground color
		c := RgbGround.Blend(RgbBot, 0.4+0.6*b.Health/b.MaxHealth)
		r.plot(b.X, b.Y, '◆', c)
	}
}

func (r *Renderer) drawPlayer(sim *engine.Simulation) {
	p := sim.Player()
	c := RgbPlayer.Blend(core.RGBRed, p.DamageFlash)
	r.plot(p.X, p.Y, '@', c)
}

func (r *Renderer) drawAim(sim *engine.Simulation) {
	in := sim.World().Input
	if sim.Mode() == component.ModeCombat {
		r.plot(in.AimX, in.AimY, '+', RgbAim)
	}
}
