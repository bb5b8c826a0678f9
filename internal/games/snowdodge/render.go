package snowdodge

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/snow-dodge/internal/core"
)

// Glyphs used by the renderer.
const (
	TreeChar   = '▲'
	TrunkChar  = '╹'
	RockChar   = '●'
	FlagChar   = '⚑'
	RiderChar  = '◉'
	CrashChar  = '✖'
	PuffChar   = '∙'
	StreakChar = '·'
	BankChar   = '░'
	BorderChar = '┃'
)

// GateProgress is the progress after which the finish gate is drawn.
const GateProgress = 0.82

var debrisGlyphs = []rune{'─', '╲', '│', '╱'}

// viewport maps world pixels onto screen cells.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(world World, w, h int) viewport {
	return viewport{
		sx: world.W / float64(w),
		sy: world.H / float64(h),
		w:  w,
		h:  h,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x / v.sx)), int(math.Floor(y / v.sy))
}

// Render draws the engine state into dst.
func Render(dst *core.Screen, e *Engine) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	v := newViewport(e.world, dst.Width(), dst.Height())
	s := e.session

	drawSlope(dst, e, v)
	drawGate(dst, e, v)
	for _, o := range e.obstacles {
		drawObstacle(dst, v, o)
	}
	drawParticles(dst, e, v)
	drawPlayer(dst, e, v)

	if s.Shake > 0 {
		for y := 1; y < v.h-1; y++ {
			dx := int(math.Round(math.Sin(s.Clock*53+float64(y)*1.7) * s.Shake * 2))
			dst.ShiftRow(y, dx)
		}
	}

	drawHUD(dst, e)
	drawBanner(dst, e)
}

func drawSlope(dst *core.Screen, e *Engine, v viewport) {
	w := e.world
	s := e.session
	left, _ := v.cell(w.LaneLeft, 0)
	right, _ := v.cell(w.LaneRight, 0)

	border := core.ColorSky
	if s.Flash > 0.35 {
		border = core.ColorBrightRed
	}

	// Texture scrolls down with the distance travelled.
	scroll := int(s.Distance * e.tuning.Goal.DistanceScale / v.sy)
	for y := 1; y < v.h-1; y++ {
		row := uint32(y - scroll)
		h := hash32(row)

		for x := 0; x < left; x++ {
			dst.SetColored(x, y, BankChar, core.ColorWhite)
		}
		for x := right + 1; x < v.w; x++ {
			dst.SetColored(x, y, BankChar, core.ColorWhite)
		}
		if left > 0 {
			dst.SetColored(left-1, y, BorderChar, border)
		}
		dst.SetColored(right, y, BorderChar, border)

		if span := right - left; span > 2 && h%3 == 0 {
			dst.SetColored(left+1+int(h>>8)%(span-1), y, StreakChar, core.ColorGray)
		}
	}
}

func drawGate(dst *core.Screen, e *Engine, v viewport) {
	s := e.session
	if s.Progress() < GateProgress {
		return
	}
	remaining := (s.Goal - s.Distance) * e.tuning.Goal.DistanceScale
	_, y := v.cell(0, e.player.Y-remaining)
	if y < 1 || y >= v.h-1 {
		return
	}
	left, _ := v.cell(e.world.LaneLeft, 0)
	right, _ := v.cell(e.world.LaneRight, 0)
	for x := left; x < right; x++ {
		c := core.ColorBrightWhite
		if x%2 == 0 {
			c = core.ColorBrightRed
		}
		dst.SetColored(x, y, '▀', c)
	}
	if y > 1 {
		label := "FINISH"
		dst.DrawTextColored((left+right-len(label))/2, y-1, label, core.ColorBrightYellow)
	}
}

func drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	x, y := v.cell(o.X, o.Y)
	if y < 1 || y >= v.h-1 {
		return
	}
	switch o.Kind {
	case KindTree:
		c := core.ColorGreen
		if o.Hit {
			c = core.ColorDarkGray
		}
		dst.SetColored(x, y, TreeChar, c)
		if y+1 < v.h-1 {
			dst.SetColored(x, y+1, TrunkChar, core.ColorBrown)
		}
	case KindRock:
		c := core.ColorGray
		if o.Hit {
			c = core.ColorDarkGray
		}
		dst.SetColored(x, y, RockChar, c)
	case KindFlag:
		c := core.ColorBrightRed
		if o.Hit {
			c = core.ColorDarkGray
		}
		dst.SetColored(x, y, FlagChar, c)
	}
}

func drawParticles(dst *core.Screen, e *Engine, v viewport) {
	for _, p := range e.puffs {
		x, y := v.cell(p.X, p.Y)
		if y >= 1 && y < v.h-1 {
			dst.SetColored(x, y, PuffChar, core.ColorBrightWhite)
		}
	}
	for _, p := range e.debris {
		x, y := v.cell(p.X, p.Y)
		if y < 1 || y >= v.h-1 {
			continue
		}
		i := int(math.Floor(p.Rot/(math.Pi/4))) % len(debrisGlyphs)
		if i < 0 {
			i += len(debrisGlyphs)
		}
		dst.SetColored(x, y, debrisGlyphs[i], core.ColorOrange)
	}
}

func drawPlayer(dst *core.Screen, e *Engine, v viewport) {
	p := e.player
	s := e.session
	x, y := v.cell(p.X, p.Y)

	if s.Phase == PhaseGameOver {
		dst.SetColored(x, y, CrashChar, core.ColorBrightRed)
		return
	}
	if p.Invuln > 0 && int(math.Floor(s.Clock*16))%2 == 0 {
		return
	}

	dst.SetColored(x, y, RiderChar, core.ColorBrightBlue)
	board := "━━━"
	switch {
	case p.Tilt < -0.08:
		board = "▁━▔"
	case p.Tilt > 0.08:
		board = "▔━▁"
	}
	dst.DrawTextColored(x-1, y+1, board, core.ColorRed)
}

func drawHUD(dst *core.Screen, e *Engine) {
	s := e.session
	p := e.player
	w := dst.Width()

	dst.DrawHLine(0, 0, w, ' ', core.ColorDefault)
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += utf8.RuneCountInString(text) + 2
	}

	put(fmt.Sprintf("%4.0fm / %.0fm", s.Distance, s.Goal), core.ColorBrightWhite)
	put(fmt.Sprintf("%3.0f km/h", s.Speed/e.tuning.Goal.DistanceScale*3.6), core.ColorWhite)
	put(strings.Repeat("♥", p.HP)+strings.Repeat("♡", max(p.MaxHP-p.HP, 0)), core.ColorBrightRed)

	const boostCells = 8
	filled := int(math.Round(s.Boost * boostCells))
	put("BOOST "+strings.Repeat("█", filled)+strings.Repeat("░", boostCells-filled), core.ColorCyan)

	// Progress bar along the bottom row.
	bottom := dst.Height() - 1
	if bottom < 1 {
		return
	}
	inner := w - 2
	if inner < 1 {
		return
	}
	dst.DrawHLine(0, bottom, w, ' ', core.ColorDefault)
	done := int(math.Round(s.Progress() * float64(inner)))
	dst.SetColored(0, bottom, '▕', core.ColorGray)
	dst.DrawHLine(1, bottom, done, '█', core.ColorBrightGreen)
	dst.DrawHLine(1+done, bottom, inner-done, '░', core.ColorDarkGray)
	dst.SetColored(w-1, bottom, '▏', core.ColorGray)
}

func drawBanner(dst *core.Screen, e *Engine) {
	s := e.session
	switch s.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, strings.ToUpper(e.tuning.Title), "Enter to start  ←/→ steer  Space boost", core.ColorBrightCyan)
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	case PhaseFinished:
		drawCenteredMessage(dst, "FINISH!",
			fmt.Sprintf("Time %s  Flags %d  |  Enter to ride again", FormatTime(s.Time), s.Stats.Flags),
			core.ColorBrightGreen)
	case PhaseGameOver:
		drawCenteredMessage(dst, "WIPEOUT",
			fmt.Sprintf("%.0fm of %.0fm  |  Enter to retry", s.Distance, s.Goal),
			core.ColorBrightRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, c)
	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}

// FormatTime renders seconds as m:ss.t.
func FormatTime(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	tenths := int(math.Floor(sec * 10))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}

// hash32 scrambles a row index into a stable pseudo-random value.
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}
