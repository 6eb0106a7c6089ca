package germsmash

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/germ-smash/internal/core"
	"github.com/vovakirdan/germ-smash/internal/encounter"
)

// Glyphs, three cells wide to match the entity boxes.
const (
	hazardGlyph      = "{@}"
	collectibleGlyph = "[+]"
	splatGlyph       = "*"
	tinyGermGlyph    = '.'
)

// Button labels, drawn inside a box one cell larger on every side.
const (
	beginLabel   = " Begin "
	winLabel     = " Save another classmate? "
	loseLabel    = " Try Again "
	messageWidth = 60
)

// Render draws the current scene into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	switch g.scene {
	case SceneStart:
		g.renderStart(dst)
	case ScenePlay:
		g.renderPlay(dst)
	case SceneEnd:
		g.renderEnd(dst)
	}
}

func (g *Game) renderStart(dst *core.Screen) {
	h := dst.Height()
	lines := strings.Split(g.cfg.Instructions(), "\n")

	y := h/2 - len(lines) - 2
	dst.DrawTextCenteredColored(y, g.cfg.Title, core.ColorBrightYellow)
	n := utf8.RuneCountInString(g.cfg.Title)
	dst.DrawHLine((dst.Width()-n)/2, y+1, n, '─')
	y += 2
	for _, line := range lines {
		dst.DrawTextCentered(y, line)
		y++
	}

	b := g.beginButton()
	drawButton(dst, b, beginLabel, core.ColorBrightGreen)

	if g.notice != "" {
		dst.DrawTextCenteredColored(b.Bottom(), g.notice, core.ColorBrightRed)
	}
	dst.DrawTextCenteredColored(h-1, "Click Begin or press Enter", core.ColorGray)
}

func (g *Game) renderPlay(dst *core.Screen) {
	w := g.world

	// Target portrait
	x0, y0 := w.CellOf(core.Vec{X: w.target.X, Y: w.target.Y})
	for i, row := range w.portrait {
		dst.DrawTextColored(x0, y0+i, row, core.ColorBrightWhite)
	}

	for _, h := range w.order {
		e := w.entities[h]
		cx, cy := w.CellOf(e.pos)
		if e.kind == kindHazard {
			dst.DrawTextColored(cx-1, cy, hazardGlyph, e.drawColor())
		} else {
			dst.DrawTextColored(cx-1, cy, collectibleGlyph, e.drawColor())
		}
	}

	for _, s := range w.splats {
		cx, cy := w.CellOf(s.pos)
		frac := 1 - float64(s.age)/float64(SmashFade)
		dst.DrawTextColored(cx, cy, splatGlyph, core.Fade(core.ColorBrightRed, frac))
	}

	// HUD
	dst.DrawTextColored(1, 0, w.Label(encounter.LabelScore), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, w.Label(encounter.LabelCollectibles), core.ColorBrightCyan)
	live := germCount(g.ctrl.Snapshot())
	dst.DrawTextColored(dst.Width()-len(live)-1, 0, live, core.ColorGray)

	if g.paused {
		dst.DrawTextCenteredColored(dst.Height()/2-3, "PAUSED (P to resume)", core.ColorBrightYellow)
	}
}

func (g *Game) renderEnd(dst *core.Screen) {
	for _, t := range g.germs {
		dst.SetColored(t.x, t.y, tinyGermGlyph, t.color)
	}

	h := dst.Height()
	title, color := "Oh no! Your classmate caught it.", core.ColorBrightRed
	if g.outcome == encounter.Won {
		title, color = "You protected your classmate!", core.ColorBrightGreen
	}
	y := h/2 - 4
	dst.DrawTextCenteredColored(y, title, color)
	y += 2

	width := min(messageWidth, dst.Width()-4)
	for _, line := range strings.Split(ansi.Wordwrap(g.message, width, ""), "\n") {
		dst.DrawTextCentered(y, line)
		y++
	}

	dst.DrawTextCenteredColored(g.button.Y-1, scoreLine(g.ctrl.Snapshot()), core.ColorBrightWhite)
	drawButton(dst, g.button, g.buttonLabel(), core.ColorBrightYellow)
	dst.DrawTextCenteredColored(h-1, "R/Enter: play again  B: menu  M: sound  Q: quit", core.ColorGray)
}

// drawButton boxes label inside b.
func drawButton(dst *core.Screen, b core.Rect, label string, c core.Color) {
	dst.DrawBoxColored(b, c)
	dst.DrawTextColored(b.X+1, b.Y+1, label, c)
}

func scoreLine(s encounter.Snapshot) string {
	return fmt.Sprintf("Score: %d  Vaccines: %d/%d", s.Score, s.CollectiblesGathered, s.GoalCount)
}

func germCount(s encounter.Snapshot) string {
	return fmt.Sprintf("Germs: %d", s.LiveHazards)
}

func (g *Game) buttonLabel() string {
	if g.outcome == encounter.Won {
		return winLabel
	}
	return loseLabel
}

// beginButton and endButton return the boxed button area, which is also
// the tap target.
func (g *Game) beginButton() core.Rect {
	n := len(beginLabel) + 2
	return core.NewRect((g.runtime.ScreenW-n)/2, g.runtime.ScreenH/2, n, 3)
}

func (g *Game) endButton() core.Rect {
	n := len(g.buttonLabel()) + 2
	return core.NewRect((g.runtime.ScreenW-n)/2, g.runtime.ScreenH-5, n, 3)
}
