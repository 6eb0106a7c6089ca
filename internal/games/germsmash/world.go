package germsmash

import (
	"time"

	"github.com/vovakirdan/germ-smash/internal/core"
	"github.com/vovakirdan/germ-smash/internal/encounter"
)

// Entity sizes in world units.
const (
	hazardW      = 30
	hazardH      = 20
	collectibleW = 30
	collectibleH = 20
)

const (
	// SmashFade is how long a smash splat stays on screen.
	SmashFade = 500 * time.Millisecond
	// SpawnFade is how long a new germ takes to reach full color.
	SpawnFade = 500 * time.Millisecond
)

// Sounder plays effects. *audio.Player satisfies it.
type Sounder interface {
	PlaySound(s encounter.Sound) bool
}

type entityKind int

const (
	kindHazard entityKind = iota
	kindCollectible
)

type entity struct {
	kind  entityKind
	pos   core.Vec // center
	vel   core.Vec // world units per second
	w, h  float64
	color core.Color
	age   time.Duration
}

func (e *entity) bounds() core.RectF {
	return core.CenteredRect(e.pos, e.w, e.h)
}

// drawColor is e's color at its current age. Germs start gray and take
// SpawnFade to brighten; the first frame is never the plain default color.
func (e *entity) drawColor() core.Color {
	if e.kind != kindHazard || e.age >= SpawnFade {
		return e.color
	}
	return core.Fade(e.color, max(float64(e.age)/float64(SpawnFade), 0.01))
}

type splat struct {
	pos core.Vec
	age time.Duration
}

// World is the play field the encounter controller drives. It owns entity
// positions and motion and maps between terminal cells and world units.
type World struct {
	width, height float64
	cellW, cellH  float64

	entities map[encounter.Handle]*entity
	order    []encounter.Handle // creation order
	next     encounter.Handle

	portrait []string
	target   core.RectF

	splats []splat
	labels map[encounter.Label]string

	sounder Sounder
	halted  bool

	outcome      encounter.Outcome
	transitioned bool
}

// NewWorld creates a world covering cols x rows terminal cells, each cell
// cellW x cellH world units.
func NewWorld(cols, rows int, cellW, cellH float64, sounder Sounder) *World {
	w := &World{
		width:   float64(cols) * cellW,
		height:  float64(rows) * cellH,
		cellW:   cellW,
		cellH:   cellH,
		sounder: sounder,
	}
	w.Reset(portraits[0])
	return w
}

// Reset clears every entity, effect and label and places portrait as the
// target at the center of the field.
func (w *World) Reset(portrait []string) {
	w.entities = make(map[encounter.Handle]*entity)
	w.order = w.order[:0]
	w.splats = w.splats[:0]
	w.labels = make(map[encounter.Label]string)
	w.halted = false
	w.outcome = encounter.Ongoing
	w.transitioned = false

	// The target box is aligned to whole cells so it matches the drawn portrait.
	w.portrait = portrait
	pw, ph := portraitSize(portrait)
	cols, rows := int(w.width/w.cellW), int(w.height/w.cellH)
	w.target = core.RectF{
		X: float64((cols-pw)/2) * w.cellW,
		Y: float64((rows-ph)/2) * w.cellH,
		W: float64(pw) * w.cellW,
		H: float64(ph) * w.cellH,
	}
}

// Width returns the field width in world units.
func (w *World) Width() float64 { return w.width }

// Height returns the field height in world units.
func (w *World) Height() float64 { return w.height }

// CellCenter converts a terminal cell to the world point at its center.
func (w *World) CellCenter(x, y int) encounter.Point {
	return encounter.Point{X: (float64(x) + 0.5) * w.cellW, Y: (float64(y) + 0.5) * w.cellH}
}

// CellOf converts a world position to the terminal cell containing it.
func (w *World) CellOf(p core.Vec) (int, int) {
	return int(p.X / w.cellW), int(p.Y / w.cellH)
}

func (w *World) add(kind entityKind, at encounter.Point, width, height float64, color core.Color) encounter.Handle {
	w.next++
	w.entities[w.next] = &entity{
		kind:  kind,
		pos:   core.Vec{X: at.X, Y: at.Y},
		w:     width,
		h:     height,
		color: color,
	}
	w.order = append(w.order, w.next)
	return w.next
}

func (w *World) CreateHazard(at encounter.Point) encounter.Handle {
	c := core.GermColors[int(w.next)%len(core.GermColors)]
	return w.add(kindHazard, at, hazardW, hazardH, c)
}

func (w *World) CreateCollectible(at encounter.Point) encounter.Handle {
	return w.add(kindCollectible, at, collectibleW, collectibleH, core.ColorBrightCyan)
}

// DestroyEntity removes h. Unknown handles are ignored.
func (w *World) DestroyEntity(h encounter.Handle) {
	if _, ok := w.entities[h]; !ok {
		return
	}
	delete(w.entities, h)
	for i, id := range w.order {
		if id == h {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// MoveEntityToward sets h's velocity toward target. It does not move h;
// Step integrates.
func (w *World) MoveEntityToward(h encounter.Handle, target encounter.Point, speed float64) {
	e, ok := w.entities[h]
	if !ok || w.halted {
		return
	}
	e.vel = core.Toward(e.pos, core.Vec{X: target.X, Y: target.Y}, speed)
}

func (w *World) EntityBoundsContain(h encounter.Handle, p encounter.Point) bool {
	e, ok := w.entities[h]
	if !ok {
		return false
	}
	return e.bounds().Contains(core.Vec{X: p.X, Y: p.Y})
}

func (w *World) TargetPosition() encounter.Point {
	c := w.target.Center()
	return encounter.Point{X: c.X, Y: c.Y}
}

// ShowSmash leaves a fading splat where h is.
func (w *World) ShowSmash(h encounter.Handle) {
	if e, ok := w.entities[h]; ok {
		w.splats = append(w.splats, splat{pos: e.pos})
	}
}

func (w *World) HaltMotion() {
	w.halted = true
	for _, e := range w.entities {
		e.vel = core.Vec{}
	}
}

func (w *World) SetText(label encounter.Label, text string) {
	w.labels[label] = text
}

func (w *World) PlaySound(s encounter.Sound) {
	if w.sounder != nil {
		w.sounder.PlaySound(s)
	}
}

func (w *World) TransitionToOutcome(o encounter.Outcome) {
	w.outcome = o
	w.transitioned = true
}

// Step integrates motion over dt and ages entities and splats.
func (w *World) Step(dt time.Duration) {
	secs := dt.Seconds()
	for _, h := range w.order {
		e := w.entities[h]
		e.age += dt
		if !w.halted {
			e.pos = e.pos.Add(e.vel.Scale(secs))
		}
	}

	live := w.splats[:0]
	for _, s := range w.splats {
		s.age += dt
		if s.age < SmashFade {
			live = append(live, s)
		}
	}
	w.splats = live
}

// Overlaps returns how many hazards currently touch the target.
func (w *World) Overlaps() int {
	n := 0
	for _, h := range w.order {
		e := w.entities[h]
		if e.kind == kindHazard && e.bounds().Intersects(w.target) {
			n++
		}
	}
	return n
}

// Transitioned reports whether the controller has ended the session, and how.
func (w *World) Transitioned() (encounter.Outcome, bool) {
	return w.outcome, w.transitioned
}

// Label returns the text last set for label.
func (w *World) Label(label encounter.Label) string {
	return w.labels[label]
}

// Halted reports whether motion has been frozen.
func (w *World) Halted() bool { return w.halted }

var _ encounter.Presentation = (*World)(nil)
