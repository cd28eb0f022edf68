package skier

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/pautown/llizard-plugins/gamemath"
)

const (
	tagGate     = "gate"
	tagObstacle = "obstacle"

	skierY = 96.0
	skierR = 7.0

	baseSpeed = 150.0
	maxSpeed  = 420.0
	speedRamp = 6.0

	gateGap        = 90.0
	gateH          = 10.0
	gateMinSpacing = 220.0
	gateMaxSpacing = 340.0

	rockMinSpacing = 90.0
	rockMaxSpacing = 170.0

	edgeMargin = 24.0
	spawnLead  = 40.0
	cullLine   = -60.0
)

// gateState rides on a gate sensor's Data so each gate pays out once.
type gateState struct {
	scored bool
}

// obstacleKind rides on an obstacle's Data and picks its sprite.
type obstacleKind string

const (
	kindRock obstacleKind = "rock"
	kindTree obstacleKind = "tree"
)

// course is the headless run: a resolv space holding gate sensors and
// obstacle bodies that slide up past a fixed skier. The plugin glue
// feeds it steering and dt; it answers with score and crash state.
type course struct {
	rng   *gamemath.Rand
	space *resolv.Space

	w, h float64

	skier *resolv.Object
	x     float64

	speed    float64
	traveled float64
	nextGate float64
	nextRock float64

	objects []*resolv.Object

	score   int
	crashed bool
}

func newCourse(seed uint64, w, h float64) *course {
	c := &course{
		rng:      gamemath.NewRand(seed),
		space:    resolv.NewSpace(int(w), int(h)+160, 16, 16),
		w:        w,
		h:        h,
		x:        w / 2,
		speed:    baseSpeed,
		nextGate: 120,
		nextRock: 260,
	}
	c.skier = resolv.NewObject(c.x-skierR, skierY-skierR, skierR*2, skierR*2, "skier")
	c.skier.SetShape(resolv.NewCircle(skierR, skierR, skierR))
	c.space.Add(c.skier)
	return c
}

// steer shifts the skier sideways, clamped to the slope.
func (c *course) steer(dx float64) {
	c.x = gamemath.Clamp(c.x+dx, skierR, c.w-skierR)
}

// advance runs one frame of descent: terrain slides up, new terrain
// enters from the bottom, and the skier is tested against it.
func (c *course) advance(dt float64) {
	if c.crashed {
		return
	}

	dist := c.speed * dt
	c.traveled += dist
	c.speed = math.Min(maxSpeed, c.speed+speedRamp*dt)

	for _, o := range c.objects {
		o.Y -= dist
		o.Update()
	}
	c.cull()

	for c.traveled >= c.nextGate {
		gapX := c.rng.Range(edgeMargin, c.w-edgeMargin-gateGap)
		c.addGate(c.h+spawnLead, gapX)
		c.nextGate += c.rng.Range(gateMinSpacing, gateMaxSpacing)
	}
	for c.traveled >= c.nextRock {
		kind := kindRock
		w, h := 20.0, 16.0
		if c.rng.Chance(0.5) {
			kind, w, h = kindTree, 16.0, 26.0
		}
		x := c.rng.Range(edgeMargin, c.w-edgeMargin-w)
		c.addObstacle(x, c.h+spawnLead, w, h, kind)
		c.nextRock += c.rng.Range(rockMinSpacing, rockMaxSpacing)
	}

	c.skier.X = c.x - skierR
	c.skier.Update()
	c.collide()
}

func (c *course) addGate(y, gapX float64) *resolv.Object {
	o := resolv.NewObject(gapX, y, gateGap, gateH, tagGate)
	o.Data = &gateState{}
	c.space.Add(o)
	c.objects = append(c.objects, o)
	return o
}

func (c *course) addObstacle(x, y, w, h float64, kind obstacleKind) *resolv.Object {
	o := resolv.NewObject(x, y, w, h, tagObstacle)
	o.Data = kind
	c.space.Add(o)
	c.objects = append(c.objects, o)
	return o
}

// cull drops terrain that has scrolled past the top of the screen.
func (c *course) cull() {
	kept := c.objects[:0]
	for _, o := range c.objects {
		if o.Y+o.H < cullLine {
			c.space.Remove(o)
			continue
		}
		kept = append(kept, o)
	}
	c.objects = kept
}

// collide settles this frame's contacts: gate sensors pay once, any
// obstacle touching the skier's circle ends the run.
func (c *course) collide() {
	if check := c.skier.Check(0, 0, tagGate); check != nil {
		for _, o := range check.Objects {
			g := o.Data.(*gateState)
			if g.scored {
				continue
			}
			if boxOverlap(c.skier, o) {
				g.scored = true
				c.score++
			}
		}
	}
	if check := c.skier.Check(0, 0, tagObstacle); check != nil {
		for _, o := range check.Objects {
			if circleRect(c.x, skierY, skierR, o.X, o.Y, o.W, o.H) {
				c.crashed = true
				return
			}
		}
	}
}

func boxOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// circleRect is the precise skier test behind the coarse cell check.
func circleRect(cx, cy, r, rx, ry, rw, rh float64) bool {
	nx := gamemath.Clamp(cx, rx, rx+rw)
	ny := gamemath.Clamp(cy, ry, ry+rh)
	return gamemath.DistSq(cx, cy, nx, ny) < r*r
}
