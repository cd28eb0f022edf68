package skier

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

func testCourse(seed uint64) *course {
	return newCourse(seed, 800, 480)
}

func TestGatePaysOutExactlyOnce(t *testing.T) {
	c := testCourse(1)
	o := c.addGate(skierY-gateH/2, c.x-gateGap/2)

	c.collide()
	if c.score != 1 {
		t.Fatalf("score = %d after threading a gate, want 1", c.score)
	}
	if !o.Data.(*gateState).scored {
		t.Error("gate not marked scored")
	}

	c.collide()
	if c.score != 1 {
		t.Errorf("score = %d after lingering in the gate, want still 1", c.score)
	}
}

func TestObstacleEndsTheRun(t *testing.T) {
	c := testCourse(1)
	c.addObstacle(c.x-10, skierY-8, 20, 16, kindRock)

	c.collide()
	if !c.crashed {
		t.Fatal("rock through the skier did not crash the run")
	}
}

func TestNearMissSparesTheSkier(t *testing.T) {
	c := testCourse(1)
	// shares a 16px cell with the skier but clears the circle by 4px
	c.addObstacle(c.x+skierR+4, skierY-8, 20, 16, kindRock)

	c.collide()
	if c.crashed {
		t.Fatal("near miss crashed the run")
	}
}

func TestCrashFreezesTheCourse(t *testing.T) {
	c := testCourse(1)
	c.crashed = true
	before := c.traveled

	c.advance(1.0 / 60)
	if c.traveled != before {
		t.Error("crashed course kept travelling")
	}
}

func TestSteerClampsToTheSlope(t *testing.T) {
	c := testCourse(1)

	c.steer(-1e4)
	if c.x != skierR {
		t.Errorf("x = %v at the left edge, want %v", c.x, skierR)
	}
	c.steer(1e4)
	if c.x != c.w-skierR {
		t.Errorf("x = %v at the right edge, want %v", c.x, c.w-skierR)
	}
}

func TestCullDropsPassedTerrain(t *testing.T) {
	c := testCourse(1)
	rock := c.addObstacle(100, -100, 20, 16, kindRock)
	c.addGate(-200, 100)

	c.cull()
	if len(c.objects) != 0 {
		t.Fatalf("objects = %d after cull, want 0", len(c.objects))
	}
	if rock.Space != nil {
		t.Error("culled rock still registered in the space")
	}
}

func TestSpawnerPopulatesTheSlope(t *testing.T) {
	c := testCourse(3)
	for i := 0; i < 600; i++ {
		c.advance(1.0 / 60)
		if c.crashed {
			break
		}
	}

	gates, rocks := 0, 0
	for _, o := range c.objects {
		if o.X < 0 || o.X+o.W > c.w {
			t.Errorf("object at x %v..%v off the slope", o.X, o.X+o.W)
		}
		if o.HasTags(tagGate) {
			gates++
		} else {
			rocks++
		}
	}
	if c.traveled > 600 && (gates == 0 || rocks == 0) {
		t.Errorf("slope after %0.f px: %d gates, %d obstacles", c.traveled, gates, rocks)
	}
}

func snapshot(c *course) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "score=%d crashed=%v speed=%.3f traveled=%.3f\n",
		c.score, c.crashed, c.speed, c.traveled)
	for _, o := range c.objects {
		kind := "gate"
		if !o.HasTags(tagGate) {
			kind = string(o.Data.(obstacleKind))
		}
		fmt.Fprintf(&sb, "%s %.3f %.3f %.0fx%.0f\n", kind, o.X, o.Y, o.W, o.H)
	}
	return sb.String()
}

func TestSeededLayoutsMatch(t *testing.T) {
	run := func(seed uint64) string {
		c := testCourse(seed)
		for i := 0; i < 600; i++ {
			c.steer(3 * math.Sin(float64(i)/9))
			c.advance(1.0 / 60)
		}
		return snapshot(c)
	}

	if run(42) != run(42) {
		t.Fatal("same seed produced different courses")
	}
	if run(42) == run(43) {
		t.Error("different seeds produced identical courses")
	}
}
