package tui

import (
	"testing"

	"github.com/vovakirdan/trapjump/internal/core"
)

func TestInputCollectorHoldsForTicks(t *testing.T) {
	c := NewInputCollector(3)
	c.Press(core.ActionRight)

	for tick := 0; tick < 3; tick++ {
		if !c.Frame().Has(core.ActionRight) {
			t.Fatalf("right not held on tick %d", tick)
		}
		c.Advance()
	}
	if c.Frame().Has(core.ActionRight) {
		t.Error("right still held after hold window")
	}
}

func TestInputCollectorRepeatRefreshes(t *testing.T) {
	c := NewInputCollector(2)
	c.Press(core.ActionJump)
	c.Advance()
	c.Press(core.ActionJump) // key repeat
	c.Advance()
	if !c.Frame().Has(core.ActionJump) {
		t.Error("repeat should extend the hold")
	}
}

func TestInputCollectorOppositeDirections(t *testing.T) {
	c := NewInputCollector(5)
	c.Press(core.ActionLeft)
	c.Press(core.ActionRight)

	f := c.Frame()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("pressing right should release left: %s", f)
	}

	c.Press(core.ActionLeft)
	f = c.Frame()
	if !f.Has(core.ActionLeft) || f.Has(core.ActionRight) {
		t.Errorf("pressing left should release right: %s", f)
	}
}

func TestInputCollectorRestartIsOneShot(t *testing.T) {
	c := NewInputCollector(8)
	c.Press(core.ActionRestart)
	if !c.Frame().Has(core.ActionRestart) {
		t.Fatal("restart not set")
	}
	c.Advance()
	if c.Frame().Has(core.ActionRestart) {
		t.Error("restart should only last one tick")
	}
}

func TestInputCollectorIgnoresNonGameActions(t *testing.T) {
	c := NewInputCollector(4)
	c.Press(core.ActionNone)
	c.Press(core.ActionQuit)
	if !c.Frame().Empty() {
		t.Errorf("unexpected actions: %s", c.Frame())
	}
}

func TestInputCollectorRelease(t *testing.T) {
	c := NewInputCollector(10)
	c.Press(core.ActionLeft)
	c.Press(core.ActionJump)
	c.Release()
	if !c.Frame().Empty() {
		t.Errorf("Release left actions: %s", c.Frame())
	}
}

func TestInputCollectorMinimumHold(t *testing.T) {
	c := NewInputCollector(0)
	c.Press(core.ActionLeft)
	if !c.Frame().Has(core.ActionLeft) {
		t.Error("a press must be held for at least one tick")
	}
}
