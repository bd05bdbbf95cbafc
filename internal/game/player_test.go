package game

import (
	"testing"

	"github.com/benchster/floppywaffle2/internal/config"
)

func TestPlayerJumpIsAbsolute(t *testing.T) {
	p := NewPlayer(config.Default())

	// A flap at full fall speed must produce the same impulse as at rest.
	p.VelY = 5
	p.Jump()
	if p.VelY != -6 {
		t.Errorf("Jump at VelY=5 should set VelY=-6, got %v", p.VelY)
	}

	p.VelY = -2
	p.Jump()
	if p.VelY != -6 {
		t.Errorf("Jump while rising should still set VelY=-6, got %v", p.VelY)
	}
}

func TestPlayerGravity(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	y := p.Y
	grounded := p.Update()

	if grounded {
		t.Fatal("Centered player should not touch the ground in one tick")
	}
	if p.VelY != cfg.Physics.Gravity {
		t.Errorf("VelY after one tick = %v, expected %v", p.VelY, cfg.Physics.Gravity)
	}
	if p.Y != y+cfg.Physics.Gravity {
		t.Errorf("Y after one tick = %v, expected %v", p.Y, y+cfg.Physics.Gravity)
	}
}

func TestPlayerHeadBumpAbsorbsMomentum(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	// One tick that would land at y=-3: velocity -3.35 plus gravity 0.35
	// integrates to -3 from y=0.
	p.Y = 0
	p.VelY = -3 - cfg.Physics.Gravity

	if p.Update() {
		t.Fatal("Head bump is not ground contact")
	}
	if p.Y != 0 {
		t.Errorf("Y should be clamped to 0 on the same tick, got %v", p.Y)
	}
	if p.VelY != 0 {
		t.Errorf("VelY should be zeroed by the head bump, got %v", p.VelY)
	}
}

func TestPlayerGroundContactClampsAndReports(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	p.Y = FieldH - p.Height - 1
	p.VelY = 10

	if !p.Update() {
		t.Fatal("Breaching the bottom boundary should report ground contact")
	}
	if p.Y != FieldH-p.Height {
		t.Errorf("Y should be clamped to the floor, got %v", p.Y)
	}
}

func TestPlayerStaysOnFieldUnderAnyInput(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	// Hammer the physics with a jump pattern; the boundary clamp must hold
	// after every tick.
	for i := 0; i < 1000; i++ {
		if i%7 == 0 {
			p.Jump()
		}
		grounded := p.Update()
		if p.Y < 0 || p.Y > FieldH-p.Height {
			t.Fatalf("tick %d: Y=%v escaped [0, %v]", i, p.Y, FieldH-p.Height)
		}
		if grounded {
			p.Reset()
		}
	}
}

func TestPlayerTilt(t *testing.T) {
	p := NewPlayer(config.Default())

	tests := []struct {
		vel, tilt float64
	}{
		{0, 0},
		{5, 15},
		{-5, -15},
		{20, 25},   // clamped
		{-20, -25}, // clamped
	}

	for _, tc := range tests {
		p.VelY = tc.vel
		if got := p.TiltDeg(); got != tc.tilt {
			t.Errorf("TiltDeg at VelY=%v = %v, expected %v", tc.vel, got, tc.tilt)
		}
	}
}

func TestPlayerResetRecenters(t *testing.T) {
	p := NewPlayer(config.Default())

	p.Y = 10
	p.VelY = 8
	p.Reset()

	if p.Y != (FieldH-p.Height)/2 {
		t.Errorf("Reset should re-center vertically, got Y=%v", p.Y)
	}
	if p.VelY != 0 {
		t.Errorf("Reset should zero velocity, got %v", p.VelY)
	}
}
