package app

import "testing"

func TestFixedStepFirstTickFiresImmediately(t *testing.T) {
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("first tick did not fire")
	}
	if fs.ShouldStep() {
		t.Fatal("second tick fired before a full step elapsed")
	}
}

func TestSetTPSClampsToOne(t *testing.T) {
	fs := NewFixedStep(5)
	fs.SetTPS(0)
	if fs.TPS() != 1 {
		t.Fatalf("TPS = %d after SetTPS(0), expected clamp to 1", fs.TPS())
	}
	fs.SetTPS(-3)
	if fs.TPS() != 1 {
		t.Fatalf("TPS = %d after SetTPS(-3), expected clamp to 1", fs.TPS())
	}
}

func TestTPSReportsRate(t *testing.T) {
	fs := NewFixedStep(5)
	if fs.TPS() != 5 {
		t.Fatalf("TPS = %d, expected 5", fs.TPS())
	}
	fs.SetTPS(12)
	if fs.TPS() != 12 {
		t.Fatalf("TPS = %d after SetTPS(12), expected 12", fs.TPS())
	}
}
