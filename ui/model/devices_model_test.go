package model

import (
	"testing"

	"github.com/soocke/campip-go/domain/device"
)

func TestDevicesModelFirstRenderAlwaysRebuilds(t *testing.T) {
	m := NewDevicesModel()
	if !m.NeedsRebuild(nil, "") {
		t.Fatalf("expected rebuild before first render")
	}
	m.MarkRendered(nil, "")
	if m.NeedsRebuild(nil, "") {
		t.Fatalf("expected no rebuild after rendering identical state")
	}
}

func TestDevicesModelDetectsChanges(t *testing.T) {
	a := device.Device{ID: "a", Name: "Cam A"}
	b := device.Device{ID: "b", Name: "Cam B"}
	m := NewDevicesModel()
	m.MarkRendered(device.List{a, b}, "a")

	if m.NeedsRebuild(device.List{a, b}, "a") {
		t.Fatalf("unchanged state should not rebuild")
	}
	if !m.NeedsRebuild(device.List{a, b}, "b") {
		t.Fatalf("current change should rebuild")
	}
	if !m.NeedsRebuild(device.List{a}, "a") {
		t.Fatalf("removal should rebuild")
	}
	renamed := device.Device{ID: "b", Name: "Cam B (USB)"}
	if !m.NeedsRebuild(device.List{a, renamed}, "a") {
		t.Fatalf("rename should rebuild")
	}
}

func TestDevicesModelRenderedCopies(t *testing.T) {
	src := device.List{{ID: "a", Name: "Cam A"}}
	m := NewDevicesModel()
	m.MarkRendered(src, "a")
	src[0].Name = "mutated"
	if got := m.Rendered()[0].Name; got != "Cam A" {
		t.Fatalf("rendered list aliases caller slice: %q", got)
	}
}
