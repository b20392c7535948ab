package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	// Unit square in the z=-1 plane facing +Z
	quad := NewQuad(core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 2)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
		expectUV  core.Vec2
		front     bool
	}{
		{"center", core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, -1), true, core.NewVec2(0.5, 0.5), true},
		{"corner u=0 v=0", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), true, core.NewVec2(0, 0), true},
		{"corner u=1 v=1", core.NewVec3(1, 1, 0), core.NewVec3(0, 0, -1), true, core.NewVec2(1, 1), true},
		{"edge u=1 v=0", core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1), true, core.NewVec2(1, 0), true},
		{"from behind", core.NewVec3(0.25, 0.75, -2), core.NewVec3(0, 0, 1), true, core.NewVec2(0.25, 0.75), false},
		{"outside", core.NewVec3(1.5, 0.5, 0), core.NewVec3(0, 0, -1), false, core.Vec2{}, false},
		{"parallel", core.NewVec3(0.5, 0.5, -1), core.NewVec3(1, 0, 0), false, core.Vec2{}, false},
		{"pointing away", core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, 1), false, core.Vec2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := quad.Hit(core.NewRay(tt.origin, tt.direction, 0), fullRange, nil)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.UV.X-tt.expectUV.X) > 1e-9 || math.Abs(hit.UV.Y-tt.expectUV.Y) > 1e-9 {
				t.Errorf("Expected uv %v, got %v", tt.expectUV, hit.UV)
			}
			if hit.FrontFace != tt.front {
				t.Errorf("Expected front face %v, got %v", tt.front, hit.FrontFace)
			}
			if hit.Normal.Dot(tt.direction) >= 0 {
				t.Errorf("Normal %v should face against the ray", hit.Normal)
			}
			if hit.MaterialID != 2 {
				t.Errorf("Expected material 2, got %d", hit.MaterialID)
			}
		})
	}
}

func TestQuad_ClosedRange(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, -1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 0)
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, -1), 0)

	if _, ok := quad.Hit(ray, core.Interval{Min: 0, Max: 1}, nil); !ok {
		t.Error("Expected hit at t equal to the range maximum")
	}
}

func TestQuad_BoundingBox(t *testing.T) {
	quad := NewQuad(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), core.NewVec3(0, 0, 2), 0)
	box := quad.BoundingBox()
	// The flat Y axis is padded so the box still has volume
	expectedMin := core.NewVec3(0, -quadBoxPadding/2, 0)
	expectedMax := core.NewVec3(1, quadBoxPadding/2, 2)
	if !vecClose(box.Min, expectedMin, 1e-12) || !vecClose(box.Max, expectedMax, 1e-12) {
		t.Errorf("Expected box [%v, %v], got %v", expectedMin, expectedMax, box)
	}
}
