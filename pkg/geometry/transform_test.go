package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestTranslate(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, 3)
	moved := NewTranslate(sphere, core.NewVec3(5, 0, 0))

	box := moved.BoundingBox()
	if box.Min != core.NewVec3(4, -1, -1) || box.Max != core.NewVec3(6, 1, 1) {
		t.Errorf("Unexpected translated box %v", box)
	}

	ray := core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 0, -1), 0)
	hit, ok := moved.Hit(ray, fullRange, nil)
	if !ok {
		t.Fatal("Expected hit on translated sphere")
	}
	if !vecClose(hit.Point, core.NewVec3(5, 0, 1), 1e-9) {
		t.Errorf("Expected world-space hit point (5,0,1), got %v", hit.Point)
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}

	// The original position is now empty
	if _, ok := moved.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0), fullRange, nil); ok {
		t.Error("Expected miss at the untranslated position")
	}
}

func TestRotateY_Identity(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	quad := NewQuad(core.NewVec3(-1, -1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0.5), 0)

	for _, angle := range []float64{0, 360} {
		rotated := NewRotateY(quad, angle)
		for i := 0; i < 200; i++ {
			origin := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, 3)
			ray := core.NewRay(origin, core.NewVec3(random.Float64()*0.2-0.1, random.Float64()*0.2-0.1, -1), 0)

			want, wantOK := quad.Hit(ray, fullRange, nil)
			got, gotOK := rotated.Hit(ray, fullRange, nil)
			if wantOK != gotOK {
				t.Fatalf("angle %g: hit mismatch %v vs %v", angle, wantOK, gotOK)
			}
			if wantOK && (!vecClose(want.Point, got.Point, 1e-9) || !vecClose(want.Normal, got.Normal, 1e-9)) {
				t.Fatalf("angle %g: expected %v/%v, got %v/%v", angle, want.Point, want.Normal, got.Point, got.Normal)
			}
		}
	}
}

func TestRotateY_QuarterTurn(t *testing.T) {
	// A unit quad facing +Z, rotated 90 degrees, faces +X
	quad := NewQuad(core.NewVec3(-0.5, -0.5, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 0)
	rotated := NewRotateY(quad, 90)

	box := rotated.BoundingBox()
	if math.Abs(box.Min.X) > quadBoxPadding || math.Abs(box.Max.X) > quadBoxPadding {
		t.Errorf("Expected rotated quad to lie in x=0, got box %v", box)
	}
	if math.Abs(box.Min.Z+0.5) > 1e-9 || math.Abs(box.Max.Z-0.5) > 1e-9 {
		t.Errorf("Expected rotated quad to span z in [-0.5,0.5], got box %v", box)
	}

	ray := core.NewRay(core.NewVec3(5, 0.1, 0.2), core.NewVec3(-1, 0, 0), 0)
	hit, ok := rotated.Hit(ray, fullRange, nil)
	if !ok {
		t.Fatal("Expected hit on rotated quad")
	}
	if !vecClose(hit.Point, core.NewVec3(0, 0.1, 0.2), 1e-9) {
		t.Errorf("Expected hit point (0,0.1,0.2), got %v", hit.Point)
	}
	if !vecClose(hit.Normal, core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected normal (1,0,0), got %v", hit.Normal)
	}
	if !hit.FrontFace {
		t.Error("Expected front face after rotation")
	}

	// The unrotated orientation no longer blocks rays along Z
	if _, ok := rotated.Hit(core.NewRay(core.NewVec3(0.3, 0, 5), core.NewVec3(0, 0, -1), 0), fullRange, nil); ok {
		t.Error("Expected miss along the original facing direction")
	}
}

func TestRotateY_DoesNotMutateInnerHit(t *testing.T) {
	inner := &fixedHit{record: core.HitRecord{Point: core.NewVec3(1, 0, 0), Normal: core.NewVec3(1, 0, 0), T: 1}}
	rotated := NewRotateY(inner, 90)

	rotated.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 0), fullRange, nil)
	if inner.record.Point != core.NewVec3(1, 0, 0) {
		t.Errorf("Inner record was modified: %v", inner.record.Point)
	}
}

// fixedHit always returns a pointer to the same record
type fixedHit struct {
	record core.HitRecord
}

func (f *fixedHit) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*core.HitRecord, bool) {
	return &f.record, true
}

func (f *fixedHit) BoundingBox() core.AABB {
	return core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1))
}
