package render

import (
	"testing"

	"goki.dev/mat32/v2"
)

func TestCameraPoses(t *testing.T) {
	c := NewCamera()
	if c.Pose() != PoseTunnel {
		t.Fatalf("fresh camera in pose %v, want tunnel", c.Pose())
	}
	if c.Pos.Z <= 0 {
		t.Errorf("tunnel camera at %v, want positive Z", c.Pos)
	}

	c.SetPose(PoseFlower)
	if c.Pos.Y <= 0 {
		t.Errorf("flower camera at %v, want above the field", c.Pos)
	}
	if c.Target != mat32.V3(0, 0, 0) {
		t.Errorf("target %v, want origin", c.Target)
	}
}

func TestCameraBasisOrthonormal(t *testing.T) {
	for _, pose := range []Pose{PoseTunnel, PoseFlower} {
		c := NewCamera()
		c.SetPose(pose)
		right, up, forward := c.Basis()

		for name, v := range map[string]mat32.Vec3{
			"right": right, "up": up, "forward": forward,
		} {
			if mat32.Abs(v.Length()-1) > epsilon {
				t.Errorf("pose %v: %s not unit length: %v", pose, name, v.Length())
			}
		}
		if mat32.Abs(right.Dot(up)) > epsilon ||
			mat32.Abs(right.Dot(forward)) > epsilon ||
			mat32.Abs(up.Dot(forward)) > epsilon {
			t.Errorf("pose %v: basis not orthogonal", pose)
		}

		// Forward points from the camera at the target
		want := c.Target.Sub(c.Pos).Normal()
		if forward.Sub(want).Length() > epsilon {
			t.Errorf("pose %v: forward %v, want %v", pose, forward, want)
		}
	}
}

func TestCameraUpdateConvergesToAnchor(t *testing.T) {
	c := NewCamera()
	anchor := c.Pos

	c.Pos = mat32.V3(3, 2, 12)
	before := c.Pos.Sub(anchor).Length()

	c.Update(0.1)
	after := c.Pos.Sub(anchor).Length()
	if after >= before {
		t.Errorf("update moved away from anchor: %v -> %v", before, after)
	}

	// Large dt clamps to a full snap rather than overshooting
	c.Update(10)
	if c.Pos.Sub(anchor).Length() > epsilon {
		t.Errorf("large step did not snap to anchor: %v", c.Pos)
	}
}
