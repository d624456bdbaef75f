package render

import (
	"goki.dev/mat32/v2"

	"github.com/lixenwraith/gyre/parameter"
)

// Pose names the two canonical camera placements
type Pose uint8

const (
	// PoseTunnel looks down the Z axis through the ring stacks
	PoseTunnel Pose = iota

	// PoseFlower looks down from above, fanning the field open
	PoseFlower
)

// Camera is the view-manipulation collaborator: a position/target pair
// with damped return to its canonical pose. Commands mutate it only on
// the frame thread.
type Camera struct {
	Pos    mat32.Vec3
	Target mat32.Vec3
	Up     mat32.Vec3

	pose Pose
}

// NewCamera starts at the tunnel pose
func NewCamera() *Camera {
	c := &Camera{}
	c.SetPose(PoseTunnel)
	return c
}

// Pose returns the active canonical pose
func (c *Camera) Pose() Pose {
	return c.pose
}

// SetPose selects a canonical pose and snaps to it
func (c *Camera) SetPose(p Pose) {
	c.pose = p
	c.Reset()
}

// Reset snaps position, target and up to the active pose
func (c *Camera) Reset() {
	c.Target = mat32.V3(0, 0, 0)
	switch c.pose {
	case PoseFlower:
		// Slight Z offset keeps the look direction off the up vector
		c.Pos = mat32.V3(0, parameter.FlowerHeight, 0.01)
		c.Up = mat32.V3(0, 0, -1)
	default:
		c.Pos = mat32.V3(0, 0, parameter.TunnelDistance)
		c.Up = mat32.V3(0, 1, 0)
	}
}

// Update eases the camera back toward its pose anchor. dt in seconds.
func (c *Camera) Update(dt float64) {
	anchor := *c
	anchor.Reset()

	k := float32(parameter.CameraDamping * dt)
	if k > 1 {
		k = 1
	}
	c.Pos = c.Pos.Add(anchor.Pos.Sub(c.Pos).MulScalar(k))
}

// Basis returns the orthonormal view frame (right, up, forward)
func (c *Camera) Basis() (right, up, forward mat32.Vec3) {
	forward = c.Target.Sub(c.Pos).Normal()
	right = forward.Cross(c.Up).Normal()
	up = right.Cross(forward)
	return
}
