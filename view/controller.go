package view

import (
	"fmt"

	"github.com/lixenwraith/gyre/anim"
	"github.com/lixenwraith/gyre/core"
	"github.com/lixenwraith/gyre/field"
	"github.com/lixenwraith/gyre/render"
)

// Controller resets camera and time state and reapplies a chosen base
// orientation to all rings. It is the single writer of Ring.BaseQuat.
type Controller struct {
	store  *field.Store
	engine *anim.Engine
	clock  *anim.Clock
	camera *render.Camera

	orientation core.Orientation
}

// NewController wires the reset path across the store, engine, clock
// and camera
func NewController(store *field.Store, engine *anim.Engine, clock *anim.Clock, camera *render.Camera) *Controller {
	return &Controller{
		store:  store,
		engine: engine,
		clock:  clock,
		camera: camera,
	}
}

// Orientation returns the active base orientation
func (c *Controller) Orientation() core.Orientation {
	return c.orientation
}

// Reset restarts the animation clock from zero, drops the active mode
// to none, re-poses the camera, and reassigns every ring's rest pose to
// the chosen reference orientation. BaseQuat is always a full copy of a
// build-time reference (or identity), never an interpolation.
func (c *Controller) Reset(o core.Orientation) error {
	if !o.Valid() {
		return fmt.Errorf("invalid orientation %d", o)
	}

	c.orientation = o
	c.clock.Reset()
	c.engine.SetMode(core.ModeNone)
	c.camera.SetPose(cameraPose(o))

	for _, r := range c.store.Rings() {
		switch o {
		case core.OrientCoplanar:
			r.BaseQuat = r.QuatCop
		case core.OrientFaceOn:
			r.BaseQuat = field.Identity()
		default:
			r.BaseQuat = r.QuatPerp
		}
		r.ResetTransform()
	}
	return nil
}

// cameraPose maps an orientation to its canonical camera placement:
// the coplanar fan reads best from above, the others down the axis
func cameraPose(o core.Orientation) render.Pose {
	if o == core.OrientCoplanar {
		return render.PoseFlower
	}
	return render.PoseTunnel
}
