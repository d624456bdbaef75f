package field

import (
	"goki.dev/mat32/v2"

	"github.com/lixenwraith/gyre/parameter"
)

// Canonical frame the orientation math is expressed in.
// A ring's geometry lies in the local XY plane facing +Z.
var (
	forward = mat32.V3(0, 0, 1)
	worldUp = mat32.V3(0, 1, 0)
	right   = mat32.V3(1, 0, 0)
)

// Perpendicular returns the quaternion rotating canonical forward onto
// dir, so the ring plane sits perpendicular to its axis.
// The parallel and anti-parallel cases are explicit branches; neither
// may ever produce a degenerate quaternion.
func Perpendicular(dir mat32.Vec3) mat32.Quat {
	dot := forward.Dot(dir)

	if dot > parameter.ForwardAlignEpsilon {
		return Identity()
	}
	if dot < -parameter.ForwardAlignEpsilon {
		// Any perpendicular axis works for the half-turn
		return mat32.NewQuatAxisAngle(worldUp, mat32.Pi)
	}

	q := mat32.Quat{}
	q.SetFromUnitVectors(forward, dir)
	return q
}

// Coplanar returns the quaternion rotating canonical forward onto a
// tangent orthogonal to dir, laying the ring plane along its axis.
// The fallback cross axis avoids a degenerate product when dir is
// near-parallel to world up.
func Coplanar(dir mat32.Vec3) mat32.Quat {
	var tangent mat32.Vec3
	if mat32.Abs(dir.Dot(worldUp)) <= parameter.UpAlignLimit {
		tangent = dir.Cross(worldUp).Normal()
	} else {
		tangent = dir.Cross(right).Normal()
	}

	q := mat32.Quat{}
	q.SetFromUnitVectors(forward, tangent)
	return q
}

// Identity returns the face-on orientation
func Identity() mat32.Quat {
	return mat32.NewQuat(0, 0, 0, 1)
}
