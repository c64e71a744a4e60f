package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Pose is a transform decomposed into an origin and orthonormal axes, the
// form CAD viewers consume directly (a construction plane).
type Pose struct {
	Origin r3.Vector
	AxisX  r3.Vector
	AxisY  r3.Vector
	AxisZ  r3.Vector
}

// Pose decomposes the transform into origin plus world-space axes.
func (t Transform) Pose() Pose {
	return Pose{
		Origin: t.ApplyPoint(r3.Vector{}),
		AxisX:  t.ApplyVector(r3.Vector{X: 1}),
		AxisY:  t.ApplyVector(r3.Vector{Y: 1}),
		AxisZ:  t.ApplyVector(r3.Vector{Z: 1}),
	}
}

// EulerAngles represents a roll-pitch-yaw triple in radians, fixed-axis
// (extrinsic) ZYX convention: the rotation is Rz(yaw) * Ry(pitch) * Rx(roll).
type EulerAngles struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// Transform returns the rotation described by the angles.
func (ea EulerAngles) Transform() Transform {
	return NewRotationRPY(ea.Roll, ea.Pitch, ea.Yaw)
}

// Quaternion returns the rotation in quaternion representation, composed from
// the three axis rotations yaw-pitch-roll.
func (ea EulerAngles) Quaternion() quat.Number {
	qz := quat.Number{Real: math.Cos(ea.Yaw / 2), Kmag: math.Sin(ea.Yaw / 2)}
	qy := quat.Number{Real: math.Cos(ea.Pitch / 2), Jmag: math.Sin(ea.Pitch / 2)}
	qx := quat.Number{Real: math.Cos(ea.Roll / 2), Imag: math.Sin(ea.Roll / 2)}
	return quat.Mul(quat.Mul(qz, qy), qx)
}

// EulerAngles extracts roll-pitch-yaw from the rotation block of the
// transform, inverting the ZYX composition. At the pitch singularity
// (|cos(pitch)| < 1e-9) roll is fixed to zero and yaw absorbs the remaining
// rotation.
func (t Transform) EulerAngles() EulerAngles {
	r11 := t.At(0, 0)
	r12 := t.At(0, 1)
	r21 := t.At(1, 0)
	r22 := t.At(1, 1)
	r31 := t.At(2, 0)
	r32 := t.At(2, 1)
	r33 := t.At(2, 2)

	sy := math.Sqrt(r11*r11 + r21*r21)
	if sy < 1e-9 {
		// gimbal lock
		return EulerAngles{
			Roll:  0,
			Pitch: math.Atan2(-r31, sy),
			Yaw:   math.Atan2(-r12, r22),
		}
	}
	return EulerAngles{
		Roll:  math.Atan2(r32, r33),
		Pitch: math.Atan2(-r31, sy),
		Yaw:   math.Atan2(r21, r11),
	}
}

// QuaternionAlmostEqual reports whether two unit quaternions represent nearly
// the same rotation, accounting for the double cover (q and -q are equal).
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	prod := math.Abs(a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag)
	return prod > 1-tol
}
