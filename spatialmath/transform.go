// Package spatialmath implements the rigid-transform math underneath the
// urdfkit kinematics packages. Transforms are 4x4 homogeneous matrices with a
// column-vector convention: a point p transforms as M * p, so in a product
// A * B the transform B is applied first.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Transform is a 4x4 homogeneous transform. The zero value is not valid; use
// NewTransform for an identity. Rotation sub-blocks are never
// re-orthonormalized; composed rotations are trusted to stay orthonormal.
type Transform struct {
	mat mgl64.Mat4
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{mgl64.Ident4()}
}

// NewTranslation returns a pure translation.
func NewTranslation(v r3.Vector) Transform {
	return Transform{mgl64.Translate3D(v.X, v.Y, v.Z)}
}

// NewRotationRPY returns the rotation Rz(yaw) * Ry(pitch) * Rx(roll), the
// fixed-axis ZYX convention used by URDF origin rpy attributes. All angles
// are in radians.
func NewRotationRPY(roll, pitch, yaw float64) Transform {
	return Transform{
		mgl64.HomogRotate3DZ(yaw).Mul4(
			mgl64.HomogRotate3DY(pitch).Mul4(
				mgl64.HomogRotate3DX(roll))),
	}
}

// NewRotationAxisAngle returns a rotation of angle radians about the given
// axis. The axis need not be unit length. A zero-length axis yields the
// identity rather than an error; callers treat it as zero motion.
func NewRotationAxisAngle(axis r3.Vector, angle float64) Transform {
	if axis.Norm() == 0 {
		return NewTransform()
	}
	u := axis.Normalize()
	return Transform{mgl64.HomogRotate3D(angle, mgl64.Vec3{u.X, u.Y, u.Z})}
}

// NewScale returns a per-axis scale about the origin. Scales are non-rigid
// and are only ever applied to visual geometry, never to link frames.
func NewScale(sx, sy, sz float64) Transform {
	return Transform{mgl64.Scale3D(sx, sy, sz)}
}

// Compose multiplies the given transforms left to right, so the last argument
// is applied first. Compose() is the identity.
func Compose(transforms ...Transform) Transform {
	out := NewTransform()
	for _, t := range transforms {
		out.mat = out.mat.Mul4(t.mat)
	}
	return out
}

// Mul returns t * other.
func (t Transform) Mul(other Transform) Transform {
	return Transform{t.mat.Mul4(other.mat)}
}

// ApplyPoint transforms a 3D point, including translation.
func (t Transform) ApplyPoint(p r3.Vector) r3.Vector {
	v := t.mat.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	if w := v.W(); w != 0 && w != 1 {
		return r3.Vector{X: v.X() / w, Y: v.Y() / w, Z: v.Z() / w}
	}
	return r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// ApplyVector transforms a direction vector, ignoring translation.
func (t Transform) ApplyVector(v r3.Vector) r3.Vector {
	out := t.mat.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 0})
	return r3.Vector{X: out.X(), Y: out.Y(), Z: out.Z()}
}

// Translation returns the translation component.
func (t Transform) Translation() r3.Vector {
	return r3.Vector{X: t.mat.At(0, 3), Y: t.mat.At(1, 3), Z: t.mat.At(2, 3)}
}

// InvertRigid returns the inverse of t assuming t is a rigid
// rotation+translation: the rotation block is transposed and the translation
// negated through it. The result is undefined for scaled transforms.
func (t Transform) InvertRigid() Transform {
	rt := t.mat.Mat3().Transpose()
	trans := rt.Mul3x1(mgl64.Vec3{t.mat.At(0, 3), t.mat.At(1, 3), t.mat.At(2, 3)}).Mul(-1)
	out := rt.Mat4()
	out.Set(0, 3, trans.X())
	out.Set(1, 3, trans.Y())
	out.Set(2, 3, trans.Z())
	return Transform{out}
}

// At returns the matrix entry at the given row and column.
func (t Transform) At(row, col int) float64 {
	return t.mat.At(row, col)
}

// Mat4 returns the underlying matrix, for adapters that need the raw values.
func (t Transform) Mat4() mgl64.Mat4 {
	return t.mat
}

// AlmostEqual reports whether two transforms agree entrywise within epsilon.
func (t Transform) AlmostEqual(other Transform, epsilon float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(t.mat.At(i, j)-other.mat.At(i, j)) > epsilon {
				return false
			}
		}
	}
	return true
}
