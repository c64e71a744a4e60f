package kinematics

import (
	"github.com/hiwinstudio/urdfkit/spatialmath"
	"github.com/hiwinstudio/urdfkit/urdf"
)

// eefCandidates are checked in order when picking the end-effector link.
var eefCandidates = []string{"tool0", "flange", "link_6"}

// FrameSet is the result of one forward-kinematics evaluation: a world
// transform for every reachable link. It is a pure function of the model and
// the joint values and holds no identity beyond that call.
type FrameSet struct {
	// LinkNames is the traversal order; Transforms is parallel to it.
	LinkNames  []string
	Transforms []spatialmath.Transform
	// JointNames lists every joint with a reachable parent, in declaration
	// order; JointTransforms holds the joint frame (parent world * joint
	// origin, before joint motion) parallel to it.
	JointNames      []string
	JointTransforms []spatialmath.Transform
	// JointOrder is the movable joint order of the underlying tree.
	JointOrder []string
	// Diagnostics accumulates tree-resolution anomalies for this evaluation.
	Diagnostics urdf.Diagnostics

	byName map[string]spatialmath.Transform
}

// Transform returns the world transform of a link.
func (fs *FrameSet) Transform(link string) (spatialmath.Transform, bool) {
	t, ok := fs.byName[link]
	return t, ok
}

// EndEffector returns the terminal link of the chain and its transform,
// preferring the conventional names tool0, flange and link_6 before falling
// back to the last traversed link.
func (fs *FrameSet) EndEffector() (string, spatialmath.Transform, bool) {
	for _, candidate := range eefCandidates {
		if t, ok := fs.byName[candidate]; ok {
			return candidate, t, true
		}
	}
	if len(fs.LinkNames) == 0 {
		return "", spatialmath.NewTransform(), false
	}
	last := fs.LinkNames[len(fs.LinkNames)-1]
	return last, fs.byName[last], true
}

// Evaluate computes world transforms for every link reachable from the root.
// Joint values are radians for rotational joints and model length units for
// prismatic ones; missing values default to zero. Degree conversion is the
// caller's responsibility.
func Evaluate(model *urdf.Model, values map[string]float64) *FrameSet {
	return EvaluateTree(NewTree(model), values)
}

// EvaluateTree is Evaluate with a pre-resolved tree, for callers evaluating
// the same model repeatedly.
func EvaluateTree(tree *Tree, values map[string]float64) *FrameSet {
	fs := &FrameSet{
		JointOrder:  tree.JointOrder,
		Diagnostics: tree.Diagnostics,
		byName:      map[string]spatialmath.Transform{},
	}
	if tree.Root == "" {
		return fs
	}

	fs.byName[tree.Root] = spatialmath.NewTransform()
	for _, link := range tree.LinkOrder {
		world := fs.byName[link]
		fs.LinkNames = append(fs.LinkNames, link)
		fs.Transforms = append(fs.Transforms, world)

		for _, joint := range tree.ChildJoints(link) {
			jointFrame := world.Mul(joint.Origin())
			fs.JointNames = append(fs.JointNames, joint.Name)
			fs.JointTransforms = append(fs.JointTransforms, jointFrame)
			fs.byName[joint.Child] = jointFrame.Mul(motionTransform(joint, values[joint.Name]))
		}
	}
	return fs
}

// motionTransform is the joint-value-dependent part of a joint's transform,
// applied after the fixed origin.
func motionTransform(joint *urdf.Joint, value float64) spatialmath.Transform {
	switch joint.Type {
	case urdf.RevoluteJoint, urdf.ContinuousJoint:
		return spatialmath.NewRotationAxisAngle(joint.Axis, value)
	case urdf.PrismaticJoint:
		if joint.Axis.Norm() == 0 {
			// zero-length axis means zero motion
			return spatialmath.NewTransform()
		}
		return spatialmath.NewTranslation(joint.Axis.Normalize().Mul(value))
	default:
		return spatialmath.NewTransform()
	}
}
