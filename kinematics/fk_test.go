package kinematics

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/hiwinstudio/urdfkit/urdf"
	"github.com/hiwinstudio/urdfkit/utils"
)

const floatTol = 1e-9

func vectorAlmostEqual(t *testing.T, got, want r3.Vector) {
	t.Helper()
	test.That(t, got.X, test.ShouldAlmostEqual, want.X, floatTol)
	test.That(t, got.Y, test.ShouldAlmostEqual, want.Y, floatTol)
	test.That(t, got.Z, test.ShouldAlmostEqual, want.Z, floatTol)
}

// twoLinkRobot is the base -> revolute(Z) -> link1 -> fixed(+Z) -> tool chain.
func twoLinkRobot() *urdf.Model {
	return urdf.NewModel("two_link", links("base", "link1", "tool"), []*urdf.Joint{
		revolute("joint_1", "base", "link1", r3.Vector{Z: 1}),
		fixed("mount", "link1", "tool", r3.Vector{Z: 1}),
	})
}

func TestFKZeroConfiguration(t *testing.T) {
	// with all joint values zero, only fixed origins contribute
	model := urdf.NewModel("chain", links("base", "l1", "l2"), []*urdf.Joint{
		{Name: "joint_1", Type: urdf.RevoluteJoint, Parent: "base", Child: "l1",
			XYZ: r3.Vector{X: 1}, Axis: r3.Vector{Z: 1}},
		{Name: "joint_2", Type: urdf.RevoluteJoint, Parent: "l1", Child: "l2",
			XYZ: r3.Vector{X: 2, Z: 0.5}, Axis: r3.Vector{Z: 1}},
	})
	frames := Evaluate(model, nil)

	base, ok := frames.Transform("base")
	test.That(t, ok, test.ShouldBeTrue)
	vectorAlmostEqual(t, base.Translation(), r3.Vector{})

	l1, _ := frames.Transform("l1")
	vectorAlmostEqual(t, l1.Translation(), r3.Vector{X: 1})

	l2, _ := frames.Transform("l2")
	vectorAlmostEqual(t, l2.Translation(), r3.Vector{X: 3, Z: 0.5})
}

func TestFKTwoLinkScenario(t *testing.T) {
	// rotating the revolute joint 90 degrees: the fixed translation is along
	// the rotation axis, so the tool origin stays at (0,0,1) while its X and
	// Y axes swing with the joint
	frames := Evaluate(twoLinkRobot(), map[string]float64{"joint_1": math.Pi / 2})

	tool, ok := frames.Transform("tool")
	test.That(t, ok, test.ShouldBeTrue)
	pose := tool.Pose()
	vectorAlmostEqual(t, pose.Origin, r3.Vector{Z: 1})
	vectorAlmostEqual(t, pose.AxisX, r3.Vector{Y: 1})
	vectorAlmostEqual(t, pose.AxisY, r3.Vector{X: -1})
	vectorAlmostEqual(t, pose.AxisZ, r3.Vector{Z: 1})
}

func TestFKRevoluteRoundTrip(t *testing.T) {
	model := twoLinkRobot()
	theta := 1.1

	zero := Evaluate(model, nil)
	forward := Evaluate(model, map[string]float64{"joint_1": theta})
	back := Evaluate(model, map[string]float64{"joint_1": theta - theta})

	want, _ := zero.Transform("tool")
	got, _ := back.Transform("tool")
	test.That(t, got.AlmostEqual(want, floatTol), test.ShouldBeTrue)

	moved, _ := forward.Transform("tool")
	test.That(t, moved.AlmostEqual(want, floatTol), test.ShouldBeFalse)
}

func TestFKPrismaticLinearity(t *testing.T) {
	model := urdf.NewModel("slider", links("base", "carriage"), []*urdf.Joint{
		{Name: "joint_1", Type: urdf.PrismaticJoint, Parent: "base", Child: "carriage",
			Axis: r3.Vector{X: 2}}, // axis gets normalized before use
	})

	single := Evaluate(model, map[string]float64{"joint_1": 0.25})
	double := Evaluate(model, map[string]float64{"joint_1": 0.5})

	s, _ := single.Transform("carriage")
	d, _ := double.Transform("carriage")
	vectorAlmostEqual(t, s.Translation(), r3.Vector{X: 0.25})
	vectorAlmostEqual(t, d.Translation(), s.Translation().Mul(2))
}

func TestFKJointFrames(t *testing.T) {
	// joint frames sit at parent * origin, before joint motion is applied
	frames := Evaluate(twoLinkRobot(), map[string]float64{"joint_1": math.Pi / 2})
	test.That(t, frames.JointNames, test.ShouldResemble, []string{"joint_1", "mount"})

	j1 := frames.JointTransforms[0]
	vectorAlmostEqual(t, j1.Translation(), r3.Vector{})
	// the joint frame does not rotate with the joint value
	vectorAlmostEqual(t, j1.ApplyVector(r3.Vector{X: 1}), r3.Vector{X: 1})
}

func TestFKEndEffector(t *testing.T) {
	frames := Evaluate(twoLinkRobot(), nil)
	// no tool0/flange/link_6 present; falls back to the last traversed link
	name, _, ok := frames.EndEffector()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, name, test.ShouldEqual, "tool")

	preferred := urdf.NewModel("named", links("base", "flange", "other"), []*urdf.Joint{
		revolute("joint_1", "base", "flange", r3.Vector{Z: 1}),
		fixed("mount", "flange", "other", r3.Vector{}),
	})
	name, _, ok = Evaluate(preferred, nil).EndEffector()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, name, test.ShouldEqual, "flange")
}

func TestFKDisconnectedSubtree(t *testing.T) {
	model := urdf.NewModel("partial", links("base", "l1", "orphan"), []*urdf.Joint{
		revolute("joint_1", "base", "l1", r3.Vector{Z: 1}),
		revolute("joint_2", "missing", "orphan", r3.Vector{Z: 1}),
	})
	frames := Evaluate(model, map[string]float64{"joint_1": 0.5, "joint_2": 0.5})

	_, ok := frames.Transform("l1")
	test.That(t, ok, test.ShouldBeTrue)
	_, ok = frames.Transform("orphan")
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, frames.LinkNames, test.ShouldResemble, []string{"base", "l1"})
}

func TestDegreeRadianBoundary(t *testing.T) {
	deg := 33.3
	test.That(t, utils.RadToDeg(utils.DegToRad(deg)), test.ShouldAlmostEqual, deg, floatTol)

	values := SixJointValues([]string{"joint_1"}, []float64{90}, true)
	test.That(t, values["joint_1"], test.ShouldAlmostEqual, math.Pi/2, floatTol)
}
