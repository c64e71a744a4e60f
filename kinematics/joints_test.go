package kinematics

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestSixJointValuesByName(t *testing.T) {
	// named joints claim their numbered slot regardless of tree position
	order := []string{"joint_2", "joint_1"}
	values := SixJointValues(order, []float64{10, 20}, false)
	test.That(t, values["joint_1"], test.ShouldEqual, 10.0)
	test.That(t, values["joint_2"], test.ShouldEqual, 20.0)
}

func TestSixJointValuesByOrder(t *testing.T) {
	order := []string{"shoulder", "elbow", "wrist"}
	values := SixJointValues(order, []float64{1, 2, 3}, false)
	test.That(t, values["shoulder"], test.ShouldEqual, 1.0)
	test.That(t, values["elbow"], test.ShouldEqual, 2.0)
	test.That(t, values["wrist"], test.ShouldEqual, 3.0)
}

func TestSixJointValuesPadding(t *testing.T) {
	order := []string{"joint_1", "joint_2", "joint_3"}

	// fewer than six inputs zero-pad
	values := SixJointValues(order, []float64{1}, false)
	test.That(t, values["joint_2"], test.ShouldEqual, 0.0)
	test.That(t, values["joint_3"], test.ShouldEqual, 0.0)

	// more than six inputs are ignored
	values = SixJointValues([]string{"joint_6"}, []float64{1, 2, 3, 4, 5, 6, 7, 8}, false)
	test.That(t, values["joint_6"], test.ShouldEqual, 6.0)
}

func TestSixJointValuesDegrees(t *testing.T) {
	values := SixJointValues([]string{"joint_1", "joint_2"}, []float64{180, -90}, true)
	test.That(t, values["joint_1"], test.ShouldAlmostEqual, math.Pi, floatTol)
	test.That(t, values["joint_2"], test.ShouldAlmostEqual, -math.Pi/2, floatTol)
}

func TestJointSlotFromName(t *testing.T) {
	for _, tc := range []struct {
		name string
		slot int
		ok   bool
	}{
		{"joint_3", 3, true},
		{"joint4", 4, true},
		{"Joint_1", 1, true},
		{"elbow", 0, false},
		{"joint_zero", 0, false},
		{"joint_0", 0, false},
	} {
		slot, ok := jointSlotFromName(tc.name)
		test.That(t, ok, test.ShouldEqual, tc.ok)
		if tc.ok {
			test.That(t, slot, test.ShouldEqual, tc.slot)
		}
	}
}
