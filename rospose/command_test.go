package rospose

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/hiwinstudio/urdfkit/spatialmath"
)

func TestNewMoveJCommand(t *testing.T) {
	p := Pose{
		Position: r3.Vector{X: 0.123456, Y: -0.2, Z: 0.0005},
		RPY:      spatialmath.EulerAngles{Roll: math.Pi, Pitch: 0, Yaw: math.Pi / 2},
	}

	cmd := NewMoveJCommand(p)
	test.That(t, cmd.MotionType, test.ShouldEqual, "moveJ")
	test.That(t, cmd.X, test.ShouldEqual, 0.123)
	test.That(t, cmd.Y, test.ShouldEqual, -0.2)
	test.That(t, cmd.Z, test.ShouldEqual, 0.001)
	test.That(t, cmd.Roll, test.ShouldEqual, 180.0)
	test.That(t, cmd.Yaw, test.ShouldEqual, 90.0)

	data, err := json.Marshal(cmd)
	test.That(t, err, test.ShouldBeNil)
	test.That(
		t, string(data), test.ShouldEqual,
		`{"motion_type":"moveJ","x":0.123,"y":-0.2,"z":0.001,"roll":180,"pitch":0,"yaw":90}`,
	)
}

func TestNewAxisCommand(t *testing.T) {
	cmd := NewAxisCommand([]float64{10, 20, 30})
	test.That(t, cmd.MotionType, test.ShouldEqual, "axis")
	test.That(t, cmd.Joint3, test.ShouldEqual, 30.0)
	test.That(t, cmd.Joint6, test.ShouldEqual, 0.0)

	cmd = NewAxisCommand([]float64{1, 2, 3, 4, 5, 6, 7})
	test.That(t, cmd.Joint6, test.ShouldEqual, 6.0)

	data, err := json.Marshal(NewAxisCommand([]float64{1, 2, 3, 4, 5, 6}))
	test.That(t, err, test.ShouldBeNil)
	test.That(
		t, string(data), test.ShouldEqual,
		`{"motion_type":"axis","joint1":1,"joint2":2,"joint3":3,"joint4":4,"joint5":5,"joint6":6}`,
	)
}
