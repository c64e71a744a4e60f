// Package rospose converts between the ROS-side pose interchange format, a
// six-number [x, y, z, roll, pitch, yaw] list with positions in meters, and
// model-space transforms with positions in millimeters.
package rospose

import (
	"encoding/json"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/hiwinstudio/urdfkit/spatialmath"
	"github.com/hiwinstudio/urdfkit/utils"
)

// Pose is a parsed interchange pose. Position is in meters; the angles are
// a fixed-axis ZYX roll-pitch-yaw triple in radians.
type Pose struct {
	Position r3.Vector
	RPY      spatialmath.EulerAngles
}

// FromValues interprets a six-number pose list. Angles are degrees unless
// radians is set.
func FromValues(values []float64, radians bool) (Pose, error) {
	if len(values) != 6 {
		return Pose{}, errors.Errorf("pose needs exactly 6 values, got %d", len(values))
	}
	roll, pitch, yaw := values[3], values[4], values[5]
	if !radians {
		roll = utils.DegToRad(roll)
		pitch = utils.DegToRad(pitch)
		yaw = utils.DegToRad(yaw)
	}
	return Pose{
		Position: r3.Vector{X: values[0], Y: values[1], Z: values[2]},
		RPY:      spatialmath.EulerAngles{Roll: roll, Pitch: pitch, Yaw: yaw},
	}, nil
}

// ParseValues accepts the panel-style string form of a pose list, e.g.
// "[-0.5, 1.0, 0.05, 0.0, 0.0, 90.0]".
func ParseValues(s string, radians bool) (Pose, error) {
	var values []float64
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &values); err != nil {
		return Pose{}, errors.Wrap(err, "failed to parse pose list")
	}
	return FromValues(values, radians)
}

// Transform converts the pose into model space: position scaled from meters
// to millimeters, rotation applied as Rz(yaw)*Ry(pitch)*Rx(roll).
func (p Pose) Transform() spatialmath.Transform {
	position := r3.Vector{
		X: utils.MetersToMM(p.Position.X),
		Y: utils.MetersToMM(p.Position.Y),
		Z: utils.MetersToMM(p.Position.Z),
	}
	return spatialmath.NewTranslation(position).Mul(p.RPY.Transform())
}

// FromTransform converts a model-space transform (millimeters) back into an
// interchange pose: millimeters to meters and RPY extracted ZYX.
func FromTransform(t spatialmath.Transform) Pose {
	origin := t.Translation()
	return Pose{
		Position: r3.Vector{
			X: utils.MMToMeters(origin.X),
			Y: utils.MMToMeters(origin.Y),
			Z: utils.MMToMeters(origin.Z),
		},
		RPY: t.EulerAngles(),
	}
}

// FromMetersTransform converts a transform whose translation is already in
// meters, such as a kinematics frame of a model authored in meters, into an
// interchange pose without rescaling.
func FromMetersTransform(t spatialmath.Transform) Pose {
	return Pose{
		Position: t.Translation(),
		RPY:      t.EulerAngles(),
	}
}

// Values renders the pose as the six-number list form. Angles are degrees
// unless radians is set.
func (p Pose) Values(radians bool) []float64 {
	roll, pitch, yaw := p.RPY.Roll, p.RPY.Pitch, p.RPY.Yaw
	if !radians {
		roll = utils.RadToDeg(roll)
		pitch = utils.RadToDeg(pitch)
		yaw = utils.RadToDeg(yaw)
	}
	return []float64{p.Position.X, p.Position.Y, p.Position.Z, roll, pitch, yaw}
}
