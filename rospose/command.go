package rospose

import (
	"math"

	"github.com/hiwinstudio/urdfkit/utils"
)

// MoveJCommand is the robot-program record for a Cartesian target: position
// in meters, ZYX roll-pitch-yaw in degrees, all rounded to three decimals.
// Field order fixes the JSON key order.
type MoveJCommand struct {
	MotionType string  `json:"motion_type"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Roll       float64 `json:"roll"`
	Pitch      float64 `json:"pitch"`
	Yaw        float64 `json:"yaw"`
}

// NewMoveJCommand builds a moveJ record from an interchange pose.
func NewMoveJCommand(p Pose) MoveJCommand {
	return MoveJCommand{
		MotionType: "moveJ",
		X:          round3(p.Position.X),
		Y:          round3(p.Position.Y),
		Z:          round3(p.Position.Z),
		Roll:       round3(utils.RadToDeg(p.RPY.Roll)),
		Pitch:      round3(utils.RadToDeg(p.RPY.Pitch)),
		Yaw:        round3(utils.RadToDeg(p.RPY.Yaw)),
	}
}

// AxisCommand is the robot-program record for a joint-space target.
type AxisCommand struct {
	MotionType string  `json:"motion_type"`
	Joint1     float64 `json:"joint1"`
	Joint2     float64 `json:"joint2"`
	Joint3     float64 `json:"joint3"`
	Joint4     float64 `json:"joint4"`
	Joint5     float64 `json:"joint5"`
	Joint6     float64 `json:"joint6"`
}

// NewAxisCommand builds an axis record from up to six joint values; missing
// values are zero, extras dropped.
func NewAxisCommand(values []float64) AxisCommand {
	six := make([]float64, 6)
	copy(six, values)
	return AxisCommand{"axis", six[0], six[1], six[2], six[3], six[4], six[5]}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
