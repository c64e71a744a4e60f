package kinematics

import (
	"strconv"
	"strings"

	"github.com/hiwinstudio/urdfkit/utils"
)

// sixSlots is the joint-input convention of the trajectory pipeline: exactly
// six values ordered joint 1 through 6.
const sixSlots = 6

// SixJointValues maps an input sequence of up to six values onto the movable
// joints in order. Joints named with a numeric suffix (joint_3, joint3) take
// the matching slot regardless of position; others take their tree-order
// slot. Values beyond six are ignored, missing ones are zero. When degrees is
// set the values are converted to radians once, here at the boundary.
func SixJointValues(order []string, values []float64, degrees bool) map[string]float64 {
	slots := make([]float64, sixSlots)
	for i := 0; i < len(values) && i < sixSlots; i++ {
		v := values[i]
		if degrees {
			v = utils.DegToRad(v)
		}
		slots[i] = v
	}

	out := make(map[string]float64, len(order))
	for i, name := range order {
		slot := i
		if n, ok := jointSlotFromName(name); ok {
			slot = n - 1
		}
		if slot >= 0 && slot < sixSlots {
			out[name] = slots[slot]
		} else {
			out[name] = 0
		}
	}
	return out
}

// jointSlotFromName extracts the 1-based slot from names like joint_4 or
// joint4. Other naming schemes fall back to tree order.
func jointSlotFromName(name string) (int, bool) {
	lower := strings.ToLower(name)
	if !strings.HasPrefix(lower, "joint") {
		return 0, false
	}
	trimmed := strings.TrimPrefix(strings.TrimPrefix(lower, "joint"), "_")
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
