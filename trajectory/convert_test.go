package trajectory

import (
	"testing"

	"go.viam.com/test"
)

func TestParseFramesJointStates(t *testing.T) {
	// shape A: wrapped joint_states with names
	data := `{"joint_states": [
		{"name": ["joint_2", "joint_1"], "position": [0.2, 0.1]},
		{"name": ["joint_2", "joint_1"], "position": [0.4, 0.3]}
	]}`
	records, err := ParseFrames([]byte(data))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, records, test.ShouldHaveLength, 2)
	// values land by normalized name, not list position
	test.That(t, records[0].Joint1, test.ShouldEqual, 0.1)
	test.That(t, records[0].Joint2, test.ShouldEqual, 0.2)
	test.That(t, records[1].Joint1, test.ShouldEqual, 0.3)
	test.That(t, records[0].Joint6, test.ShouldEqual, 0.0)
}

func TestParseFramesBareList(t *testing.T) {
	// shape B: bare list, no names; values map by index
	data := `[{"position": [1, 2, 3, 4, 5, 6, 99]}]`
	records, err := ParseFrames([]byte(data))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, records, test.ShouldHaveLength, 1)
	test.That(t, records[0].Joint1, test.ShouldEqual, 1.0)
	test.That(t, records[0].Joint6, test.ShouldEqual, 6.0)
}

func TestParseFramesByteOrderMark(t *testing.T) {
	// exports from Windows tools often lead with a BOM; the list must still
	// be detected as the bare shape
	data := "\uFEFF  [{\"position\": [0.5]}]"
	records, err := ParseFrames([]byte(data))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, records, test.ShouldHaveLength, 1)
	test.That(t, records[0].Joint1, test.ShouldEqual, 0.5)
}

func TestParseFramesPoints(t *testing.T) {
	// shape C: joint_names plus trajectory points
	data := `{"joint_names": ["joint_1", "joint_2", "joint_3"],
		"points": [{"positions": [0.1, 0.2, 0.3]}, {"positions": [1.1, 1.2, 1.3]}]}`
	records, err := ParseFrames([]byte(data))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, records, test.ShouldHaveLength, 2)
	test.That(t, records[0].Joint3, test.ShouldEqual, 0.3)
	test.That(t, records[1].Joint2, test.ShouldEqual, 1.2)
	test.That(t, records[1].Joint4, test.ShouldEqual, 0.0)
}

func TestParseFramesFallbackList(t *testing.T) {
	// unknown wrapper key; first list-valued member is used
	data := `{"frames": [{"name": ["joint_1"], "position": [0.7]}]}`
	records, err := ParseFrames([]byte(data))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, records, test.ShouldHaveLength, 1)
	test.That(t, records[0].Joint1, test.ShouldEqual, 0.7)
}

func TestParseFramesShortPositions(t *testing.T) {
	data := `[{"position": [0.5, 0.6]}]`
	records, err := ParseFrames([]byte(data))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, records[0].Values(), test.ShouldResemble, []float64{0.5, 0.6, 0, 0, 0, 0})
}

func TestParseFramesErrors(t *testing.T) {
	_, err := ParseFrames([]byte(`{`))
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ParseFrames([]byte(`{"meta": 1}`))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNormalizeJointName(t *testing.T) {
	test.That(t, normalizeJointName(" Joint_1 "), test.ShouldEqual, "joint1")
	test.That(t, normalizeJointName("joint1"), test.ShouldEqual, "joint1")
}
