package trajectory

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// jointStateEntry is one ROS sensor_msgs/JointState-like object. Both
// singular and plural field spellings occur in the wild.
type jointStateEntry struct {
	Name      []string  `json:"name"`
	Names     []string  `json:"names"`
	Position  []float64 `json:"position"`
	Positions []float64 `json:"positions"`
}

func (e *jointStateEntry) names() []string {
	if len(e.Name) > 0 {
		return e.Name
	}
	return e.Names
}

func (e *jointStateEntry) positions() []float64 {
	if len(e.Position) > 0 {
		return e.Position
	}
	return e.Positions
}

type trajectoryPoint struct {
	Positions []float64 `json:"positions"`
	Position  []float64 `json:"position"`
}

func (p *trajectoryPoint) positions() []float64 {
	if len(p.Positions) > 0 {
		return p.Positions
	}
	return p.Position
}

// trajectoryDoc covers the two wrapped shapes the converter accepts: a
// joint_states list, or joint_names plus trajectory points.
type trajectoryDoc struct {
	JointStates []jointStateEntry `json:"joint_states"`
	JointNames  []string          `json:"joint_names"`
	Names       []string          `json:"names"`
	Points      []trajectoryPoint `json:"points"`
}

// ParseFrames converts a joint trajectory JSON document into flat records.
// Three shapes are accepted:
//
//	A: {"joint_states": [{"name": [...], "position": [...]}, ...]}
//	B: [{"name": [...], "position": [...]}, ...]
//	C: {"joint_names": [...], "points": [{"positions": [...]}, ...]}
//
// Values are kept as-is (typically radians). Joint slots are filled by
// normalized name match (joint_1 and joint1 are equal), falling back to
// 1-based position; missing slots are zero.
func ParseFrames(data []byte) ([]Record, error) {
	// strip any byte-order mark along with leading whitespace; the JSON
	// decoder rejects a BOM
	cleaned := []byte(strings.TrimLeftFunc(string(data), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\uFEFF'
	}))
	if len(cleaned) > 0 && cleaned[0] == '[' {
		// shape B
		var entries []jointStateEntry
		if err := json.Unmarshal(cleaned, &entries); err != nil {
			return nil, errors.Wrap(err, "failed to parse joint-state list")
		}
		return framesFromEntries(entries), nil
	}

	var doc trajectoryDoc
	if err := json.Unmarshal(cleaned, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse trajectory document")
	}
	if len(doc.Points) > 0 {
		// shape C
		names := doc.JointNames
		if len(names) == 0 {
			names = doc.Names
		}
		records := make([]Record, 0, len(doc.Points))
		for i := range doc.Points {
			records = append(records, recordByName(names, doc.Points[i].positions()))
		}
		return records, nil
	}
	if len(doc.JointStates) > 0 {
		// shape A
		return framesFromEntries(doc.JointStates), nil
	}

	// fallback: first list-valued member that parses as joint states
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(cleaned, &generic); err != nil {
		return nil, errors.Wrap(err, "failed to parse trajectory document")
	}
	for _, raw := range generic {
		var entries []jointStateEntry
		if err := json.Unmarshal(raw, &entries); err == nil && len(entries) > 0 {
			return framesFromEntries(entries), nil
		}
	}
	return nil, errors.New("no joint trajectory frames found in document")
}

func framesFromEntries(entries []jointStateEntry) []Record {
	records := make([]Record, 0, len(entries))
	for i := range entries {
		records = append(records, recordByName(entries[i].names(), entries[i].positions()))
	}
	return records
}

// recordByName fills the six slots by matching normalized joint names,
// falling back to 1-based index when a name is absent.
func recordByName(names []string, positions []float64) Record {
	normalized := make([]string, len(names))
	for i, n := range names {
		normalized[i] = normalizeJointName(n)
	}
	six := make([]float64, 6)
	for slot := 1; slot <= 6; slot++ {
		six[slot-1] = pickValue(normalized, positions, slot)
	}
	return RecordFromValues(six)
}

func pickValue(normalizedNames []string, positions []float64, slot int) float64 {
	target := "joint" + string(rune('0'+slot))
	for i, n := range normalizedNames {
		if n == target {
			if i < len(positions) {
				return positions[i]
			}
			return 0
		}
	}
	if len(positions) >= slot {
		return positions[slot-1]
	}
	return 0
}

// normalizeJointName lowercases and strips underscores, so joint_1, Joint_1
// and joint1 all compare equal.
func normalizeJointName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "")
}
