package trajectory

import "math"

// Player selects frames from a loaded trajectory, either by index or by a
// normalized phase in [0, 1] as driven by a slider.
type Player struct {
	records []Record
}

// NewPlayer wraps the given records.
func NewPlayer(records []Record) *Player {
	return &Player{records: records}
}

// Len returns the number of frames.
func (p *Player) Len() int {
	return len(p.records)
}

// Frame returns the record at index i, clamped into range, along with the
// index actually used. An empty trajectory yields the zero record.
func (p *Player) Frame(i int) (Record, int) {
	if len(p.records) == 0 {
		return Record{}, 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.records) {
		i = len(p.records) - 1
	}
	return p.records[i], i
}

// FrameAtPhase maps a phase s in [0, 1] onto the frame index
// round(s * (n-1)). Out-of-range phases are clamped.
func (p *Player) FrameAtPhase(s float64) (Record, int) {
	if len(p.records) == 0 {
		return Record{}, 0
	}
	if s < 0 || math.IsNaN(s) {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	return p.Frame(int(math.Round(s * float64(len(p.records)-1))))
}
