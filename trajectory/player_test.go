package trajectory

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func playerFixture() *Player {
	records := make([]Record, 5)
	for i := range records {
		records[i] = RecordFromValues([]float64{float64(i)})
	}
	return NewPlayer(records)
}

func TestPlayerFrame(t *testing.T) {
	p := playerFixture()
	test.That(t, p.Len(), test.ShouldEqual, 5)

	record, idx := p.Frame(2)
	test.That(t, idx, test.ShouldEqual, 2)
	test.That(t, record.Joint1, test.ShouldEqual, 2.0)

	_, idx = p.Frame(-3)
	test.That(t, idx, test.ShouldEqual, 0)

	record, idx = p.Frame(99)
	test.That(t, idx, test.ShouldEqual, 4)
	test.That(t, record.Joint1, test.ShouldEqual, 4.0)
}

func TestPlayerFrameAtPhase(t *testing.T) {
	p := playerFixture()

	_, idx := p.FrameAtPhase(0)
	test.That(t, idx, test.ShouldEqual, 0)
	_, idx = p.FrameAtPhase(1)
	test.That(t, idx, test.ShouldEqual, 4)
	// 0.5 * 4 = 2 exactly
	_, idx = p.FrameAtPhase(0.5)
	test.That(t, idx, test.ShouldEqual, 2)
	// 0.6 * 4 = 2.4 rounds down
	_, idx = p.FrameAtPhase(0.6)
	test.That(t, idx, test.ShouldEqual, 2)
	// 0.7 * 4 = 2.8 rounds up
	_, idx = p.FrameAtPhase(0.7)
	test.That(t, idx, test.ShouldEqual, 3)

	// clamping
	_, idx = p.FrameAtPhase(-0.5)
	test.That(t, idx, test.ShouldEqual, 0)
	_, idx = p.FrameAtPhase(2.5)
	test.That(t, idx, test.ShouldEqual, 4)
	_, idx = p.FrameAtPhase(math.NaN())
	test.That(t, idx, test.ShouldEqual, 0)
}

func TestPlayerEmpty(t *testing.T) {
	p := NewPlayer(nil)
	test.That(t, p.Len(), test.ShouldEqual, 0)
	record, idx := p.Frame(3)
	test.That(t, idx, test.ShouldEqual, 0)
	test.That(t, record, test.ShouldResemble, Record{})
	record, _ = p.FrameAtPhase(0.5)
	test.That(t, record, test.ShouldResemble, Record{})
}
