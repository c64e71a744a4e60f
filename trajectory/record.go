// Package trajectory converts ROS-style joint-state data into flat
// joint1..joint6 records and plays them back frame by frame.
package trajectory

// Record is one trajectory frame: six joint values, radians by convention.
// Field order matches the wire order of the JSONL trajectory format.
type Record struct {
	Joint1 float64 `json:"joint1"`
	Joint2 float64 `json:"joint2"`
	Joint3 float64 `json:"joint3"`
	Joint4 float64 `json:"joint4"`
	Joint5 float64 `json:"joint5"`
	Joint6 float64 `json:"joint6"`
}

// Values returns the six joint values in order.
func (r Record) Values() []float64 {
	return []float64{r.Joint1, r.Joint2, r.Joint3, r.Joint4, r.Joint5, r.Joint6}
}

// RecordFromValues builds a record from up to six values; missing ones are
// zero, extras are dropped.
func RecordFromValues(values []float64) Record {
	six := make([]float64, 6)
	copy(six, values)
	return Record{six[0], six[1], six[2], six[3], six[4], six[5]}
}
