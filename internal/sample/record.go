package sample

// Tag marks the log lines that carry gravity samples.
const Tag = "myGravityComplementary"

// Column names in payload order.
const (
	ColTime = "time"
	ColX    = "x"
	ColY    = "y"
	ColZ    = "z"
	ColW    = "w"
)

// Columns lists every field of a Record in the order it appears in the payload.
var Columns = []string{ColTime, ColX, ColY, ColZ, ColW}

// Axes lists the fields plotted against time.
var Axes = []string{ColX, ColY, ColZ}

// Record is one decoded sample.
type Record struct {
	Time float64 `csv:"time"`
	X    float64 `csv:"x"`
	Y    float64 `csv:"y"`
	Z    float64 `csv:"z"`
	W    float64 `csv:"w"`
}

// Field returns the value of the named column.
func (r Record) Field(name string) (float64, bool) {
	switch name {
	case ColTime:
		return r.Time, true
	case ColX:
		return r.X, true
	case ColY:
		return r.Y, true
	case ColZ:
		return r.Z, true
	case ColW:
		return r.W, true
	}
	return 0, false
}

// Column extracts one named field from every record, preserving order.
// Unknown names yield nil.
func Column(records []Record, name string) []float64 {
	if _, ok := (Record{}).Field(name); !ok {
		return nil
	}
	out := make([]float64, len(records))
	for i, rec := range records {
		out[i], _ = rec.Field(name)
	}
	return out
}

func recordFromValues(values [5]float64) Record {
	return Record{
		Time: values[0],
		X:    values[1],
		Y:    values[2],
		Z:    values[3],
		W:    values[4],
	}
}
