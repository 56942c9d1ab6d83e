package decoder

import (
	"math"
	"strconv"
	"strings"

	"github.com/Vergenter/osuparser/internal/beatmap"
)

// parseTimingPoint reads one [TimingPoints] line:
//
//	time,beatLength[,meter,sampleSet,sampleIndex,volume,uninherited,effects]
//
// Trailing fields are optional. The uninherited flag derives from the 7th
// field being nonzero, defaulting to true when absent (legacy format).
// A point whose beat length contradicts its class (uninherited needs a
// positive value, inherited a negative one) warns and is dropped.
func (d *decoder) parseTimingPoint(line string, n int) error {
	const stage = "timing"
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return d.fatalf(n, "timing point has %d fields, need at least 2", len(parts))
	}

	tp := beatmap.TimingPoint{
		Time:        d.intField(stage, n, "time", parts[0], 0) + d.offset,
		Meter:       d.intField(stage, n, "meter", field(parts, 2), 4),
		SampleSet:   d.intField(stage, n, "sample set", field(parts, 3), 0),
		SampleIndex: d.intField(stage, n, "sample index", field(parts, 4), 0),
		Volume:      d.intField(stage, n, "volume", field(parts, 5), 100),
		Uninherited: true,
		Effects:     d.intField(stage, n, "effects", field(parts, 7), 0),
	}
	if tp.Meter <= 0 {
		tp.Meter = 4
	}
	if raw := strings.TrimSpace(field(parts, 6)); raw != "" {
		tp.Uninherited = d.intField(stage, n, "uninherited", raw, 1) != 0
	}

	beatLength, ok := d.beatLength(n, parts[1])
	if !ok {
		return nil
	}
	tp.BeatLength = beatLength

	if tp.Uninherited && beatLength < 0 {
		d.warnf(stage, n, "uninherited timing point with beat length %v, dropping point", beatLength)
		return nil
	}
	if !tp.Uninherited && beatLength > 0 {
		d.warnf(stage, n, "inherited timing point with beat length %v, dropping point", beatLength)
		return nil
	}

	d.bm.TimingPoints = append(d.bm.TimingPoints, tp)
	return nil
}

func (d *decoder) beatLength(n int, raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || v == 0 {
		d.warnf("timing", n, "beat length %q is unusable, dropping point", raw)
		return 0, false
	}
	return v, true
}
