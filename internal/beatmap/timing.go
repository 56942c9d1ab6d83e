package beatmap

// Effects bitflags on a timing point.
const (
	EffectKiai             = 1 << 0
	EffectOmitFirstBarLine = 1 << 3
)

// Sentinel timing used for timestamps that precede every uninherited
// timing point. 500 ms per beat is 120 BPM.
const (
	DefaultBeatLength = 500.0
	DefaultMeter      = 4
)

// TimingPoint is one line from the [TimingPoints] section.
//
// An uninherited point defines an absolute tempo: BeatLength is the
// number of milliseconds per beat and is positive. An inherited point
// stores a negative BeatLength encoding a slider-velocity multiplier of
// 100 / -BeatLength relative to the most recent uninherited point.
type TimingPoint struct {
	Time        int
	BeatLength  float64
	Meter       int
	SampleSet   int
	SampleIndex int
	Volume      int
	Uninherited bool
	Effects     int
}

// Kiai reports whether kiai time is enabled at this point.
func (tp TimingPoint) Kiai() bool { return tp.Effects&EffectKiai != 0 }

// OmitFirstBarLine reports whether the first bar line is omitted.
func (tp TimingPoint) OmitFirstBarLine() bool { return tp.Effects&EffectOmitFirstBarLine != 0 }

// SliderVelocityMultiplier returns the velocity multiplier encoded by an
// inherited point, or 1 for uninherited points.
func (tp TimingPoint) SliderVelocityMultiplier() float64 {
	if tp.Uninherited || tp.BeatLength >= 0 {
		return 1
	}
	return 100 / -tp.BeatLength
}

// Timing is the effective timing state at a timestamp, resolved by
// Beatmap.TimingAt.
type Timing struct {
	// BeatLength is the milliseconds per beat of the governing
	// uninherited point.
	BeatLength float64

	// SliderVelocity is the multiplier of the most recent point of any
	// kind, 1 when that point is itself uninherited.
	SliderVelocity float64

	// Meter is the time signature numerator of the governing
	// uninherited point.
	Meter int
}

// TimingAt resolves the effective beat length, slider-velocity multiplier
// and meter at time t.
//
// The governing uninherited point is the last one at or before t in file
// order; the slider velocity comes from the last point of any kind at or
// before t. When several points share a timestamp the one appearing later
// in the file wins. Timestamps before every uninherited point get the
// sentinel DefaultBeatLength/DefaultMeter with velocity 1.
func (b *Beatmap) TimingAt(t int) Timing {
	timing := Timing{
		BeatLength:     DefaultBeatLength,
		SliderVelocity: 1,
		Meter:          DefaultMeter,
	}
	last := -1
	for i, tp := range b.TimingPoints {
		if tp.Time > t {
			continue
		}
		if tp.Uninherited {
			timing.BeatLength = tp.BeatLength
			timing.Meter = tp.Meter
		}
		last = i
	}
	if last >= 0 {
		timing.SliderVelocity = b.TimingPoints[last].SliderVelocityMultiplier()
	}
	return timing
}

// BPMAt returns the tempo in beats per minute at time t.
func (b *Beatmap) BPMAt(t int) float64 {
	return 60000 / b.TimingAt(t).BeatLength
}
