package decoder

import (
	"math"
	"strings"

	"github.com/Vergenter/osuparser/internal/beatmap"
	"github.com/Vergenter/osuparser/internal/curve"
)

// Positional layout of a hit object line:
//
//	x,y,time,type,hitSound,objectParams...,hitSample
//
// The first five fields are mandatory; the tail depends on the variant
// decoded from the type bitfield.
func (d *decoder) parseHitObject(line string, n int) error {
	const stage = "hitobjects"
	parts := strings.Split(line, ",")
	if len(parts) < 5 {
		return d.fatalf(n, "hit object has %d fields, need at least 5", len(parts))
	}

	header := beatmap.Header{
		Position: beatmap.Position{
			X: d.intField(stage, n, "x", parts[0], 0),
			Y: d.intField(stage, n, "y", parts[1], 0),
		},
		Time:  d.intField(stage, n, "time", parts[2], 0) + d.offset,
		Type:  beatmap.TypeFlags(d.intField(stage, n, "type", parts[3], 0)),
		Sound: beatmap.SoundFlags(d.intField(stage, n, "hitsound", parts[4], 0)),
	}

	var obj beatmap.HitObject
	switch {
	case header.Type&beatmap.TypeHold != 0:
		hold, err := d.parseHold(header, parts, n)
		if err != nil {
			return err
		}
		obj = hold

	case header.Type&beatmap.TypeSpinner != 0:
		endTime := d.timeField(stage, n, "end time", field(parts, 5), header.Time)
		if endTime < header.Time {
			d.warnf(stage, n, "spinner ends at %d, before its start %d", endTime, header.Time)
			endTime = header.Time
		}
		header.HitSample = hitSample(field(parts, 6))
		obj = beatmap.Spinner{Header: header, EndTime: endTime}

	case header.Type&beatmap.TypeSlider != 0:
		slider, err := d.parseSlider(header, parts, n)
		if err != nil {
			return err
		}
		obj = slider

	default:
		header.HitSample = hitSample(field(parts, 5))
		obj = beatmap.Circle{Header: header}
	}

	d.bm.HitObjects = append(d.bm.HitObjects, obj)
	return nil
}

// parseHold decodes the mania hold note, whose 6th field packs the end
// time and the sample descriptor as "endTime:sampleData". A field without
// the separator is structurally broken.
func (d *decoder) parseHold(header beatmap.Header, parts []string, n int) (beatmap.Hold, error) {
	const stage = "hitobjects"
	raw := field(parts, 5)
	colon := strings.Index(raw, ":")
	if colon < 0 {
		return beatmap.Hold{}, d.fatalf(n, "hold object field %q has no end time separator", raw)
	}
	endTime := d.timeField(stage, n, "end time", raw[:colon], header.Time)
	if endTime < header.Time {
		d.warnf(stage, n, "hold ends at %d, before its start %d", endTime, header.Time)
		endTime = header.Time
	}
	header.HitSample = hitSample(raw[colon+1:])
	return beatmap.Hold{Header: header, EndTime: endTime}, nil
}

// parseSlider decodes the slider tail fields, builds the curve path and
// derives the travel duration from the effective timing at the start
// time. The explicit pixel length is authoritative over the geometry;
// when the length field is absent the geometry-derived length stands in.
func (d *decoder) parseSlider(header beatmap.Header, parts []string, n int) (beatmap.Slider, error) {
	const stage = "hitobjects"
	if len(parts) < 6 {
		return beatmap.Slider{}, d.fatalf(n, "slider has %d fields, need at least 6", len(parts))
	}

	kind, controls := d.sliderPath(header.Position, parts[5], n)
	vectors := make([]curve.Vector, len(controls))
	for i, p := range controls {
		vectors[i] = curve.Vector{X: float64(p.X), Y: float64(p.Y)}
	}
	path, note := curve.New(kind, vectors)
	if note != "" {
		d.warnf(stage, n, "slider geometry: %s", note)
	}

	slides := d.intField(stage, n, "slides", field(parts, 6), 1)
	if slides < 1 {
		d.warnf(stage, n, "slider repeat count %d, using 1", slides)
		slides = 1
	}

	length := path.Length()
	if raw := strings.TrimSpace(field(parts, 7)); raw != "" {
		length = d.floatField(stage, n, "length", raw, length)
	}
	if length < 0 {
		d.warnf(stage, n, "negative slider length %v, using 0", length)
		length = 0
	}
	if length == 0 && note == "" {
		d.warnf(stage, n, "zero-length slider")
	}

	var edgeSounds []beatmap.SoundFlags
	if raw := strings.TrimSpace(field(parts, 8)); raw != "" {
		for _, p := range strings.Split(raw, "|") {
			edgeSounds = append(edgeSounds, beatmap.SoundFlags(d.intField(stage, n, "edge sound", p, 0)))
		}
	}
	var edgeSets []beatmap.EdgeSet
	if raw := strings.TrimSpace(field(parts, 9)); raw != "" {
		for _, p := range strings.Split(raw, "|") {
			edgeSets = append(edgeSets, edgeSet(p))
		}
	}
	header.HitSample = hitSample(field(parts, 10))

	timing := d.bm.TimingAt(header.Time)
	velocity := 100 * d.bm.Difficulty.SliderMultiplier * timing.SliderVelocity
	duration := int(math.Round(length / velocity * timing.BeatLength * float64(slides)))

	return beatmap.Slider{
		Header:        header,
		CurveType:     kind,
		ControlPoints: controls,
		Slides:        slides,
		Length:        length,
		Duration:      duration,
		EndTime:       header.Time + duration,
		EdgeSounds:    edgeSounds,
		EdgeSets:      edgeSets,
		Path:          path,
	}, nil
}

// sliderPath splits "B|x:y|x:y|..." into a curve kind and the control
// point list. The slider head is always the first control point;
// consecutive duplicates are kept, they carry segment-break meaning for
// Bezier curves.
func (d *decoder) sliderPath(head beatmap.Position, spec string, n int) (curve.Kind, []beatmap.Position) {
	const stage = "hitobjects"
	tokens := strings.Split(strings.TrimSpace(spec), "|")
	kind := curve.ParseKind(strings.TrimSpace(tokens[0]))

	controls := []beatmap.Position{head}
	for _, tok := range tokens[1:] {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		xy := strings.SplitN(tok, ":", 2)
		if len(xy) != 2 {
			d.warnf(stage, n, "control point %q is not x:y, skipping", tok)
			continue
		}
		controls = append(controls, beatmap.Position{
			X: d.intField(stage, n, "control point x", xy[0], head.X),
			Y: d.intField(stage, n, "control point y", xy[1], head.Y),
		})
	}
	return kind, controls
}

// hitSample decodes the five-part descriptor
// "normalSet:additionSet:index:volume:filename"; missing trailing parts
// default to zero values.
func hitSample(raw string) beatmap.HitSample {
	parts := strings.Split(raw, ":")
	return beatmap.HitSample{
		NormalSet:   sampleBank(field(parts, 0)),
		AdditionSet: sampleBank(field(parts, 1)),
		Index:       atoiDefault(field(parts, 2), 0),
		Volume:      atoiDefault(field(parts, 3), 0),
		Filename:    cleanFilename(field(parts, 4)),
	}
}

func edgeSet(raw string) beatmap.EdgeSet {
	parts := strings.Split(raw, ":")
	return beatmap.EdgeSet{
		NormalSet:   sampleBank(field(parts, 0)),
		AdditionSet: sampleBank(field(parts, 1)),
	}
}

func sampleBank(raw string) beatmap.SampleBank {
	switch atoiDefault(raw, 0) {
	case 1:
		return beatmap.BankNormal
	case 2:
		return beatmap.BankSoft
	case 3:
		return beatmap.BankDrum
	default:
		return beatmap.BankNone
	}
}
