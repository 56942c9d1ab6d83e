package osuparser

import (
	"github.com/Vergenter/osuparser/internal/beatmap"
	"github.com/Vergenter/osuparser/internal/curve"
)

// Aliases re-exported from internal/beatmap and internal/curve so
// consumers only import this package. See the internal types for field
// documentation.

// Beatmap is the fully parsed representation of one .osu file.
type Beatmap = beatmap.Beatmap

// Section structs.
type (
	General    = beatmap.General
	Editor     = beatmap.Editor
	Metadata   = beatmap.Metadata
	Difficulty = beatmap.Difficulty
	Event      = beatmap.Event
	Colour     = beatmap.Colour
)

// EventKind classifies an [Events] line.
type EventKind = beatmap.EventKind

// Event kinds.
const (
	EventBackground = beatmap.EventBackground
	EventVideo      = beatmap.EventVideo
	EventOther      = beatmap.EventOther
)

// TimingPoint is one line from the [TimingPoints] section; Timing is the
// resolved state returned by Beatmap.TimingAt.
type (
	TimingPoint = beatmap.TimingPoint
	Timing      = beatmap.Timing
)

// HitObject is the common surface of the closed variant set.
type (
	HitObject = beatmap.HitObject
	Circle    = beatmap.Circle
	Slider    = beatmap.Slider
	Spinner   = beatmap.Spinner
	Hold      = beatmap.Hold
)

// Hit object field types.
type (
	Kind       = beatmap.Kind
	TypeFlags  = beatmap.TypeFlags
	SoundFlags = beatmap.SoundFlags
	SampleBank = beatmap.SampleBank
	HitSample  = beatmap.HitSample
	EdgeSet    = beatmap.EdgeSet
	Position   = beatmap.Position
)

// Hit object kinds.
const (
	KindCircle  = beatmap.KindCircle
	KindSlider  = beatmap.KindSlider
	KindSpinner = beatmap.KindSpinner
	KindHold    = beatmap.KindHold
)

// Hitsound bitflags.
const (
	SoundNormal  = beatmap.SoundNormal
	SoundWhistle = beatmap.SoundWhistle
	SoundFinish  = beatmap.SoundFinish
	SoundClap    = beatmap.SoundClap
)

// Sample banks.
const (
	BankNone   = beatmap.BankNone
	BankNormal = beatmap.BankNormal
	BankSoft   = beatmap.BankSoft
	BankDrum   = beatmap.BankDrum
)

// Path is a slider's flattened, arc-length parameterized curve; Vector
// is a 2D playfield point; CurveKind tags the curve type.
type (
	Path      = curve.Path
	Vector    = curve.Vector
	CurveKind = curve.Kind
)

// Curve kinds.
const (
	CurveBezier        = curve.Bezier
	CurveLinear        = curve.Linear
	CurveCatmull       = curve.Catmull
	CurvePerfectCircle = curve.PerfectCircle
)
