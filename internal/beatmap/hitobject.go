package beatmap

import "github.com/Vergenter/osuparser/internal/curve"

// Kind identifies a hit object variant.
type Kind uint8

const (
	KindCircle Kind = iota
	KindSlider
	KindSpinner
	KindHold
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSlider:
		return "slider"
	case KindSpinner:
		return "spinner"
	case KindHold:
		return "hold"
	}
	return "unknown"
}

// TypeFlags is the raw type bitfield of a hit object line.
type TypeFlags int

const (
	TypeCircle     TypeFlags = 1 << iota // 1
	TypeSlider                           // 2
	TypeNewCombo                         // 4
	TypeSpinner                          // 8
	TypeComboSkip1                       // 16
	TypeComboSkip2                       // 32
	TypeComboSkip3                       // 64
	TypeHold       TypeFlags = 1 << 7    // 128
)

// SoundFlags is the hitsound bitfield; the four samples are independently
// settable.
type SoundFlags uint8

const (
	SoundNormal  SoundFlags = 1 << iota // 1
	SoundWhistle                        // 2
	SoundFinish                         // 4
	SoundClap                           // 8
)

// SampleBank identifies a sample set in a hit sample descriptor.
type SampleBank uint8

const (
	BankNone SampleBank = iota
	BankNormal
	BankSoft
	BankDrum
)

// HitSample is the five-part custom sample descriptor trailing most hit
// object lines: normalSet:additionSet:index:volume:filename.
type HitSample struct {
	NormalSet   SampleBank
	AdditionSet SampleBank
	Index       int
	Volume      int
	Filename    string
}

// EdgeSet is the per-edge sample set pair of a slider.
type EdgeSet struct {
	NormalSet   SampleBank
	AdditionSet SampleBank
}

// Position is a playfield coordinate.
type Position struct {
	X, Y int
}

// HitObject is the common surface of the four variants. The variant set
// is closed: Circle, Slider, Spinner and Hold.
type HitObject interface {
	Kind() Kind
	Pos() Position
	StartTime() int
	NewCombo() bool
	ComboColourSkip() int
	Flags() TypeFlags
	HitSound() SoundFlags
	Sample() HitSample
}

// Header is the shared leading fields of every hit object line:
// x,y,time,type,hitSound plus the trailing sample descriptor.
type Header struct {
	Position  Position
	Time      int
	Type      TypeFlags
	Sound     SoundFlags
	HitSample HitSample
}

func (h Header) Pos() Position        { return h.Position }
func (h Header) StartTime() int       { return h.Time }
func (h Header) NewCombo() bool       { return h.Type&TypeNewCombo != 0 }
func (h Header) Flags() TypeFlags     { return h.Type }
func (h Header) HitSound() SoundFlags { return h.Sound }
func (h Header) Sample() HitSample    { return h.HitSample }

// ComboColourSkip is the number of combo colours skipped when this object
// starts a new combo (bits 4-6 of the type field).
func (h Header) ComboColourSkip() int { return int(h.Type>>4) & 0x7 }

// Circle is a plain hit circle.
type Circle struct {
	Header
}

func (Circle) Kind() Kind { return KindCircle }

// Slider follows a curved path over a duration derived from tempo,
// velocity and path length.
type Slider struct {
	Header

	// CurveType is the tag from the file: Linear, PerfectCircle, Catmull
	// or Bezier.
	CurveType curve.Kind

	// ControlPoints includes the slider head and keeps consecutive
	// duplicates, which mark Bezier segment boundaries.
	ControlPoints []Position

	// Slides is the repeat count; 1 means head to tail once.
	Slides int

	// Length is the explicit pixel length from the file. It is
	// authoritative over the geometry-derived length.
	Length float64

	// Duration is the travel time in ms over all slides, derived from
	// the effective timing at StartTime.
	Duration int

	// EndTime is StartTime + Duration.
	EndTime int

	// EdgeSounds and EdgeSets carry per-edge hitsounds and sample sets
	// (head, each repeat, tail). May be shorter than Slides+1 in old
	// files.
	EdgeSounds []SoundFlags
	EdgeSets   []EdgeSet

	// Path is the flattened, arc-length parameterized curve.
	Path *curve.Path
}

func (Slider) Kind() Kind { return KindSlider }

// PositionAt returns the playfield position after travelling the given
// pixel distance from the head, clamped to the slider's explicit length.
func (s Slider) PositionAt(distance float64) curve.Vector {
	if distance < 0 {
		distance = 0
	}
	if distance > s.Length {
		distance = s.Length
	}
	return s.Path.PointAt(distance)
}

// Spinner spins in place until EndTime.
type Spinner struct {
	Header
	EndTime int
}

func (Spinner) Kind() Kind { return KindSpinner }

// Hold is the mania hold note; its end time is encoded inline in the
// sample field of the line.
type Hold struct {
	Header
	EndTime int
}

func (Hold) Kind() Kind { return KindHold }
