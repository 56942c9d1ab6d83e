// Package beatmap provides the core data structures for parsed .osu files.
//
// This package defines the Beatmap root aggregate plus the section structs,
// timing points and hit object variants that represent one beatmap. Values
// are constructed once by the decoder and are read-only afterwards.
package beatmap

// Game modes as stored in the [General] Mode key.
const (
	ModeOsu = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

// Beatmap is the fully parsed representation of one .osu file.
//
// All collections are non-nil after a successful decode, even when the
// corresponding section is absent from the file. TimingPoints and
// HitObjects keep file order, which is authoritative: a malformed file
// that lists them out of time order is not re-sorted.
type Beatmap struct {
	// FormatVersion is the N from the "osu file format vN" header.
	FormatVersion int

	General    General
	Editor     Editor
	Metadata   Metadata
	Difficulty Difficulty

	Events       []Event
	TimingPoints []TimingPoint
	Colours      []Colour
	HitObjects   []HitObject

	// Warnings encountered during decoding (non-fatal issues)
	Warnings []Warning
}

// New returns a Beatmap with every field at its documented default and
// all collections allocated empty.
func New() *Beatmap {
	return &Beatmap{
		General: General{
			PreviewTime:     -1,
			SampleSet:       "Normal",
			StackLeniency:   0.7,
			OverlayPosition: "NoChange",
		},
		Editor: Editor{
			DistanceSpacing: 1,
			BeatDivisor:     4,
			GridSize:        4,
			TimelineZoom:    1,
		},
		Difficulty: Difficulty{
			HPDrainRate:       5,
			CircleSize:        5,
			OverallDifficulty: 5,
			ApproachRate:      5,
			SliderMultiplier:  1.4,
			SliderTickRate:    1,
		},
		Events:       []Event{},
		TimingPoints: []TimingPoint{},
		Colours:      []Colour{},
		HitObjects:   []HitObject{},
	}
}

// General holds the [General] section.
type General struct {
	AudioFilename            string
	AudioLeadIn              int
	PreviewTime              int // -1 when unset
	Countdown                int // 0 = disabled
	CountdownOffset          int
	SampleSet                string
	StackLeniency            float64
	Mode                     int
	LetterboxInBreaks        bool
	UseSkinSprites           bool
	OverlayPosition          string
	SkinPreference           string
	EpilepsyWarning          bool
	SpecialStyle             bool
	WidescreenStoryboard     bool
	SamplesMatchPlaybackRate bool
}

// Editor holds the [Editor] section.
type Editor struct {
	Bookmarks       []int
	DistanceSpacing float64
	BeatDivisor     int
	GridSize        int
	TimelineZoom    float64
}

// Metadata holds the [Metadata] section.
type Metadata struct {
	Title         string
	TitleUnicode  string
	Artist        string
	ArtistUnicode string
	Creator       string
	Version       string
	Source        string
	Tags          string
	BeatmapID     int
	BeatmapSetID  int
}

// Difficulty holds the [Difficulty] section. Unspecified values default
// to 5 on the 0-10 scale, SliderMultiplier to 1.4 and SliderTickRate to 1.
type Difficulty struct {
	HPDrainRate       float64
	CircleSize        float64
	OverallDifficulty float64
	ApproachRate      float64
	SliderMultiplier  float64
	SliderTickRate    float64
}

// EventKind classifies an [Events] line.
type EventKind uint8

const (
	// EventBackground is a structurally parsed background image event.
	EventBackground EventKind = iota
	// EventVideo is a structurally parsed video event.
	EventVideo
	// EventOther is any other event line (breaks, storyboard commands),
	// retained verbatim and never interpreted.
	EventOther
)

// Event is one line from the [Events] section, in file order.
type Event struct {
	Kind      EventKind
	StartTime int
	Filename  string
	XOffset   int
	YOffset   int

	// Raw is the verbatim line, set only for EventOther.
	Raw string
}

// Colour is one entry from the [Colours] section.
type Colour struct {
	// Key is the left-hand side as found in the file: "Combo1".."ComboN",
	// "SliderTrackOverride" or "SliderBorder".
	Key     string
	R, G, B uint8
}
