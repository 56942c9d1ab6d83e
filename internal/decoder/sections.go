package decoder

import (
	"path/filepath"
	"strings"

	"github.com/Vergenter/osuparser/internal/beatmap"
)

// Key-value section parsers. Keys are matched case-sensitively as they
// appear in real files; unknown keys are ignored for forward
// compatibility. Coercion failures warn and keep the default.

func (d *decoder) parseGeneral(line string, n int) error {
	const stage = "general"
	key, val := splitKeyVal(line)
	g := &d.bm.General
	switch key {
	case "AudioFilename":
		g.AudioFilename = cleanFilename(val)
	case "AudioLeadIn":
		g.AudioLeadIn = d.intField(stage, n, key, val, 0)
	case "PreviewTime":
		t := d.intField(stage, n, key, val, -1)
		if t != -1 {
			t += d.offset
		}
		g.PreviewTime = t
	case "Countdown":
		g.Countdown = d.intField(stage, n, key, val, 0)
	case "CountdownOffset":
		g.CountdownOffset = d.intField(stage, n, key, val, 0)
	case "SampleSet":
		g.SampleSet = val
	case "StackLeniency":
		g.StackLeniency = d.floatField(stage, n, key, val, 0.7)
	case "Mode":
		g.Mode = d.intField(stage, n, key, val, 0)
	case "LetterboxInBreaks":
		g.LetterboxInBreaks = boolField(val)
	case "UseSkinSprites":
		g.UseSkinSprites = boolField(val)
	case "OverlayPosition":
		g.OverlayPosition = val
	case "SkinPreference":
		g.SkinPreference = val
	case "EpilepsyWarning":
		g.EpilepsyWarning = boolField(val)
	case "SpecialStyle":
		g.SpecialStyle = boolField(val)
	case "WidescreenStoryboard":
		g.WidescreenStoryboard = boolField(val)
	case "SamplesMatchPlaybackRate":
		g.SamplesMatchPlaybackRate = boolField(val)
	}
	return nil
}

func (d *decoder) parseEditor(line string, n int) error {
	const stage = "editor"
	key, val := splitKeyVal(line)
	e := &d.bm.Editor
	switch key {
	case "Bookmarks":
		if strings.TrimSpace(val) == "" {
			break
		}
		for _, p := range strings.Split(val, ",") {
			if p = strings.TrimSpace(p); p != "" {
				e.Bookmarks = append(e.Bookmarks, d.intField(stage, n, key, p, 0))
			}
		}
	case "DistanceSpacing":
		e.DistanceSpacing = d.floatField(stage, n, key, val, 1)
	case "BeatDivisor":
		e.BeatDivisor = clampInt(d.intField(stage, n, key, val, 4), 1, 16)
	case "GridSize":
		e.GridSize = d.intField(stage, n, key, val, 4)
	case "TimelineZoom":
		e.TimelineZoom = d.floatField(stage, n, key, val, 1)
	}
	return nil
}

func (d *decoder) parseMetadata(line string, n int) error {
	const stage = "metadata"
	key, val := splitKeyVal(line)
	m := &d.bm.Metadata
	switch key {
	case "Title":
		m.Title = val
	case "TitleUnicode":
		m.TitleUnicode = val
	case "Artist":
		m.Artist = val
	case "ArtistUnicode":
		m.ArtistUnicode = val
	case "Creator":
		m.Creator = val
	case "Version":
		m.Version = val
	case "Source":
		m.Source = val
	case "Tags":
		m.Tags = val
	case "BeatmapID":
		m.BeatmapID = d.intField(stage, n, key, val, 0)
	case "BeatmapSetID":
		m.BeatmapSetID = d.intField(stage, n, key, val, 0)
	}
	return nil
}

func (d *decoder) parseDifficulty(line string, n int) error {
	const stage = "difficulty"
	key, val := splitKeyVal(line)
	diff := &d.bm.Difficulty
	switch key {
	case "HPDrainRate":
		diff.HPDrainRate = d.floatField(stage, n, key, val, 5)
	case "CircleSize":
		diff.CircleSize = d.floatField(stage, n, key, val, 5)
	case "OverallDifficulty":
		diff.OverallDifficulty = d.floatField(stage, n, key, val, 5)
		// AR mirrors OD until an ApproachRate key is seen.
		if !d.seenAR {
			diff.ApproachRate = diff.OverallDifficulty
		}
	case "ApproachRate":
		diff.ApproachRate = d.floatField(stage, n, key, val, 5)
		d.seenAR = true
	case "SliderMultiplier":
		// Clamped on assignment: slider durations are derived from this
		// while hit objects are still being read.
		diff.SliderMultiplier = clamp(d.floatField(stage, n, key, val, 1.4), 0.4, 3.6)
	case "SliderTickRate":
		diff.SliderTickRate = clamp(d.floatField(stage, n, key, val, 1), 0.5, 8)
	}
	return nil
}

// Video file extensions; a "Video" event pointing at anything else is a
// background image in disguise (reference behavior).
var videoExts = map[string]bool{
	".avi": true, ".flv": true, ".mp4": true, ".mkv": true, ".mov": true,
	".wmv": true, ".mpg": true, ".mpeg": true, ".ogv": true, ".webm": true,
}

// parseEvents structurally parses background and video events; every
// other event line (breaks, storyboard commands) is retained verbatim
// and never interpreted.
func (d *decoder) parseEvents(line string, n int) error {
	const stage = "events"
	parts := splitCSV(line)
	bm := d.bm

	other := func() {
		bm.Events = append(bm.Events, beatmap.Event{Kind: beatmap.EventOther, Raw: line})
	}

	switch parts[0] {
	case "0", "Background":
		if len(parts) < 3 {
			other()
			return nil
		}
		bm.Events = append(bm.Events, beatmap.Event{
			Kind:      beatmap.EventBackground,
			StartTime: d.intField(stage, n, "start time", parts[1], 0) + d.offset,
			Filename:  cleanFilename(parts[2]),
			XOffset:   d.intField(stage, n, "x offset", field(parts, 3), 0),
			YOffset:   d.intField(stage, n, "y offset", field(parts, 4), 0),
		})
	case "1", "Video":
		if len(parts) < 3 {
			other()
			return nil
		}
		filename := cleanFilename(parts[2])
		kind := beatmap.EventVideo
		if !videoExts[strings.ToLower(filepath.Ext(filename))] {
			kind = beatmap.EventBackground
		}
		bm.Events = append(bm.Events, beatmap.Event{
			Kind:      kind,
			StartTime: d.intField(stage, n, "start time", parts[1], 0) + d.offset,
			Filename:  filename,
			XOffset:   d.intField(stage, n, "x offset", field(parts, 3), 0),
			YOffset:   d.intField(stage, n, "y offset", field(parts, 4), 0),
		})
	default:
		other()
	}
	return nil
}

// parseColour reads one Combo1..ComboN / SliderTrackOverride /
// SliderBorder triplet. A malformed triplet warns and is skipped; there
// is no sensible default colour.
func (d *decoder) parseColour(line string, n int) error {
	const stage = "colours"
	key, val := splitKeyVal(line)
	parts := strings.Split(val, ",")
	if len(parts) < 3 {
		d.warnf(stage, n, "%s: %q is not an r,g,b triplet", key, val)
		return nil
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		c := d.intField(stage, n, key, parts[i], 0)
		if c < 0 || c > 255 {
			d.warnf(stage, n, "%s: channel %d out of range, clamping", key, c)
			c = clampInt(c, 0, 255)
		}
		rgb[i] = uint8(c)
	}
	d.bm.Colours = append(d.bm.Colours, beatmap.Colour{Key: key, R: rgb[0], G: rgb[1], B: rgb[2]})
	return nil
}
