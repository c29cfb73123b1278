package sheet

// Tone is the color family a badge is drawn in. Themes map tones to colors.
type Tone int

const (
	ToneUnknown Tone = iota
	ToneGreen
	ToneYellow
	ToneRed
	ToneBlue
)

func (t Tone) String() string {
	switch t {
	case ToneGreen:
		return "green"
	case ToneYellow:
		return "yellow"
	case ToneRed:
		return "red"
	case ToneBlue:
		return "blue"
	default:
		return "unknown"
	}
}

var statusTones = map[Status]Tone{
	StatusComplete:     ToneGreen,
	StatusInProgress:   ToneYellow,
	StatusBlocked:      ToneRed,
	StatusNeedsToStart: ToneBlue,
}

var priorityTones = map[Priority]Tone{
	PriorityHigh:   ToneRed,
	PriorityMedium: ToneYellow,
	PriorityLow:    ToneGreen,
}

// StatusTone maps a status to its badge tone; unmatched values are ToneUnknown.
func StatusTone(s Status) Tone {
	return statusTones[s]
}

// PriorityTone maps a priority to its badge tone; unmatched values are ToneUnknown.
func PriorityTone(p Priority) Tone {
	return priorityTones[p]
}

// BadgeTone returns the tone for a badge field of r. Non-badge fields are
// ToneUnknown.
func BadgeTone(r *Record, f Field) Tone {
	switch f {
	case FieldStatus:
		return StatusTone(r.Status)
	case FieldPriority:
		return PriorityTone(r.Priority)
	default:
		return ToneUnknown
	}
}
