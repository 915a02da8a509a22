package event

import "strconv"

var typeToName = map[EventType]string{
	EventNone:             "None",
	EventGameStart:        "GameStart",
	EventLaunch:           "Launch",
	EventPreviewReady:     "PreviewReady",
	EventRankUp:           "RankUp",
	EventDifficultyTierUp: "DifficultyTierUp",
	EventWarningChanged:   "WarningChanged",
	EventGameOver:         "GameOver",
	EventSessionReset:     "SessionReset",
}

// String returns the registered name, or the numeric value for unknown types
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "EventType(" + strconv.Itoa(int(t)) + ")"
}

// GetEventType returns the EventType for a registered name
func GetEventType(name string) (EventType, bool) {
	for t, n := range typeToName {
		if n == name {
			return t, true
		}
	}
	return EventNone, false
}
