package domain

// Button represents one action available on a super-topic entry,
// e.g. the check-in button with its invocation scheme.
type Button struct {
	Name   string
	Scheme string
}

// Topic represents one followed super-topic as returned by the list endpoint.
// Topics are produced fresh on every run and never persisted.
type Topic struct {
	Name       string
	Descriptor string // free-text status hint, e.g. "LV.5 今日可签到"
	Buttons    []Button
}

// Status is the classification of a topic's check-in state
type Status string

const (
	// StatusEligible means the topic has a check-in button that can be pressed
	StatusEligible Status = "eligible"
	// StatusCheckedIn means the topic was already checked in today
	StatusCheckedIn Status = "checked_in"
	// StatusUnknown means no recognized button was found
	StatusUnknown Status = "unknown"
	// StatusSkipped means the entry lacked a name or buttons and is not counted
	StatusSkipped Status = "skipped"
)

// Classification is the result of classifying a single topic.
// Scheme is set only for StatusEligible.
type Classification struct {
	Status Status
	Scheme string
}
