package checkin

import "github.com/umputun/chaohua/pkg/domain"

// checkinButton is the literal name of the actionable check-in button
const checkinButton = "签到"

// checkedInButtons are the literal names indicating today's check-in is done
var checkedInButtons = map[string]struct{}{
	"已签":   {},
	"已签到":  {},
	"明日再来": {},
}

// Classify inspects a topic's buttons and derives its check-in status.
// The scan is order-respecting with first match wins: a check-in button
// takes effect even if an "already signed" button follows it, and vice versa.
// Entries lacking a name or buttons are marked skipped and excluded from
// run totals. Pure function, no side effects.
func Classify(topic domain.Topic) domain.Classification {
	if topic.Name == "" || len(topic.Buttons) == 0 {
		return domain.Classification{Status: domain.StatusSkipped}
	}

	for _, btn := range topic.Buttons {
		if btn.Name == checkinButton {
			return domain.Classification{Status: domain.StatusEligible, Scheme: btn.Scheme}
		}
		if _, ok := checkedInButtons[btn.Name]; ok {
			return domain.Classification{Status: domain.StatusCheckedIn}
		}
	}
	return domain.Classification{Status: domain.StatusUnknown}
}
