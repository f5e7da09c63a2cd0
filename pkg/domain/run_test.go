package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrigger_Automated(t *testing.T) {
	assert.False(t, TriggerManual.Automated())
	assert.True(t, TriggerTimer.Automated())
	assert.True(t, TriggerCatchUp.Automated())
}

func TestRunResult_CompletionRate(t *testing.T) {
	tests := []struct {
		name   string
		result RunResult
		want   float64
	}{
		{"all covered", RunResult{TotalTopics: 10, CheckedInBefore: 4, NewlyCheckedIn: 6}, 1.0},
		{"partial", RunResult{TotalTopics: 10, CheckedInBefore: 2, NewlyCheckedIn: 3}, 0.5},
		{"failures reduce rate", RunResult{TotalTopics: 4, CheckedInBefore: 1, NewlyCheckedIn: 1, FailedCheckin: 2}, 0.5},
		{"zero topics", RunResult{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.result.CompletionRate(), 0.0001)
		})
	}
}
