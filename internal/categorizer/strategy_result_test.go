package categorizer

import (
	"errors"
	"testing"

	"fjacquet/gastos-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyResults(t *testing.T) {
	hit := models.ClassificationResult{SubcategoryName: "Comida", Score: 10, Tier: models.TierLocal}

	tests := []struct {
		name          string
		results       []StrategyResult
		expectedFinal models.ClassificationResult
		expectedSumm  string
		expectedErrs  int
	}{
		{
			name:          "empty trace",
			expectedFinal: models.DefaultClassification(),
			expectedSumm:  "",
		},
		{
			name:          "first tier hits",
			results:       []StrategyResult{{Strategy: "Keyword", Result: hit, Found: true}},
			expectedFinal: hit,
			expectedSumm:  "Keyword:success",
		},
		{
			name: "failure then miss",
			results: []StrategyResult{
				{Strategy: "Keyword"},
				{Strategy: "Remote", Error: errors.New("boom")},
			},
			expectedFinal: models.DefaultClassification(),
			expectedSumm:  "Keyword:no_match, Remote:failed",
			expectedErrs:  1,
		},
		{
			name: "found with error is ignored",
			results: []StrategyResult{
				{Strategy: "Remote", Result: hit, Found: true, Error: errors.New("boom")},
			},
			expectedFinal: models.DefaultClassification(),
			expectedSumm:  "Remote:failed",
			expectedErrs:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := StrategyResults{Results: tt.results}
			assert.Equal(t, tt.expectedFinal, sr.Final())
			assert.Equal(t, tt.expectedSumm, sr.Summary())
			assert.Len(t, sr.GetErrors(), tt.expectedErrs)
		})
	}
}

func TestStrategyResults_ErrorPrefix(t *testing.T) {
	cause := errors.New("boom")
	sr := StrategyResults{Results: []StrategyResult{{Strategy: "Remote", Error: cause}}}

	errs := sr.GetErrors()
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "Remote strategy: boom")
	assert.ErrorIs(t, errs[0], cause)
}
