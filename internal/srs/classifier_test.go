// internal/srs/classifier_test.go
package srs

import (
	"testing"
	"time"

	"go_5_flash_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		reps     int
		interval int
		want     model.Stage
	}{
		{"未レビューはnew", 0, 0, model.StageNew},
		{"ラプス直後もnew (間隔に関わらず)", 0, 1, model.StageNew},
		{"1回成功でlearning", 1, 1, model.StageLearning},
		{"2回成功でもlearning", 2, 6, model.StageLearning},
		{"3回成功かつ閾値未満はreview", 3, 16, model.StageReview},
		{"閾値ちょうど手前はreview", 5, MasteryThresholdDays - 1, model.StageReview},
		{"閾値ちょうどでmastered", 3, MasteryThresholdDays, model.StageMastered},
		{"閾値超えでmastered", 8, 120, model.StageMastered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.reps, tt.interval))
		})
	}
}

// ラプスを挟まない限り、成功を重ねても段階が後退しないこと
func TestClassify_MonotonicWithoutLapse(t *testing.T) {
	rank := map[model.Stage]int{
		model.StageNew:      0,
		model.StageLearning: 1,
		model.StageReview:   2,
		model.StageMastered: 3,
	}

	card := newTestCard(0, 0, model.DefaultEaseFactor)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	prev := rank[Classify(card.Repetitions, card.IntervalDays)]

	for _, q := range []model.Quality{
		model.QualityGood, model.QualityHard, model.QualityGood,
		model.QualityEasy, model.QualityGood, model.QualityGood,
	} {
		updated, err := Update(card, q, now)
		require.NoError(t, err)
		cur := rank[Classify(updated.Repetitions, updated.IntervalDays)]
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
		card = updated
		now = updated.NextReviewAt
	}
}
