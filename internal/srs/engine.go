// internal/srs/engine.go
package srs

import (
	"fmt"
	"math"
	"time"

	"go_5_flash_keep/internal/model"
)

// 更新式の定数。SM-2系の2係数方式をベースに、4グレードUIに合わせて調整したもの。
const (
	lapseEasePenalty = 0.20
	hardEasePenalty  = 0.15
	easyEaseBonus    = 0.15

	firstInterval  = 1 // 初回成功後の間隔（日）
	secondInterval = 6 // 2回連続成功後の間隔（日）
)

// Update は1回のグレード付けレビューを反映した新しいカードを返します。
// 純粋関数です。引数を書き換えず、I/Oもログ出力も行いません。
// 同じ入力で2回呼べば同じ結果が返ります。
//
// quality が定義外なら ErrInvalidQuality、カードが不変条件
// （repetitions >= 0, easeFactor >= 1.3）を満たさなければ ErrInvalidCardState を
// 返します。後者は上流のデータ破損なので、ここで補正はしません。
func Update(card model.ReviewCard, quality model.Quality, now time.Time) (model.ReviewCard, error) {
	if !quality.Valid() {
		return model.ReviewCard{}, fmt.Errorf("quality=%d: %w", int(quality), model.ErrInvalidQuality)
	}
	if card.Repetitions < 0 || card.EaseFactor < model.MinEaseFactor {
		return model.ReviewCard{}, fmt.Errorf(
			"card %s: repetitions=%d ease_factor=%.3f: %w",
			card.CardID, card.Repetitions, card.EaseFactor, model.ErrInvalidCardState)
	}

	if quality == model.QualityAgain {
		// ラプス: 連続成功回数をリセットし、翌日に再レビュー
		card.Repetitions = 0
		card.IntervalDays = 1
		card.EaseFactor = clampEase(card.EaseFactor - lapseEasePenalty)
	} else {
		card.Repetitions++
		switch quality {
		case model.QualityHard:
			card.EaseFactor = clampEase(card.EaseFactor - hardEasePenalty)
		case model.QualityEasy:
			card.EaseFactor = clampEase(card.EaseFactor + easyEaseBonus)
		}

		switch {
		case card.Repetitions == 1:
			card.IntervalDays = firstInterval
		case card.Repetitions == 2:
			card.IntervalDays = secondInterval
		default:
			grown := int(math.Round(float64(card.IntervalDays) * card.EaseFactor))
			// easeFactor が下限に張り付いていても最低1日は前進させる
			if grown <= card.IntervalDays {
				grown = card.IntervalDays + 1
			}
			card.IntervalDays = grown
		}
	}

	reviewedAt := now
	card.LastReviewedAt = &reviewedAt
	card.NextReviewAt = now.AddDate(0, 0, card.IntervalDays)
	card.UpdatedAt = now
	card.Stage = Classify(card.Repetitions, card.IntervalDays)

	return card, nil
}

func clampEase(ease float64) float64 {
	if ease < model.MinEaseFactor {
		return model.MinEaseFactor
	}
	return ease
}
