// internal/srs/selector.go
package srs

import (
	"sort"
	"time"

	"go_5_flash_keep/internal/model"
)

// SelectDue はスナップショットからレビュー対象（nextReviewAt <= now）を選び、
// 緊急度順に並べて返します。並び順は
//  1. 未学習（stage=new）のカードを先頭に
//  2. 残りは nextReviewAt の昇順（延滞が長いものから）
//  3. 同時刻はカードIDで決定的にタイブレーク
// limit が正なら先頭 limit 件に切り詰め、0以下なら無制限です。
// 入力スライスは変更しません。副作用はなく、同じ入力には常に同じ出力を返します。
func SelectDue(cards []model.ReviewCard, now time.Time, limit int) []model.ReviewCard {
	due := make([]model.ReviewCard, 0, len(cards))
	for _, c := range cards {
		if !c.NextReviewAt.After(now) {
			due = append(due, c)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		// 保存済みのStageではなく導出値で判定する（ストア側が古くても壊れない）
		iNew := Classify(due[i].Repetitions, due[i].IntervalDays) == model.StageNew
		jNew := Classify(due[j].Repetitions, due[j].IntervalDays) == model.StageNew
		if iNew != jNew {
			return iNew
		}
		if !due[i].NextReviewAt.Equal(due[j].NextReviewAt) {
			return due[i].NextReviewAt.Before(due[j].NextReviewAt)
		}
		return due[i].CardID.String() < due[j].CardID.String()
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}
