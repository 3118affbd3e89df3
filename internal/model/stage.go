// internal/model/stage.go
package model

// Stage はカードの学習段階です。(repetitions, intervalDays) から導出される値で、
// 呼び出し側が直接設定することはありません（導出は srs.Classify が行います）。
type Stage string

const (
	StageNew      Stage = "new"
	StageLearning Stage = "learning"
	StageReview   Stage = "review"
	StageMastered Stage = "mastered"
)
