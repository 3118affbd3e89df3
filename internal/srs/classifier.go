// internal/srs/classifier.go
package srs

import "go_5_flash_keep/internal/model"

// MasteryThresholdDays 以上の間隔に到達したカードを mastered とみなします。
const MasteryThresholdDays = 21

// Classify は (repetitions, intervalDays) から学習段階を導出します。
// 純粋関数です。ラプスで repetitions が0に戻らない限り、成功を重ねても
// 段階が後退することはありません。
func Classify(repetitions, intervalDays int) model.Stage {
	switch {
	case repetitions == 0:
		return model.StageNew
	case repetitions <= 2:
		return model.StageLearning
	case intervalDays < MasteryThresholdDays:
		return model.StageReview
	default:
		return model.StageMastered
	}
}
