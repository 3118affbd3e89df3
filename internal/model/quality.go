// internal/model/quality.go
package model

import "fmt"

// Quality は学習者が自己申告する想起の確信度です。
// UIの4つのボタンに対応する閉じた列挙型で、生の整数は受け付けません。
type Quality int

const (
	QualityAgain Quality = iota // 0: 思い出せなかった（ラプス）
	QualityHard                 // 1: かろうじて思い出せた
	QualityGood                 // 2: 思い出せた
	QualityEasy                 // 3: 余裕で思い出せた
)

var qualityNames = map[Quality]string{
	QualityAgain: "again",
	QualityHard:  "hard",
	QualityGood:  "good",
	QualityEasy:  "easy",
}

// Valid は定義済みの4グレードのいずれかであるかを返します。
func (q Quality) Valid() bool {
	return q >= QualityAgain && q <= QualityEasy
}

func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("quality(%d)", int(q))
}

// ParseQuality はAPIで受け取った文字列をQualityに変換します。
func ParseQuality(s string) (Quality, error) {
	for q, name := range qualityNames {
		if name == s {
			return q, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidQuality)
}
