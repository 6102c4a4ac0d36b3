package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcliao/corpusgen/internal/model"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single han run", "圆的面积", []string{"圆的面积"}},
		{"long run split by four", "我喜欢春天的小鸟", []string{"我喜欢春", "天的小鸟"}},
		{"lone characters skipped", "a 一 b 二", nil},
		{"punctuation breaks runs", "春天，夏天。", []string{"春天", "夏天"}},
		{"duplicates removed", "春天，春天", []string{"春天"}},
		{"latin ignored", "hello 月亮 world", []string{"月亮"}},
		{"capped at five", "一二，三四，五六，七八，九十，百千", []string{"一二", "三四", "五六", "七八", "九十"}},
		{"tail of three", "小兔子跳", []string{"小兔子跳"}},
		{"five leaves one", "一二三四五", []string{"一二三四"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.input))
		})
	}
}

func TestJaccard(t *testing.T) {
	assert.Equal(t, 0.0, Jaccard("", ""))
	assert.Equal(t, 0.0, Jaccard("abc", ""))
	assert.Equal(t, 1.0, Jaccard("abc", "cba"))
	assert.Equal(t, 1.0, Jaccard("aab", "ab"))
	assert.InDelta(t, 1.0/3.0, Jaccard("ab", "bc"), 1e-9)
	assert.InDelta(t, 0.5, Jaccard("春天", "春风天气"), 1e-9)
}

func TestFuzzyMatch(t *testing.T) {
	assert.True(t, fuzzyMatch("圆的面积", "面积"))
	assert.True(t, fuzzyMatch("圆", "圆的面积"))
	assert.True(t, fuzzyMatch("月亮", "月亮"))
	assert.False(t, fuzzyMatch("月亮", "太阳"))
	assert.False(t, fuzzyMatch("", "太阳"))
}

func TestInLengthBand(t *testing.T) {
	short := strings.Repeat("字", 29)
	medLow := strings.Repeat("字", 30)
	medHigh := strings.Repeat("字", 60)
	long := strings.Repeat("字", 61)

	assert.True(t, inLengthBand(short, model.LengthShort))
	assert.False(t, inLengthBand(medLow, model.LengthShort))
	assert.True(t, inLengthBand(medLow, model.LengthMedium))
	assert.True(t, inLengthBand(medHigh, model.LengthMedium))
	assert.False(t, inLengthBand(long, model.LengthMedium))
	assert.True(t, inLengthBand(long, model.LengthLong))
	assert.False(t, inLengthBand(medHigh, model.LengthLong))
}

func TestInferDifficulty(t *testing.T) {
	assert.Equal(t, model.DifficultyEasy, InferDifficulty(""))
	assert.Equal(t, model.DifficultyEasy, InferDifficulty("你好 小朋友"))
	assert.Equal(t, model.DifficultyMedium, InferDifficulty("今天天气很好我们一起去公园"))
	assert.Equal(t, model.DifficultyHard, InferDifficulty("一二，三四，五六，七八九十一"))
	assert.Equal(t, model.DifficultyHard, InferDifficulty(strings.Repeat("长", 31)))
}

func TestUnionStrings(t *testing.T) {
	got := unionStrings([]string{"a", "b"}, nil, []string{"b", "c", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Nil(t, unionStrings(nil, nil))
}
