package segment

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textsOf(segs []Segment) []string {
	var out []string
	for _, s := range segs {
		out = append(out, s.Text)
	}
	return out
}

func TestSplit_EmptyInput(t *testing.T) {
	assert.Nil(t, Split("", DefaultOptions()))
	assert.Nil(t, Split(" \n\t ", DefaultOptions()))
}

func TestSplit_MergesShortFragments(t *testing.T) {
	got := Split("床前明月光。疑是地上霜。", DefaultOptions())
	require.Len(t, got, 1)
	assert.Equal(t, "床前明月光，疑是地上霜", got[0].Text)
	assert.Equal(t, 1, got[0].Line)
}

func TestSplit_KeepsPunctuationWhenMerging(t *testing.T) {
	got := Split("好！今天天气真不错。", DefaultOptions())
	assert.Equal(t, []string{"好！今天天气真不错"}, textsOf(got))
}

func TestSplit_Lines(t *testing.T) {
	text := "小兔子住在森林里。\n\n小熊每天去河边钓鱼！"
	got := Split(text, DefaultOptions())
	require.Len(t, got, 2)
	assert.Equal(t, "小兔子住在森林里", got[0].Text)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, "小熊每天去河边钓鱼！", got[1].Text)
	assert.Equal(t, 3, got[1].Line)
}

func TestSplit_LongSentenceAtCommas(t *testing.T) {
	got := Split("一二三四五六，七八九十一二，三四五六", Options{MinRunes: 2, MaxRunes: 10})
	assert.Equal(t, []string{"一二三四五六", "七八九十一二", "三四五六"}, textsOf(got))
}

func TestSplit_HardCut(t *testing.T) {
	got := Split("一二三四五六七八九十", Options{MinRunes: 2, MaxRunes: 5})
	assert.Equal(t, []string{"一二三四五", "六七八九十"}, textsOf(got))
}

func TestSplit_RespectsMax(t *testing.T) {
	text := strings.Repeat("春天来了，小草发芽了，花儿开了，小鸟在树上唱歌。", 5)
	opts := DefaultOptions()
	for _, s := range Split(text, opts) {
		assert.LessOrEqual(t, utf8.RuneCountInString(s.Text), opts.MaxRunes, s.Text)
		assert.NotEmpty(t, s.Text)
	}
}

func TestSplit_ZeroOptionsUseDefaults(t *testing.T) {
	assert.Equal(t, Split("小猫和小狗成了最好的朋友。", DefaultOptions()), Split("小猫和小狗成了最好的朋友。", Options{}))
}
