package numword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// zh-cn / zh-hk: spec.md §4.4 row ("supports mixed Arabic+Han").
func TestCJKChineseHanNumeralsAndMixedDigits(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"十", "10"},
		{"十一", "11"},
		{"二十", "20"},
		{"一百一十一", "111"},
		{"一万二千三百四十五", "12345"},
		{"100 1 10 1", "111"},
		{"一亿", "100000000"},
	}
	for _, c := range cases {
		got, err := parse(t, c.text, "zh-cn")
		assert.NoError(t, err, c.text)
		assert.Equal(t, c.want, got, c.text)
	}
}

func TestCJKChineseFullwidthDigits(t *testing.T) {
	got, err := parse(t, "１１１", "zh-cn")
	assert.NoError(t, err)
	assert.Equal(t, "111", got)
}

func TestCJKChineseHongKongSharesHanTables(t *testing.T) {
	got, err := parse(t, "一百一十一", "zh-hk")
	assert.NoError(t, err)
	assert.Equal(t, "111", got)
}

// ja-jp: spec.md §4.4 row, plus katakana-spelled digits.
func TestCJKJapaneseHanNumerals(t *testing.T) {
	got, err := parse(t, "百十一", "ja-jp")
	assert.NoError(t, err)
	assert.Equal(t, "111", got)
}

func TestCJKJapaneseKatakanaSpelledDigits(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"ジュウイチ", "11"},      // juu(10,magnitude) + ichi(1) -> 11
		{"ヒャクジュウイチ", "111"}, // hyaku(100) + juu(10) + ichi(1) -> 111
		{"ニジュウ", "20"},       // ni(2) + juu(10,magnitude) -> 20
	}
	for _, c := range cases {
		got, err := parse(t, c.text, "ja-jp")
		assert.NoError(t, err, c.text)
		assert.Equal(t, c.want, got, c.text)
	}
}

func TestCJKRejectsUnclassifiedRune(t *testing.T) {
	_, err := parse(t, "猫十一", "zh-cn")
	assert.Error(t, err)
}
