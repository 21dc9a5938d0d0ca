package numword

// hanDigits maps Han numeral characters (simplified, traditional, and the
// financial/formal variants) to their digit value 0-9. Shared by zh-cn,
// zh-hk, and ja-jp (spec.md §4.4).
var hanDigits = map[rune]int64{
	'〇': 0, '零': 0,
	'一': 1, '壹': 1,
	'二': 2, '贰': 2, '貳': 2, '两': 2, '兩': 2,
	'三': 3, '叁': 3, '參': 3,
	'四': 4, '肆': 4,
	'五': 5, '伍': 5,
	'六': 6, '陆': 6, '陸': 6,
	'七': 7, '柒': 7,
	'八': 8, '捌': 8,
	'九': 9, '玖': 9,
}

// hanMagnitudes maps Han magnitude characters to their multiplier value.
var hanMagnitudes = map[rune]int64{
	'十': 10, '拾': 10,
	'百': 100, '佰': 100,
	'千': 1000, '仟': 1000,
	'万': 10000, '萬': 10000,
	'亿': 100000000, '億': 100000000,
}

// katakanaWord is one entry in the ja-jp spelled-digit table: a multi-rune
// katakana reading of a digit or magnitude (spec.md §4.4 ja-jp row).
type katakanaWord struct {
	value     int64
	magnitude bool
}

// katakanaDigits maps katakana readings to their value. Ordered by
// descending rune length elsewhere (katakanaByLength) so a scan always
// prefers the longest matching reading.
var katakanaDigits = map[string]katakanaWord{
	"ゼロ":  {0, false},
	"イチ":  {1, false},
	"ニ":   {2, false},
	"サン":  {3, false},
	"ヨン":  {4, false},
	"シ":   {4, false},
	"ゴ":   {5, false},
	"ロク":  {6, false},
	"ナナ":  {7, false},
	"シチ":  {7, false},
	"ハチ":  {8, false},
	"キュウ": {9, false},
	"ク":   {9, false},
	"ジュウ": {10, true},
	"ヒャク": {100, true},
	"セン":  {1000, true},
	"マン":  {10000, true},
}

// katakanaByLength lists katakana keys ordered longest-first so a greedy
// scan never matches a short reading that is a prefix of a longer one.
var katakanaByLength = buildKatakanaByLength()

func buildKatakanaByLength() []string {
	keys := make([]string, 0, len(katakanaDigits))
	for k := range katakanaDigits {
		keys = append(keys, k)
	}
	// Simple insertion sort by descending rune count; the table is tiny.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && len([]rune(keys[j])) > len([]rune(keys[j-1])); j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
