package numword

var englishTable = latinTable{
	units: map[string]int64{
		"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
		"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
		"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
		"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,

		// Homophones that speech recognition commonly produces for digits
		// (spec.md §4.4 en row).
		"to": 2, "too": 2, "for": 4, "fore": 4,

		// Ordinal forms, mapped to the same cardinal value (spec.md §4.4:
		// "ordinals (1st, first, 5th)").
		"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
		"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
		"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
		"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
		"nineteenth": 19,
	},
	tens: map[string]int64{
		"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
		"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,

		"twentieth": 20, "thirtieth": 30, "fortieth": 40, "fiftieth": 50,
		"sixtieth": 60, "seventieth": 70, "eightieth": 80, "ninetieth": 90,
	},
	magnitudes: map[string]int64{
		"hundred": 100, "thousand": 1000, "million": 1000000, "billion": 1000000000,
		"hundredth": 100, "thousandth": 1000,
	},
	filler: map[string]bool{
		"and": true,
	},
	negative: map[string]bool{
		"negative": true, "minus": true,
	},
}
