package numword

var spanishTable = latinTable{
	units: map[string]int64{
		"cero": 0, "uno": 1, "un": 1, "dos": 2, "tres": 3, "cuatro": 4,
		"cinco": 5, "seis": 6, "siete": 7, "ocho": 8, "nueve": 9,
		"diez": 10, "once": 11, "doce": 12, "trece": 13, "catorce": 14,
		"quince": 15, "dieciseis": 16, "diecisiete": 17, "dieciocho": 18,
		"diecinueve": 19,
	},
	tens: map[string]int64{
		"veinte": 20, "treinta": 30, "cuarenta": 40, "cincuenta": 50,
		"sesenta": 60, "setenta": 70, "ochenta": 80, "noventa": 90,
	},
	hundreds: map[string]int64{
		"doscientos": 200, "trescientos": 300, "cuatrocientos": 400,
		"quinientos": 500, "seiscientos": 600, "setecientos": 700,
		"ochocientos": 800, "novecientos": 900,
	},
	magnitudes: map[string]int64{
		"cien": 100, "ciento": 100, "mil": 1000, "millon": 1000000, "millones": 1000000,
	},
	filler: map[string]bool{
		"y": true,
	},
	tensUnitRequiresFiller: true,
	negative: map[string]bool{
		"negativo": true, "menos": true,
	},
}
