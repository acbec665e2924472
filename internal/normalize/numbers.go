package normalize

import "strconv"

// numberWords maps folded Portuguese cardinals to their values. Covers 0-999
// composites plus "mil"; "e" between number words is a connector.
var numberWords = map[string]int{
	"zero":     0,
	"um":       1,
	"uma":      1,
	"dois":     2,
	"duas":     2,
	"tres":     3,
	"quatro":   4,
	"cinco":    5,
	"seis":     6,
	"sete":     7,
	"oito":     8,
	"nove":     9,
	"dez":      10,
	"onze":     11,
	"doze":     12,
	"treze":    13,
	"catorze":  14,
	"quatorze": 14,
	"quinze":   15,
	"dezesseis": 16,
	"dezessete": 17,
	"dezoito":   18,
	"dezenove":  19,
	"vinte":     20,
	"trinta":    30,
	"quarenta":  40,
	"cinquenta": 50,
	"sessenta":  60,
	"setenta":   70,
	"oitenta":   80,
	"noventa":   90,
	"cem":         100,
	"cento":       100,
	"duzentos":    200,
	"trezentos":   300,
	"quatrocentos": 400,
	"quinhentos":  500,
	"seiscentos":  600,
	"setecentos":  700,
	"oitocentos":  800,
	"novecentos":  900,
	"mil":         1000,
}

// foldNumberPhrases merges runs of number words into a single numeric token
// whose span covers the whole phrase: "cento e cinquenta" -> "150".
func foldNumberPhrases(text string, tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if _, ok := numberWords[tokens[i].Norm]; !ok {
			out = append(out, tokens[i])
			i++
			continue
		}

		total, temp := 0, 0
		end := i
		j := i
		for j < len(tokens) {
			w := tokens[j].Norm
			if v, ok := numberWords[w]; ok {
				if v == 1000 {
					// "mil" multiplies the accumulated hundreds; bare "mil" is 1000.
					if temp == 0 {
						temp = 1
					}
					total += temp * 1000
					temp = 0
				} else {
					temp += v
				}
				end = j
				j++
				continue
			}
			// "e" connects number words only when another one follows.
			if w == "e" && j+1 < len(tokens) {
				if _, ok := numberWords[tokens[j+1].Norm]; ok {
					j++
					continue
				}
			}
			break
		}
		total += temp

		first, last := tokens[i], tokens[end]
		out = append(out, Token{
			Norm:  strconv.Itoa(total),
			Raw:   text[first.Start:last.End],
			Start: first.Start,
			End:   last.End,
		})
		i = j
	}
	return out
}
