// Package kana models the gojuon syllabary layout and the seed tables
// for the basic hiragana and katakana decks.
package kana

// Pair is one drill unit: the glyph shown to the learner and its romaji
// reading.
type Pair struct {
	Kana   string
	Romaji string
}

// gojuonRomaji lists the readings of the 30 basic gojuon characters in
// table order (vowel row first, then k/s/t/n/h rows).
var gojuonRomaji = []string{
	"a", "i", "u", "e", "o",
	"ka", "ki", "ku", "ke", "ko",
	"sa", "shi", "su", "se", "so",
	"ta", "chi", "tsu", "te", "to",
	"na", "ni", "nu", "ne", "no",
	"ha", "hi", "fu", "he", "ho",
}

const (
	hiraganaBasics = "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほ"
	katakanaBasics = "アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホ"
)

// HiraganaBasics returns the seed pairs for the hiragana basics deck.
func HiraganaBasics() []Pair {
	return pairs(hiraganaBasics)
}

// KatakanaBasics returns the seed pairs for the katakana basics deck.
func KatakanaBasics() []Pair {
	return pairs(katakanaBasics)
}

func pairs(chars string) []Pair {
	runes := []rune(chars)
	out := make([]Pair, 0, len(runes))
	for i, r := range runes {
		out = append(out, Pair{Kana: string(r), Romaji: gojuonRomaji[i]})
	}
	return out
}

// Vowels returns the five vowel endings, in grid row order.
func Vowels() []string {
	return []string{"a", "i", "u", "e", "o"}
}

// Consonants returns the ten consonant columns of the gojuon grid. The
// empty string is the vowel-only column.
func Consonants() []string {
	return []string{"", "k", "s", "t", "n", "h", "m", "y", "r", "w"}
}

// CellKey returns the romaji key for a grid cell, e.g. ("k","a") → "ka".
// Irregular readings (shi, chi, tsu, fu) are applied so the key matches
// the seeded card answers.
func CellKey(consonant, vowel string) string {
	key := consonant + vowel
	switch key {
	case "si":
		return "shi"
	case "ti":
		return "chi"
	case "tu":
		return "tsu"
	case "hu":
		return "fu"
	}
	return key
}
