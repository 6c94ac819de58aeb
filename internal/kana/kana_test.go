package kana

import "testing"

func TestBasicsSeedTables(t *testing.T) {
	hira := HiraganaBasics()
	kata := KatakanaBasics()

	if len(hira) != 30 {
		t.Fatalf("hiragana basics = %d pairs, want 30", len(hira))
	}
	if len(kata) != 30 {
		t.Fatalf("katakana basics = %d pairs, want 30", len(kata))
	}

	if hira[0].Kana != "あ" || hira[0].Romaji != "a" {
		t.Errorf("first hiragana pair = %+v, want あ/a", hira[0])
	}
	if kata[11].Kana != "シ" || kata[11].Romaji != "shi" {
		t.Errorf("12th katakana pair = %+v, want シ/shi", kata[11])
	}

	// Readings line up across the two syllabaries.
	for i := range hira {
		if hira[i].Romaji != kata[i].Romaji {
			t.Errorf("reading mismatch at %d: %s vs %s", i, hira[i].Romaji, kata[i].Romaji)
		}
	}
}

func TestCellKeyIrregulars(t *testing.T) {
	tests := []struct {
		consonant, vowel, want string
	}{
		{"", "a", "a"},
		{"k", "o", "ko"},
		{"s", "i", "shi"},
		{"t", "i", "chi"},
		{"t", "u", "tsu"},
		{"h", "u", "fu"},
		{"w", "a", "wa"},
	}
	for _, tt := range tests {
		if got := CellKey(tt.consonant, tt.vowel); got != tt.want {
			t.Errorf("CellKey(%q,%q) = %q, want %q", tt.consonant, tt.vowel, got, tt.want)
		}
	}
}

func TestGridShape(t *testing.T) {
	if len(Vowels()) != 5 {
		t.Errorf("vowels = %d, want 5", len(Vowels()))
	}
	cons := Consonants()
	if len(cons) != 10 {
		t.Errorf("consonants = %d, want 10", len(cons))
	}
	if cons[0] != "" {
		t.Errorf("first consonant column should be the vowel-only column")
	}
}
