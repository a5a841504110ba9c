package entity

import "testing"

func TestWordListHasNoDuplicates(t *testing.T) {
	seen := make(map[string]struct{}, len(WordList))
	for _, w := range WordList {
		if _, dup := seen[w]; dup {
			t.Errorf("duplicate word %q", w)
		}
		seen[w] = struct{}{}
	}
	if len(WordList) != 275 {
		t.Errorf("expected 275 reference words, got %d", len(WordList))
	}
}

func TestWordDifficultyByLength(t *testing.T) {
	cases := []struct {
		word string
		want DifficultyLevel
	}{
		{"wound", DifficultyEasy},
		{"include", DifficultyEasy},
		{"suitcase", DifficultyMedium},
		{"dangerous", DifficultyMedium},
		{"cooperation", DifficultyHard},
		{"responsibility", DifficultyHard},
	}
	for _, tc := range cases {
		if got := WordDifficulty(tc.word); got != tc.want {
			t.Errorf("WordDifficulty(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestWordDifficultyManualOverrides(t *testing.T) {
	// "listening" is nine letters but stays in the easy tier.
	if got := WordDifficulty("listening"); got != DifficultyEasy {
		t.Errorf("WordDifficulty(listening) = %q, want Easy", got)
	}
	if got := WordDifficulty("sunset"); got != DifficultyEasy {
		t.Errorf("WordDifficulty(sunset) = %q, want Easy", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want DifficultyLevel
	}{
		{"easy", DifficultyEasy},
		{" Easy ", DifficultyEasy},
		{"HARD", DifficultyHard},
		{"medium", DifficultyMedium},
		{"", DifficultyMedium},
		{"nonsense", DifficultyMedium},
	}
	for _, tc := range cases {
		if got := ParseDifficulty(tc.in); got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
