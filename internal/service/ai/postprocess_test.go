package ai

import "testing"

func TestPostProcess(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Bu bir test metnidir.", "Bu bir test metnidir."},
		{"bold markers", "Bu **önemli** bir metin.", "Bu önemli bir metin."},
		{"underscore markers", "Bu __vurgulu__ bir metin.", "Bu vurgulu bir metin."},
		{"heading marker", "## Başlık\nMetin devam ediyor.", "Başlık Metin devam ediyor."},
		{"whitespace runs", "çok   fazla\t boşluk\n\nvar", "çok fazla boşluk var"},
		{"leading and trailing", "  kenar boşlukları  ", "kenar boşlukları"},
		{"marker inside word run", "a ## b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PostProcess(tt.input); got != tt.want {
				t.Errorf("PostProcess(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPostProcessIdempotent(t *testing.T) {
	inputs := []string{
		"Bu **önemli** bir metin.",
		"## Başlık\n\nParagraf   metni __vurgu__ ile.",
		"a ## b",
		"   ",
	}
	for _, input := range inputs {
		once := PostProcess(input)
		twice := PostProcess(once)
		if once != twice {
			t.Errorf("PostProcess not idempotent for %q: first=%q second=%q", input, once, twice)
		}
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"tek", 1},
		{"iki kelime", 2},
		{"çok   boşluklu\tmetin\nburada", 4},
	}
	for _, tt := range tests {
		if got := CountWords(tt.input); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestCheckWordLimit(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		min, max  int
		wantValid bool
	}{
		{"within bounds", "bir iki üç dört beş", 2, 10, true},
		{"too short", "bir iki", 5, 10, false},
		{"too long", "bir iki üç dört beş", 1, 3, false},
		{"exactly min", "bir iki üç", 3, 10, true},
		{"exactly max", "bir iki üç", 1, 3, true},
		{"unconstrained", "bir", 0, 0, true},
		{"empty unconstrained", "", 0, 0, true},
		{"only max", "bir iki", 0, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckWordLimit(tt.text, tt.min, tt.max)
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (message: %s)", got.Valid, tt.wantValid, got.Message)
			}
			if got.WordCount != CountWords(tt.text) {
				t.Errorf("WordCount = %d, want %d", got.WordCount, CountWords(tt.text))
			}
			if tt.wantValid && got.Message != "OK" {
				t.Errorf("Message = %q, want OK", got.Message)
			}
			if !tt.wantValid && got.Message == "OK" {
				t.Error("invalid check reported OK")
			}
		})
	}
}
