package domain

import "testing"

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "kot", "kot"},
		{"uppercase folded", "Kot", "kot"},
		{"polish diacritics folded", "ŚWIĘTO", "święto"},
		{"trimmed", "  pies  ", "pies"},
		{"inner spaces compressed", "dzień   dobry", "dzień dobry"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
		{"hyphen preserved", "biało-czerwony", "biało-czerwony"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWord(tt.in); got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than cap", "kot", 10, "kot"},
		{"exactly cap", "kot", 3, "kot"},
		{"cut at rune boundary", "święto", 3, "świ"},
		{"trims before measuring", "  kot  ", 10, "kot"},
		{"zero cap means no cap", "kot", 0, "kot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestNewProposedCard_Defaults(t *testing.T) {
	t.Run("baseForm falls back to polish", func(t *testing.T) {
		card := NewProposedCard("kota", "кота", "", "")
		if card.BaseForm != "kota" {
			t.Errorf("BaseForm = %q, want %q", card.BaseForm, "kota")
		}
	})

	t.Run("explicit baseForm kept", func(t *testing.T) {
		card := NewProposedCard("kota", "кота", "kot", "")
		if card.BaseForm != "kot" {
			t.Errorf("BaseForm = %q, want %q", card.BaseForm, "kot")
		}
	})

	t.Run("example defaults to empty", func(t *testing.T) {
		card := NewProposedCard("kot", "кот", "kot", "")
		if card.Example != "" {
			t.Errorf("Example = %q, want empty", card.Example)
		}
	})
}

func TestUnrecognizedStatus(t *testing.T) {
	if !UnrecognizedPending.IsValid() || UnrecognizedPending.IsTerminal() {
		t.Error("PENDING must be valid and non-terminal")
	}
	if !UnrecognizedResolved.IsTerminal() || !UnrecognizedDismissed.IsTerminal() {
		t.Error("RESOLVED and DISMISSED must be terminal")
	}
	if UnrecognizedStatus("DONE").IsValid() {
		t.Error("unknown status must be invalid")
	}
}
