package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain name",
			raw:  "Nairobi",
			want: "nairobi",
		},
		{
			name: "county suffix dropped",
			raw:  "Nairobi County",
			want: "nairobi",
		},
		{
			name: "city and county both dropped",
			raw:  "Nairobi City County",
			want: "nairobi",
		},
		{
			name: "district vintage",
			raw:  "Kwale District",
			want: "kwale",
		},
		{
			name: "town suffix dropped",
			raw:  "Thika Town",
			want: "thika",
		},
		{
			name: "township suffix dropped",
			raw:  "Garissa Township",
			want: "garissa",
		},
		{
			name: "apostrophe removed",
			raw:  "Murang'a County",
			want: "muranga",
		},
		{
			name: "diacritics folded",
			raw:  "Murangá",
			want: "muranga",
		},
		{
			name: "hyphen removed",
			raw:  "Tharaka-Nithi",
			want: "tharakanithi",
		},
		{
			name: "en dash removed",
			raw:  "Taita–Taveta County",
			want: "taitataveta",
		},
		{
			name: "multi-word name",
			raw:  "Tana River County",
			want: "tanariver",
		},
		{
			name: "surrounding whitespace",
			raw:  "  Kisumu  ",
			want: "kisumu",
		},
		{
			name: "digits dropped",
			raw:  "Zone 47 Nakuru",
			want: "zonenakuru",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "punctuation only",
			raw:  "--- !!! 123",
			want: "",
		},
		{
			name: "suffix word alone",
			raw:  "County",
			want: "",
		},
		{
			name: "suffix embedded in a word is kept",
			raw:  "Countyside",
			want: "countyside",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Nairobi City County",
		"Murang'a County",
		"Taita–Taveta",
		"ELGEYO/MARAKWET COUNTY",
		"tana river",
		"",
		"1234",
		"Murangá District",
		"county county county",
	}

	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "normalize must be idempotent for %q", raw)
	}
}

func TestNormalize_NeverPanics(t *testing.T) {
	// Total over arbitrary input, including invalid UTF-8.
	inputs := []string{
		string([]byte{0xff, 0xfe, 0xfd}),
		"\x00\x01\x02",
		"🗺️ Nairobi 🗺️",
	}

	for _, raw := range inputs {
		assert.NotPanics(t, func() {
			_ = Normalize(raw)
		})
	}
}
