package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAuditStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want AuditStatus
	}{
		{
			name: "exact clean",
			raw:  "clean",
			want: AuditClean,
		},
		{
			name: "OAG style unqualified",
			raw:  "Unqualified (Clean)",
			want: AuditClean,
		},
		{
			name: "unqualified does not hit qualified",
			raw:  "UNQUALIFIED OPINION",
			want: AuditClean,
		},
		{
			name: "qualified",
			raw:  "Qualified",
			want: AuditQualified,
		},
		{
			name: "except-for phrasing",
			raw:  "Except-for opinion",
			want: AuditQualified,
		},
		{
			name: "adverse",
			raw:  "Adverse opinion",
			want: AuditAdverse,
		},
		{
			name: "disclaimer long form",
			raw:  "Disclaimer of Opinion",
			want: AuditDisclaimer,
		},
		{
			name: "disclaimed",
			raw:  "disclaimed",
			want: AuditDisclaimer,
		},
		{
			name: "empty falls back to pending",
			raw:  "",
			want: AuditPending,
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: AuditPending,
		},
		{
			name: "unknown value falls back to pending",
			raw:  "satisfactory",
			want: AuditPending,
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  Adverse  ",
			want: AuditAdverse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAuditStatus(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuditStatus_Valid(t *testing.T) {
	for _, s := range AllAuditStatuses {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}

	assert.False(t, AuditStatus("satisfactory").Valid())
	assert.False(t, AuditStatus("").Valid())
}

func TestAuditStatus_Label(t *testing.T) {
	// Every member of the closed set gets a distinct label; anything outside
	// the set gets the pending label rather than an empty string.
	seen := make(map[string]bool)
	for _, s := range AllAuditStatuses {
		label := s.Label()
		assert.NotEmpty(t, label)
		assert.False(t, seen[label], "label %q reused", label)
		seen[label] = true
	}

	assert.Equal(t, AuditPending.Label(), AuditStatus("bogus").Label())
}
