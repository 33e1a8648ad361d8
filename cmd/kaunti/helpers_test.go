package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kauntidev/kaunti/internal/match"
	"github.com/kauntidev/kaunti/internal/provider"
	"github.com/kauntidev/kaunti/internal/testutil"
)

func TestCurrentFiscalYear(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "august is the new fiscal year",
			date: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
			want: "2024/25",
		},
		{
			name: "first of july starts the year",
			date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			want: "2024/25",
		},
		{
			name: "june still belongs to the old year",
			date: time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
			want: "2023/24",
		},
		{
			name: "march is mid fiscal year",
			date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: "2023/24",
		},
		{
			name: "century rollover pads the short year",
			date: time.Date(2099, 9, 1, 0, 0, 0, 0, time.UTC),
			want: "2099/00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currentFiscalYear(tt.date))
		})
	}
}

func TestLoadAliases_Layering(t *testing.T) {
	t.Cleanup(viper.Reset)

	store := testutil.NewTestStorage(t)

	// File layer: add a new pair and override a built-in.
	aliasFile := filepath.Join(t.TempDir(), "aliases.yaml")
	fileContent := "aliases:\n  Garsen: Tana River\n  Thika Town: Juja\n"
	require.NoError(t, os.WriteFile(aliasFile, []byte(fileContent), 0o600))
	viper.Set("aliases.file", aliasFile)

	// Database layer: wins over the file.
	testutil.SeedAlias(t, store, "thika", "kiambu", "back to the administering county")

	aliases, err := loadAliases(context.Background(), store)
	require.NoError(t, err)

	assert.Equal(t, "westpokot", aliases.Apply("kapenguria"), "untouched built-in survives")
	assert.Equal(t, "tanariver", aliases.Apply("garsen"), "file layer adds entries")
	assert.Equal(t, "kiambu", aliases.Apply("thika"), "database override wins over the file")
	assert.Equal(t, "mombasa", aliases.Apply("mombasa"), "unaliased keys pass through")
}

func TestUnmatchedBoundaries(t *testing.T) {
	ds := provider.SampleDataset()

	missing := unmatchedBoundaries(ds, match.DefaultAliases())

	assert.ElementsMatch(t, []string{"Isiolo County", "Lamu County"}, missing)
}

func TestFindRecord(t *testing.T) {
	ds := provider.SampleDataset()
	aliases := match.DefaultAliases()

	tests := []struct {
		name     string
		arg      string
		wantID   string
		wantName string
		found    bool
	}{
		{
			name:   "by county code",
			arg:    "KE-47",
			wantID: "KE-47",
			found:  true,
		},
		{
			name:   "code is case insensitive",
			arg:    "ke-47",
			wantID: "KE-47",
			found:  true,
		},
		{
			name:     "by short name",
			arg:      "Nairobi",
			wantName: "Nairobi City",
			found:    true,
		},
		{
			name:     "by old boundary label through the alias table",
			arg:      "Keiyo-Marakwet",
			wantName: "Elgeyo Marakwet",
			found:    true,
		},
		{
			name:  "unknown county",
			arg:   "Atlantis",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := findRecord(tt.arg, ds, aliases)
			require.Equal(t, tt.found, ok)
			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, rec.ID)
			}
			if tt.wantName != "" {
				assert.Equal(t, tt.wantName, rec.Name)
			}
		})
	}
}
