package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliases_Apply(t *testing.T) {
	table := Aliases{"thika": "kiambu"}

	assert.Equal(t, "kiambu", table.Apply("thika"))
	assert.Equal(t, "nairobi", table.Apply("nairobi"), "absent key falls through")

	var nilTable Aliases
	assert.Equal(t, "thika", nilTable.Apply("thika"), "nil table falls through")

	empty := Aliases{}
	assert.Equal(t, "thika", empty.Apply("thika"))
}

func TestAliases_Merge(t *testing.T) {
	base := Aliases{"thika": "kiambu"}

	merged := base.Merge(map[string]string{
		"Ruiru Town":     "Kiambu County", // raw names get normalized
		"thika":          "nairobi",       // override wins over base
		"":               "kiambu",        // unusable pairs dropped
		"Somewhere Real": "",
	})

	assert.Equal(t, "kiambu", merged.Apply("ruiru"))
	assert.Equal(t, "nairobi", merged.Apply("thika"))
	assert.Len(t, merged, 2)

	// The receiver must be untouched.
	assert.Equal(t, "kiambu", base.Apply("thika"))
	assert.Len(t, base, 1)
}

func TestDefaultAliases_EntriesAreNormalized(t *testing.T) {
	for key, val := range DefaultAliases() {
		assert.Equal(t, Normalize(key), key, "alias key %q must be stored normalized", key)
		assert.Equal(t, Normalize(val), val, "alias value %q must be stored normalized", val)
	}

	assert.Equal(t, "kiambu", DefaultAliases().Apply("thika"))
}

func TestLoadAliasFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "aliases.yaml")
	content := "aliases:\n  Thika Town: Kiambu\n  Keiyo-Marakwet: Elgeyo-Marakwet\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	raw, err := LoadAliasFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Kiambu", raw["Thika Town"])

	merged := DefaultAliases().Merge(raw)
	assert.Equal(t, "kiambu", merged.Apply(Normalize("Thika Town")))
	assert.Equal(t, "elgeyomarakwet", merged.Apply("keiyomarakwet"))
}

func TestLoadAliasFile_Errors(t *testing.T) {
	_, err := LoadAliasFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("aliases: [not, a, map]"), 0o600))
	_, err = LoadAliasFile(bad)
	assert.Error(t, err)
}
