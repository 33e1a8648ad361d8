package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("KAUNTI_TEST_DIR", "/srv/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty stays empty",
			in:   "",
			want: "",
		},
		{
			name: "absolute path unchanged",
			in:   "/var/lib/kaunti.db",
			want: "/var/lib/kaunti.db",
		},
		{
			name: "env var expanded",
			in:   "$KAUNTI_TEST_DIR/kaunti.db",
			want: "/srv/data/kaunti.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestExpandPath_Tilde(t *testing.T) {
	home, err := filepath.Abs(t.TempDir())
	assert.NoError(t, err)
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "kaunti.db"), ExpandPath("~/kaunti.db"))
	assert.Equal(t, home, ExpandPath("~"))
}

func TestDefaultDBPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	assert.Equal(t, "/xdg/data/kaunti/kaunti.db", DefaultDBPath())

	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/ops")
	assert.Equal(t, "/home/ops/.local/share/kaunti/kaunti.db", DefaultDBPath())
}
