package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cs2cfg/crosshairctl/lib/crosshair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := Open(filepath.Join(t.TempDir(), "profiles.json"))
	require.NoError(t, err)
	return lib
}

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	lib := tempLibrary(t)
	assert.Zero(t, lib.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "profiles.json")
	lib, err := Open(path)
	require.NoError(err)

	p := crosshair.Default()
	p.Color = crosshair.ColorCustom
	p.Red = 17
	require.NoError(lib.Add("mine", p, "CSGO-TAiA5-wLRjO-FeQ4z-bhdjA-Dq5uC"))
	require.NoError(lib.Add("stock", crosshair.Default(), ""))
	require.NoError(lib.Save())

	reloaded, err := Open(path)
	require.NoError(err)
	require.Equal(2, reloaded.Len())

	e, err := reloaded.Get("mine")
	require.NoError(err)
	assert.Equal(t, p, e.Profile)
	assert.Equal(t, "CSGO-TAiA5-wLRjO-FeQ4z-bhdjA-Dq5uC", e.OriginalCode)

	names := []string{}
	for _, entry := range reloaded.List() {
		names = append(names, entry.Name)
	}
	assert.Equal(t, []string{"mine", "stock"}, names)
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestAddDuplicateName(t *testing.T) {
	lib := tempLibrary(t)
	require.NoError(t, lib.Add("a", crosshair.Default(), ""))

	err := lib.Add("a", crosshair.Default(), "")
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Add = %v, want ErrDuplicateName", err)
	}
}

func TestAddRejectsInvalidProfile(t *testing.T) {
	lib := tempLibrary(t)
	p := crosshair.Default()
	p.Size = 1000
	err := lib.Add("broken", p, "")
	if !errors.Is(err, crosshair.ErrInvalidFieldValue) {
		t.Errorf("Add = %v, want ErrInvalidFieldValue", err)
	}
}

func TestRename(t *testing.T) {
	lib := tempLibrary(t)
	require.NoError(t, lib.Add("old", crosshair.Default(), ""))

	require.NoError(t, lib.Rename("old", "new"))
	_, err := lib.Get("old")
	assert.ErrorIs(t, err, ErrNotFound)
	e, err := lib.Get("new")
	require.NoError(t, err)
	assert.Equal(t, "new", e.Name)

	require.NoError(t, lib.Add("other", crosshair.Default(), ""))
	assert.ErrorIs(t, lib.Rename("new", "other"), ErrDuplicateName)
	assert.ErrorIs(t, lib.Rename("ghost", "x"), ErrNotFound)
}

func TestRemove(t *testing.T) {
	lib := tempLibrary(t)
	require.NoError(t, lib.Add("a", crosshair.Default(), ""))
	require.NoError(t, lib.Remove("a"))
	assert.Zero(t, lib.Len())
	assert.ErrorIs(t, lib.Remove("a"), ErrNotFound)
}
