package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flipdoctor-levelgen/internal/level"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(log.New(io.Discard))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := runCLI(t, "--db", filepath.Join(dir, "h.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "Level generated: level.bin")

	data, err := os.ReadFile(filepath.Join(dir, "level.bin"))
	require.NoError(t, err)
	assert.Len(t, data, level.RecordSize)
	assert.Equal(t, []byte{0xDE, 0xC0, 0xAD, 0xDE}, data[:4])
}

func TestFixedLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixed.bin")

	out, err := runCLI(t, "--fixed", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Goal Peg: 42 | Enemy Peg: 15")
	assert.Contains(t, out, "Wall: x=50, y=20, w=10, h=40")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, level.Encode(level.Fixed()), data)
}

func TestFixedOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.bin")

	_, err := runCLI(t, "--fixed", "--goal", "20", "--enemy", "33", "--wall", "40,10,6,30", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := level.Record{Magic: level.Magic, GoalIdx: 20, EnemyIdx: 33, WallX: 40, WallY: 10, WallW: 6, WallH: 30}
	assert.Equal(t, level.Encode(want), data)
}

func TestFixedOverridesRejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"goal equals enemy", []string{"--fixed", "--goal", "15"}},
		{"goal on start peg", []string{"--fixed", "--goal", "0"}},
		{"enemy past board", []string{"--fixed", "--enemy", "50"}},
		{"short wall", []string{"--fixed", "--wall", "1,2,3"}},
		{"zero wall", []string{"--fixed", "--wall", "1,2,0,3"}},
		{"wall x and w past int32", []string{"--fixed", "--wall", "4294967346,20,4294967306,40"}},
		{"wall y below int32", []string{"--fixed", "--wall", "50,-2147483649,10,40"}},
		{"overrides without fixed", []string{"--goal", "3"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "level.bin")
			_, err := runCLI(t, append(tc.args, path)...)
			require.Error(t, err)

			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "nothing should be written on a rejected level")
		})
	}

	path := filepath.Join(t.TempDir(), "level.bin")
	_, err := runCLI(t, "--fixed", "--goal", "15", path)
	assert.True(t, errors.Is(err, level.ErrInvalidRecord))

	_, err = runCLI(t, "--fixed", "--wall", "4294967346,20,4294967306,40", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4294967346")
}

func TestFixedWallInt32Limits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.bin")

	_, err := runCLI(t, "--fixed", "--wall=-2147483648,2147483647,2147483647,1", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := level.Fixed()
	want.WallX, want.WallY, want.WallW, want.WallH = -2147483648, 2147483647, 2147483647, 1
	assert.Equal(t, level.Encode(want), data)
}

func TestSeedIsReproducible(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")

	_, err := runCLI(t, "--seed", "4242", a)
	require.NoError(t, err)
	_, err = runCLI(t, "--seed", "4242", b)
	require.NoError(t, err)

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "level.bin")

	_, err := runCLI(t, path)
	require.Error(t, err)
	assert.True(t, level.IsIOError(err))
}

func TestTooManyArgs(t *testing.T) {
	_, err := runCLI(t, "a.bin", "b.bin")
	assert.Error(t, err)
}

func TestPreviewPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.bin")

	out, err := runCLI(t, "--fixed", "--preview", path)
	require.NoError(t, err)

	assert.Contains(t, out, "+"+strings.Repeat("-", 128)+"+")
	assert.Contains(t, out, "S start")
}

func TestRecordAndHistory(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "history.db")

	_, err := runCLI(t, "--db", db, "--record", "--seed", "77", filepath.Join(dir, "r.bin"))
	require.NoError(t, err)
	_, err = runCLI(t, "--db", db, "--record", "--fixed", filepath.Join(dir, "f.bin"))
	require.NoError(t, err)

	out, err := runCLI(t, "--db", db, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "random")
	assert.Contains(t, out, "fixed")
	assert.Contains(t, out, "77")
	assert.Contains(t, out, "50,20 10x40")

	out, err = runCLI(t, "--db", db, "history", "--seed", "77")
	require.NoError(t, err)
	assert.Contains(t, out, "r.bin")
	assert.NotContains(t, out, "f.bin")
}

func TestHistoryEmpty(t *testing.T) {
	out, err := runCLI(t, "--db", filepath.Join(t.TempDir(), "empty.db"), "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No levels recorded yet.")
}
