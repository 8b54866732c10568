package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/avatarmaker/internal/avatar"
)

func run(t *testing.T, stdout *bytes.Buffer, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if stdout != nil {
		cmd.SetOut(stdout)
	}
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestRenderToFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "ada.png")
	logFile := filepath.Join(dir, "avatarmaker.log")

	err := run(t, nil, "render", "Ada Lovelace", "--size", "64", "--bg", "#1FA8F1",
		"-o", out, "--log-file", logFile, "--log-level", "debug")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "wrote "+out)
	assert.Contains(t, string(logs), "component=main")
}

func TestRenderToStdout(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(t, &stdout, "render", "--text", "Bo", "--width", "-1", "--height", "-1", "--fit", "-o", "-"))

	img, err := png.Decode(&stdout)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestRenderRejectsBadOptions(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	assert.Error(t, run(t, nil, "render", "X", "--shape", "star", "-o", out))
	assert.Error(t, run(t, nil, "render", "X", "--width", "0", "-o", out))
	assert.Error(t, run(t, nil, "render", "X", "--log-format", "xml", "-o", out))
	assert.NoFileExists(t, out)
}

func TestAvatarFlagsCoverQueryParams(t *testing.T) {
	cmd := newRenderCmd(&cli{})
	for name := range avatarFlagParams {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.NotNil(t, cmd.Flags().Lookup("font"))
}

func TestAvatarConfigAcceptsFontFiles(t *testing.T) {
	cmd := newRenderCmd(&cli{})
	path := filepath.Join(t.TempDir(), "brand.ttf")
	require.NoError(t, cmd.Flags().Parse([]string{"--font", path, "--radius", "4"}))

	cfg, err := avatarConfig(cmd.Flags(), []string{"Ada"}, avatar.DefaultDefaults())
	require.NoError(t, err)
	assert.Equal(t, path, cfg.FontFamily)
	assert.Equal(t, "Ada", cfg.Text)
	assert.Equal(t, 4.0, cfg.CornerRadius)
}
