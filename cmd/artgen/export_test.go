package main

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/artgen"
)

func renderedSurface(t *testing.T) *artgen.Surface {
	t.Helper()
	s, err := artgen.NewSurface(64, 48)
	require.NoError(t, err)
	_, err = artgen.Render(artgen.GenerationConfig{Background: artgen.BackgroundFractal}, s, artgen.NewRandomSource(1))
	require.NoError(t, err)
	return s
}

func TestWriteImage(t *testing.T) {
	s := renderedSurface(t)

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeImage(&buf, s, ".PNG"))
		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
	})

	t.Run("jpeg", func(t *testing.T) {
		for _, ext := range []string{".jpg", ".jpeg"} {
			var buf bytes.Buffer
			require.NoError(t, writeImage(&buf, s, ext))
			img, err := jpeg.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, 64, img.Bounds().Dx())
		}
	})

	t.Run("pdf", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeImage(&buf, s, ".pdf"))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "missing PDF header")
		assert.Contains(t, buf.String(), "/Subtype /Image")
	})

	t.Run("unsupported", func(t *testing.T) {
		assert.Error(t, writeImage(&bytes.Buffer{}, s, ".tiff"))
	})
}

func TestSaveSurfaceRemovesFailedOutput(t *testing.T) {
	s := renderedSurface(t)
	path := filepath.Join(t.TempDir(), "art.gif")

	require.Error(t, saveSurface(path, s))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "failed output should be removed")
}

func TestFramePath(t *testing.T) {
	tests := []struct {
		output        string
		frame, frames int
		want          string
	}{
		{"art.png", 0, 1, "art.png"},
		{"art.png", 3, 10, "art_3.png"},
		{"out/art.jpg", 7, 120, "out/art_007.jpg"},
		{"frames", 2, 5, "frames_2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, framePath(tt.output, tt.frame, tt.frames))
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(scenePath, []byte(fullScene), 0o600))

	o := options{
		width:     96,
		height:    64,
		seed:      5,
		seedSet:   true,
		scenePath: scenePath,
		output:    filepath.Join(dir, "art.png"),
		workers:   2,
		frames:    3,
		fps:       10,
	}
	require.NoError(t, run(o))

	for i := range 3 {
		f, err := os.Open(framePath(o.output, i, 3))
		require.NoError(t, err)
		img, err := png.Decode(f)
		_ = f.Close()
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 96, 64), img.Bounds())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	base := options{width: 10, height: 10, output: filepath.Join(dir, "a.png"), frames: 1, fps: 30}

	bad := base
	bad.width = 0
	assert.ErrorIs(t, run(bad), artgen.ErrInvalidDimensions)

	bad = base
	bad.frames = 0
	assert.Error(t, run(bad))

	bad = base
	bad.frames, bad.fps = 2, 0
	assert.Error(t, run(bad))

	bad = base
	bad.scenePath = filepath.Join(dir, "missing.yaml")
	assert.Error(t, run(bad))

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("complexity: 500"), 0o600))
	bad = base
	bad.scenePath = path
	assert.ErrorIs(t, run(bad), artgen.ErrInvalidConfig)

	require.NoError(t, os.WriteFile(path, []byte("animation: {speed: 11}"), 0o600))
	assert.ErrorIs(t, run(bad), artgen.ErrInvalidConfig)
}
