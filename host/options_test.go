// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/insight/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlOptions = `
Palette = ["#ff0000", "blue"]

[Line]
Draw = true
Type = "CurveStep"
Duration = "250ms"

[MinMax]
DrawMax = true
`

const yamlOptions = `
palette: ["#ff0000", blue]
line:
  draw: true
  type: CurveStep
  duration: 250ms
minmax:
  drawmax: true
`

func TestDecodeOptions(t *testing.T) {
	for _, tc := range []struct {
		ext, data string
	}{
		{".toml", tomlOptions},
		{".yaml", yamlOptions},
		{".YML", yamlOptions},
	} {
		t.Run(tc.ext, func(t *testing.T) {
			opts, err := DecodeOptions([]byte(tc.data), tc.ext)
			require.NoError(t, err)
			assert.Equal(t, []string{"#ff0000", "blue"}, opts.Palette)
			assert.True(t, opts.Line.Draw)
			assert.Equal(t, chart.CurveStep, opts.Line.Type)
			assert.Equal(t, 250*time.Millisecond, opts.Line.Duration.Std())
			assert.True(t, opts.MinMax.DrawMax)

			// unset values keep their defaults
			def := chart.NewOptions()
			assert.Equal(t, def.Bar, opts.Bar)
			assert.Equal(t, def.Line.Width, opts.Line.Width)
			assert.Equal(t, def.MinMax.Duration, opts.MinMax.Duration)
		})
	}
}

func TestDecodeOptionsErrors(t *testing.T) {
	_, err := DecodeOptions([]byte(tomlOptions), ".json")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = DecodeOptions([]byte("[Line]\nDraww = true\n"), ".toml")
	assert.Error(t, err)

	// unknown enum names are logged and keep the default
	opts, err := DecodeOptions([]byte("line:\n  type: Wavy\n"), ".yaml")
	require.NoError(t, err)
	assert.Equal(t, chart.NewOptions().Line.Type, opts.Line.Type)

	_, err = DecodeOptions([]byte("[Legend]\nTextLength = 0\n"), ".toml")
	assert.Error(t, err)

	_, err = DecodeOptions([]byte("[Bar]\nDuration = \"fast\"\n"), ".toml")
	assert.Error(t, err)

	opts, err = DecodeOptions(nil, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, chart.NewOptions(), opts)
}

func TestSaveLoadOptions(t *testing.T) {
	dir := t.TempDir()
	opts := chart.NewOptions().SetDrawBar(true).SetDotType(chart.Square).SetName("sales")
	opts.Bar.Duration = chart.Duration(300 * time.Millisecond)

	for _, name := range []string{"opts.toml", "opts.yaml"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, SaveOptions(opts, fn))
		got, err := LoadOptions(fn)
		require.NoError(t, err)
		assert.True(t, got.Bar.Draw, name)
		assert.Equal(t, chart.Square, got.Dots.Type, name)
		assert.Equal(t, "sales", got.Name.Text, name)
		assert.Equal(t, opts.Bar.Duration, got.Bar.Duration, name)
		assert.Equal(t, opts.Palette, got.Palette, name)
	}

	assert.ErrorIs(t, SaveOptions(opts, filepath.Join(dir, "opts.ini")), ErrUnknownFormat)
	_, err := LoadOptions(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "chart.toml")
	require.NoError(t, os.WriteFile(fn, []byte("[Bar]\nDraw = true\n"), 0666))

	h := New(600, 400, nil)
	c, _ := newBars(h, nil, 1, 2, 3)
	c.Options = nil
	require.NoError(t, h.Draw(c))

	ctx, cancel := context.WithCancel(context.Background())
	done, err := h.Watch(ctx, fn)
	require.NoError(t, err)
	assert.True(t, h.Options().Bar.Draw)
	assert.False(t, h.Options().Line.Draw)

	// a broken file is ignored
	require.NoError(t, os.WriteFile(fn, []byte("[Bar\n"), 0666))
	time.Sleep(3 * watchLag)
	assert.True(t, h.Options().Bar.Draw)

	require.NoError(t, os.WriteFile(fn, []byte("[Line]\nDraw = true\n"), 0666))
	require.Eventually(t, func() bool {
		o := h.Options()
		return o.Line.Draw && !o.Bar.Draw
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watching did not stop")
	}
}

func TestWatchMissingFile(t *testing.T) {
	h := New(600, 400, nil)
	_, err := h.Watch(context.Background(), filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
