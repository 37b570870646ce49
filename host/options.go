// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/insight/chart"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for option files whose extension is
// not .toml, .yaml or .yml.
var ErrUnknownFormat = errors.New("host: unknown options file format")

// watchLag is how long a file must be left alone after it changes
// before it is reloaded. Editors often write a file in several steps.
const watchLag = 100 * time.Millisecond

// LoadOptions reads chart options from a TOML or YAML file, chosen by
// its extension. Settings missing from the file keep their defaults.
// The options are validated.
func LoadOptions(filename string) (*chart.Options, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	opts, err := DecodeOptions(b, filepath.Ext(filename))
	if err != nil {
		return nil, fmt.Errorf("host: options file %q: %w", filename, err)
	}
	return opts, nil
}

// DecodeOptions decodes chart options in the format named by ext,
// which is a file extension such as ".toml", onto the defaults and
// validates them.
func DecodeOptions(b []byte, ext string) (*chart.Options, error) {
	opts := chart.NewOptions()
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(opts)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(opts)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// SaveOptions writes chart options to a TOML or YAML file, chosen by
// its extension.
func SaveOptions(opts *chart.Options, filename string) error {
	var b []byte
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		b, err = toml.Marshal(opts)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(filename))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// Watch loads the options file, applies it with [Host.SetOptions],
// and then watches it, applying it again each time it changes until
// ctx is done. Files that fail to load while watching are logged and
// leave the options unchanged. The returned channel is closed when
// watching stops.
func (h *Host) Watch(ctx context.Context, filename string) (<-chan struct{}, error) {
	filename = filepath.Clean(filename)
	if err := h.reload(filename); err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// the directory is watched so that files replaced by rename are seen
	if err := w.Add(filepath.Dir(filename)); err != nil {
		w.Close()
		return nil, err
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer w.Close()
		var settled <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filename || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				settled = time.After(watchLag)
			case <-settled:
				settled = nil
				if err := h.reload(filename); err != nil {
					slog.Warn("host: not applying options", "file", filename, "err", err)
					continue
				}
				slog.Info("host: options reloaded", "file", filename)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return done, nil
}

func (h *Host) reload(filename string) error {
	opts, err := LoadOptions(filename)
	if err != nil {
		return err
	}
	return h.SetOptions(opts)
}
