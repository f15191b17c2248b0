// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ici_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/internal/ici"
)

func TestParseLevel(t *testing.T) {
	data := []struct {
		name string
		lvl  slog.Level
	}{
		{"trace", ici.LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, d := range data {
		lvl, err := ici.ParseLevel(d.name)
		require.NoError(t, err, d.name)
		assert.Equal(t, d.lvl, lvl, d.name)
	}
	_, err := ici.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var b bytes.Buffer
	l, err := ici.NewLogger(&b, "trace", "text")
	require.NoError(t, err)
	l.Log(context.Background(), ici.LevelTrace, "exec", "ip", 4)
	assert.Contains(t, b.String(), "level=TRACE msg=exec ip=4")

	b.Reset()
	l, err = ici.NewLogger(&b, "info", "json")
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("shown", "n", 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "shown", rec["msg"])

	_, err = ici.NewLogger(&b, "info", "xml")
	assert.Error(t, err)
	_, err = ici.NewLogger(&b, "loud", "text")
	assert.Error(t, err)
}

type failWriter int

func (w *failWriter) Write(p []byte) (int, error) {
	if *w == 0 {
		return 0, errors.New("disk full")
	}
	*w--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	fw := failWriter(1)
	ew := ici.NewErrWriter(&fw)
	assert.Same(t, ew, ici.NewErrWriter(ew))

	n, err := ew.Write([]byte("ok"))
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	_, err = ew.Write([]byte("ko"))
	assert.Error(t, err)
	fw = 10
	_, err = ew.Write([]byte("again"))
	assert.Equal(t, ew.Err, err)
	assert.Contains(t, ew.Err.Error(), "disk full")
}
