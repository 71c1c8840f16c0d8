package main

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closeRecorder struct {
	closed int
	err    error
}

func (c *closeRecorder) Close() error {
	c.closed++
	return c.err
}

func TestShutdown(t *testing.T) {
	var logged bytes.Buffer
	out, flags := log.Writer(), log.Flags()
	log.SetOutput(&logged)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})

	t.Run("error goes to the log file only", func(t *testing.T) {
		logged.Reset()
		var stderr bytes.Buffer
		file := &closeRecorder{}

		assert.Equal(t, 1, shutdown(errors.New("boom"), file, &stderr))
		assert.Equal(t, "boom\n", logged.String())
		assert.Empty(t, stderr.String())
		assert.Equal(t, 1, file.closed)
	})

	t.Run("error goes to stderr without a log file", func(t *testing.T) {
		logged.Reset()
		var stderr bytes.Buffer

		assert.Equal(t, 1, shutdown(errors.New("boom"), nil, &stderr))
		assert.Equal(t, "boom\n", stderr.String())
		assert.Empty(t, logged.String())
	})

	t.Run("clean exit closes the log file", func(t *testing.T) {
		var stderr bytes.Buffer
		file := &closeRecorder{}

		assert.Equal(t, 0, shutdown(nil, file, &stderr))
		assert.Equal(t, 1, file.closed)
		assert.Empty(t, stderr.String())
	})

	t.Run("close failure is reported", func(t *testing.T) {
		var stderr bytes.Buffer
		file := &closeRecorder{err: errors.New("disk full")}

		assert.Equal(t, 0, shutdown(nil, file, &stderr))
		assert.Equal(t, "disk full\n", stderr.String())
	})
}
