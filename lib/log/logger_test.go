package log

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerLine(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, &Options{NoColor: true}))

	Module(logger, "generator").Error("could not generate binding",
		"pair", "shaders/basic", "kind", "CompileError", "err", errors.New("syntax error"))

	line := out.String()
	assert.Contains(t, line, "ERROR [generator] could not generate binding")
	assert.Contains(t, line, " err=syntax error kind=CompileError pair=shaders/basic\n")
	assert.NotContains(t, line, "\033[")
}

func TestHandlerLevel(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, &Options{
		HandlerOptions: slog.HandlerOptions{Level: slog.LevelInfo},
		NoColor:        true,
	}))

	logger.Debug("hidden")
	assert.Empty(t, out.String())

	logger.Info("shown")
	assert.Contains(t, out.String(), "INFO shown")
}

func TestHandlerColor(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandler(&out, nil))

	logger.Warn("careful")
	assert.Contains(t, out.String(), "\033[93mWARN \033[0m")
}
