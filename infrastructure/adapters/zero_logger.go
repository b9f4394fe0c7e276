package adapters

import (
	"io"
	"os"
	"seo-blog-generator/application/ports/outbound"
	"strings"

	"github.com/rs/zerolog"
)

type zerologWrapper struct {
	logger zerolog.Logger
}

func NewZerologWrapper() outbound.LoggerPort {
	return NewZerologWrapperWithOptions(os.Stderr, "info", false)
}

// NewZerologWrapperWithOptions builds a JSON logger, or a human readable one
// when console is set. Unknown levels fall back to info.
func NewZerologWrapperWithOptions(w io.Writer, level string, console bool) outbound.LoggerPort {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return &zerologWrapper{
		logger: zerolog.New(w).Level(lvl).With().Timestamp().Logger(),
	}
}

func (z *zerologWrapper) With(fields map[string]interface{}) outbound.LoggerPort {
	return &zerologWrapper{
		logger: z.logger.With().Fields(fields).Logger(),
	}
}

func (z *zerologWrapper) Info(msg string) {
	z.logger.Info().Msg(msg)
}

func (z *zerologWrapper) Error(err error, msg string) {
	z.logger.Error().Err(err).Msg(msg)
}

func (z *zerologWrapper) Debug(msg string) {
	z.logger.Debug().Msg(msg)
}

func (z *zerologWrapper) Warn(msg string) {
	z.logger.Warn().Msg(msg)
}

func (z *zerologWrapper) InfoWithFields(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) ErrorWithFields(err error, msg string, fields map[string]interface{}) {
	z.logger.Error().Err(err).Fields(fields).Msg(msg)
}

func (z *zerologWrapper) DebugWithFields(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) WarnWithFields(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}
