package logging

import "github.com/rs/zerolog/log"

func Tracef(format string, args ...any) { log.Trace().Msgf(format, args...) }
func Debugf(format string, args ...any) { log.Debug().Msgf(format, args...) }
func Infof(format string, args ...any)  { log.Info().Msgf(format, args...) }
func Warnf(format string, args ...any)  { log.Warn().Msgf(format, args...) }
func Errf(format string, args ...any)   { log.Error().Msgf(format, args...) }

// Logf writes without a level so it survives any level filter.
func Logf(format string, args ...any) { log.Log().Msgf(format, args...) }
