package observability

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger derives a structured logger tagged with app from the process
// logger configured by package logging.
func NewLogger(app string) zerolog.Logger {
	return log.Logger.With().Str("app", app).Logger()
}
