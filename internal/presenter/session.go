package presenter

import (
	"context"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/service"
)

// LoggingSession records logout requests instead of ending the session.
type LoggingSession struct {
	logger *logger.Logger
}

var _ service.SessionManager = (*LoggingSession)(nil)

func NewLoggingSession(log *logger.Logger) *LoggingSession {
	return &LoggingSession{logger: log}
}

func (s *LoggingSession) Logout(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.Warn().Msg("logout requested, restart the session to load the new favorites")
	return nil
}
