package service

import (
	"context"

	"github.com/be1500616/zergoqrf/internal/audit"
	dErrors "github.com/be1500616/zergoqrf/pkg/domain-errors"
	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// Observability helpers for logging, auditing, and metrics.

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", string(event), "log_type", "audit")
	s.logger.InfoContext(ctx, string(event), args...)

	s.emit(ctx, audit.Event{
		UserID:       extractString(attributes, "user_id"),
		Subject:      extractString(attributes, "subject"),
		Action:       string(event),
		RestaurantID: extractString(attributes, "restaurant_id"),
		SessionID:    extractString(attributes, "session_id"),
		Decision:     "granted",
		RequestID:    requestID,
	})
}

// authFailure records a rejected authentication attempt. isError selects the
// log level: expected rejections are warnings, dependency failures are errors.
func (s *Service) authFailure(ctx context.Context, event audit.AuditEvent, code dErrors.Code, isError bool, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", string(event), "reason", string(code), "log_type", "standard")
	if isError {
		s.logger.ErrorContext(ctx, string(event), args...)
	} else {
		s.logger.WarnContext(ctx, string(event), args...)
	}

	s.emit(ctx, audit.Event{
		UserID:       extractString(attributes, "user_id"),
		Subject:      extractString(attributes, "subject"),
		Action:       string(event),
		RestaurantID: extractString(attributes, "restaurant_id"),
		SessionID:    extractString(attributes, "session_id"),
		Decision:     "denied",
		Reason:       string(code),
		RequestID:    requestID,
	})
	if s.metrics != nil {
		s.metrics.IncrementAuthFailure(string(code))
	}
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event", "error", err, "action", event.Action)
	}
}

// extractString finds the string value following key in a slog-style attribute list.
func extractString(attributes []any, key string) string {
	for i := 0; i+1 < len(attributes); i += 2 {
		if k, ok := attributes[i].(string); ok && k == key {
			if v, ok := attributes[i+1].(string); ok {
				return v
			}
		}
	}
	return ""
}
