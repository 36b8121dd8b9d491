// Package auditlog records who did what through the console. The backend
// keeps its own history; this trail exists so operator actions can be
// reconstructed from the console logs alone.
package auditlog

import "go.uber.org/zap"

type AuditLog struct {
	log *zap.Logger
}

func NewAuditLog(log *zap.Logger) *AuditLog {
	return &AuditLog{log: log.Named("audit")}
}

// Log writes one audit entry. Callers fire it in a goroutine after the
// backend confirmed the mutation, so a slow sink never delays a response.
func (a *AuditLog) Log(action, actor string, fields ...zap.Field) {
	entry := make([]zap.Field, 0, len(fields)+2)
	entry = append(entry, zap.String("action", action), zap.String("actor", actor))
	entry = append(entry, fields...)
	a.log.Info("audit", entry...)
}
