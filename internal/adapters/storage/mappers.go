package storage

import (
	"hyprstash/internal/domain"
)

// historyModelToDomain converts a HistoryModel (GORM) to domain.HistoryEntry
func historyModelToDomain(m HistoryModel) domain.HistoryEntry {
	return domain.HistoryEntry{
		CreatedAt: m.CreatedAt,
		Error:     m.Error,
		Failures:  m.Failures,
		ID:        m.ID,
		Kind:      domain.StashKind(m.Kind),
		Name:      m.Name,
		Operation: domain.Operation(m.Operation),
		Windows:   m.Windows,
	}
}

// historyDomainToModel converts a domain.HistoryEntry to HistoryModel (GORM)
func historyDomainToModel(e domain.HistoryEntry) HistoryModel {
	return HistoryModel{
		CreatedAt: e.CreatedAt,
		Error:     e.Error,
		Failures:  e.Failures,
		ID:        e.ID,
		Kind:      string(e.Kind),
		Name:      e.Name,
		Operation: string(e.Operation),
		Windows:   e.Windows,
	}
}
