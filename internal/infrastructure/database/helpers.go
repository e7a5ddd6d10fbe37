package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Close releases every pooled connection. Safe to call more than once.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		log.Debug().Msg("[DATABASE] Pool is already closed or was never initialized")
		return
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	log.Info().Msg("[DATABASE] Connection pool closed successfully")
}

// PoolStats is a snapshot of the connection pool counters.
type PoolStats struct {
	AcquireCount         int64         // lifetime number of acquisitions
	AcquireDuration      time.Duration // total time spent waiting for connections
	AcquiredConns        int32         // connections currently in use
	CanceledAcquireCount int64         // acquisitions abandoned because the context ended
	EmptyAcquireCount    int64         // acquisitions that had to wait for a free connection
	IdleConns            int32
	MaxConns             int32
	TotalConns           int32
}

// AvgAcquireDuration is the mean time a request waited for a connection.
func (s *PoolStats) AvgAcquireDuration() time.Duration {
	if s.AcquireCount == 0 {
		return 0
	}
	return s.AcquireDuration / time.Duration(s.AcquireCount)
}

// Stats returns the current pool statistics.
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database pool is not initialized")
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		AcquireCount:         raw.AcquireCount(),
		AcquireDuration:      raw.AcquireDuration(),
		AcquiredConns:        raw.AcquiredConns(),
		CanceledAcquireCount: raw.CanceledAcquireCount(),
		EmptyAcquireCount:    raw.EmptyAcquireCount(),
		IdleConns:            raw.IdleConns(),
		MaxConns:             raw.MaxConns(),
		TotalConns:           raw.TotalConns(),
	}, nil
}
