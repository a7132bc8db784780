//go:build integration

// Package containers starts Postgres and Kafka for integration tests. Each
// container is started once per test binary and shared by every suite in it.
package containers

import (
	"sync"
	"testing"
)

// Manager hands out the shared containers, starting each on first use.
type Manager struct {
	pgOnce    sync.Once
	postgres  *PostgresContainer
	kafkaOnce sync.Once
	kafka     *KafkaContainer
}

var manager = &Manager{}

func GetManager() *Manager {
	return manager
}

// GetPostgres fails t if the container could not be started, including on
// later calls after a failed first start.
func (m *Manager) GetPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	m.pgOnce.Do(func() { m.postgres = NewPostgresContainer(t) })
	if m.postgres == nil {
		t.Fatal("postgres container unavailable")
	}
	return m.postgres
}

func (m *Manager) GetKafka(t *testing.T) *KafkaContainer {
	t.Helper()
	m.kafkaOnce.Do(func() { m.kafka = NewKafkaContainer(t) })
	if m.kafka == nil {
		t.Fatal("kafka container unavailable")
	}
	return m.kafka
}
