package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback_service/internal/domain"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
grpc:
  address: ":9090"
storage:
  driver: memory
`))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 5, cfg.HTTP.WriteBurst)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "migrations", cfg.DB.MigrationsPath)
	assert.Equal(t, "feedback-events", cfg.Kafka.FeedbackTopic)
	assert.Equal(t, "moderation-backlog", cfg.Kafka.BacklogTopic)
	assert.Equal(t, 5*time.Millisecond, cfg.Kafka.BatchTimeout)
	assert.Equal(t, 48*time.Hour, cfg.Worker.BacklogAge)
	assert.Equal(t, 5*time.Minute, cfg.Redis.UserTTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("WORKER_ENABLED", "true")
	t.Setenv("WORKER_INTERVAL", "90s")
	t.Setenv("LOG_PRODUCTION", "true")

	cfg, err := Parse([]byte(`
grpc:
  address: ":9090"
storage:
  driver: postgres
`))
	require.NoError(t, err)

	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Worker.Enabled)
	assert.Equal(t, 90*time.Second, cfg.Worker.Interval)
	assert.True(t, cfg.Log.Production)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"MissingGRPC", "storage:\n  driver: memory\n"},
		{"IncompleteDB", "grpc:\n  address: \":9090\"\n"},
		{"UnknownDriver", "grpc:\n  address: \":9090\"\nstorage:\n  driver: sqlite\n"},
		{"WorkerWithoutBrokers", "grpc:\n  address: \":9090\"\nstorage:\n  driver: memory\nworker:\n  enabled: true\n"},
		{"BadUserID", "grpc:\n  address: \":9090\"\nstorage:\n  driver: memory\nusers:\n  - id: nope\n    role: admin\n"},
		{"BadUserRole", "grpc:\n  address: \":9090\"\nstorage:\n  driver: memory\nusers:\n  - id: 01890a5d-ac96-774b-bcce-b302099a8057\n    role: dean\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestSeedUsers(t *testing.T) {
	cfg, err := Parse([]byte(`
grpc:
  address: ":9090"
storage:
  driver: memory
users:
  - id: 01890a5d-ac96-774b-bcce-b302099a8057
    role: Faculty
  - id: 01890a5d-ac96-774b-bcce-b302099a8058
    role: student
    inactive: true
`))
	require.NoError(t, err)

	users, err := cfg.SeedUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, domain.UserRoleFaculty, users[0].Role)
	assert.True(t, users[0].IsActive)
	assert.False(t, users[1].IsActive)
}

func TestLoadFromConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "config.yaml")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
}
