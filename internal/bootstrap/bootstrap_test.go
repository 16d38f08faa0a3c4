package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CookieClicker_Go/internal/config"
	"github.com/osse101/CookieClicker_Go/internal/event"
	"github.com/osse101/CookieClicker_Go/internal/storage"
	"github.com/osse101/CookieClicker_Go/internal/stream"
)

func testConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := testConfig()
	cfg.CacheSize = 0

	store, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &storage.Memory{}, store.Adapter)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenStore_Decorators(t *testing.T) {
	cfg := testConfig()
	cfg.StructuredValues = true
	cfg.CacheSize = 8

	store, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &storage.Cached{}, store.Adapter)
	assert.IsType(t, &storage.Memory{}, store.Backend)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "demo:cookies", "12"))

	raw, ok, err := store.Backend.Get(ctx, "demo:cookies")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"12"`, raw)
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := testConfig()
	cfg.StorageDriver = config.StorageSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "cookies.db")

	store, err := OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.Backend.(storage.Lister)
	assert.True(t, ok)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.StorageDriver = "redis"

	_, err := OpenStore(context.Background(), cfg)
	assert.ErrorContains(t, err, ErrMsgUnknownStorageDriver)
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-0%d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"notes.txt",
		"session_2026-01-04_00-00-00.log",
		"session_2026-01-05_00-00-00.log",
	}, names)
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := testConfig()
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.PlayerID = "alice"

	logFile, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, logFile)
	defer logFile.Close()

	slog.Info("hello from test")

	data, err := os.ReadFile(logFile.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), LogMsgStartingApp)
	assert.Contains(t, string(data), "player=alice")
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logFile, err := SetupLogger(testConfig())
	require.NoError(t, err)
	assert.Nil(t, logFile)
}

func TestInitializeEventSystem_TrackedReachesHub(t *testing.T) {
	events := InitializeEventSystem("demo")
	defer events.Hub.Stop()
	defer events.BusTracker.Close()

	client := events.Hub.Register(nil)
	require.NotNil(t, client)
	require.Eventually(t, func() bool { return events.Hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	events.Tracker.Track(string(event.ProgressReset), map[string]any{"currency": 0.0})

	select {
	case msg := <-client.Messages:
		assert.Equal(t, stream.TypeTracked, msg.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("tracked event never reached the hub")
	}
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	GracefulShutdown(context.Background(), ShutdownComponents{})
}
