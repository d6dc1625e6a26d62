package client

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/share-favorites/internal/config"
	handlerhttp "github.com/MKhiriev/share-favorites/internal/handler/http"
	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/models"
)

var (
	foo = models.Bundle{ID: "org.example.Foo", Version: "1", Name: "Foo"}
	bar = models.Bundle{ID: "org.example.Bar", Version: "2", Name: "Bar"}
)

func newTestHub(t *testing.T) string {
	t.Helper()

	h := handlerhttp.NewHandler(models.NewAppBuildInfo("test", "", ""), handlerhttp.DefaultStreamConfig(), logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(func() {
		h.Close()
		srv.Close()
	})
	return strings.TrimPrefix(srv.URL, "http://")
}

func newTestConfig(t *testing.T, hubAddress, mode, nick string) *config.ClientConfig {
	t.Helper()

	dir := t.TempDir()
	return &config.ClientConfig{
		Profile: config.Profile{Dir: dir, Nick: nick, Color: "#FF0000,#0000FF"},
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(dir, "registry.db")}},
		Transport: config.Transport{
			HubAddress:     hubAddress,
			SessionID:      "classroom",
			ServiceName:    config.DefaultServiceName,
			RequestTimeout: 5 * time.Second,
		},
		Activity: config.Activity{
			Mode:              mode,
			AnimationInterval: 10 * time.Millisecond,
			RosterWidth:       config.DefaultRosterWidth,
		},
	}
}

// installBundles lays out an "*.activity" manifest per bundle in a fresh
// directory and points cfg at it.
func installBundles(t *testing.T, cfg *config.ClientConfig, installed []models.Bundle) {
	t.Helper()

	cfg.Storage.BundlesDir = t.TempDir()
	for _, b := range installed {
		infoDir := filepath.Join(cfg.Storage.BundlesDir, b.Name+".activity", "activity")
		require.NoError(t, os.MkdirAll(infoDir, 0o755))

		info := fmt.Sprintf("[Activity]\nname = %s\nbundle_id = %s\nactivity_version = %s\n", b.Name, b.ID, b.Version)
		require.NoError(t, os.WriteFile(filepath.Join(infoDir, "activity.info"), []byte(info), 0o644))
	}
}

func newTestApp(t *testing.T, cfg *config.ClientConfig, installed []models.Bundle, favorites ...models.Bundle) *App {
	t.Helper()
	ctx := context.Background()

	installBundles(t, cfg, installed)

	app, err := NewApp(ctx, cfg, io.Discard, logger.Nop())
	require.NoError(t, err)

	for _, b := range favorites {
		require.NoError(t, app.storages.Registry.SetBundleFavorite(ctx, b.Key(), true))
	}
	return app
}

func TestApp_ShareAndJoin(t *testing.T) {
	hubAddress := newTestHub(t)
	ctx, cancel := context.WithCancel(context.Background())

	sharer := newTestApp(t, newTestConfig(t, hubAddress, config.ModeShare, "Sam"),
		[]models.Bundle{foo}, foo)
	joiner := newTestApp(t, newTestConfig(t, hubAddress, config.ModeJoin, "Alice"),
		[]models.Bundle{foo, bar}, bar)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, app := range []*App{sharer, joiner} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = app.Run(ctx)
		}()
	}

	require.Eventually(t, func() bool {
		snapshot, err := joiner.storages.Favorites.Read(context.Background())
		return err == nil && snapshot.Has(foo.Key()) && !snapshot.Has(bar.Key())
	}, 5*time.Second, 20*time.Millisecond, "joiner favorites replaced by the sharer's")

	require.Eventually(t, func() bool {
		return len(sharer.console.Roster()) == 1
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "Alice", sharer.console.Roster()[0][0].Nick)

	cancel()
	wg.Wait()
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}

func TestApp_RunInvalidMode(t *testing.T) {
	hubAddress := newTestHub(t)
	cfg := newTestConfig(t, hubAddress, "watch", "Sam")

	app := newTestApp(t, cfg, nil)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, config.ErrInvalidActivityConfigs)
}

func TestNewApp_HubUnreachable(t *testing.T) {
	cfg := newTestConfig(t, "127.0.0.1:1", config.ModeJoin, "Alice")
	cfg.Transport.RequestTimeout = time.Second

	app, err := NewApp(context.Background(), cfg, io.Discard, logger.Nop())

	assert.Error(t, err)
	assert.Nil(t, app)
}
