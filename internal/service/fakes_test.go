package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/store"
	"github.com/MKhiriev/share-favorites/models"
)

const testService = "org.sugarlabs.ShareFavorites"

func key(id, version string) models.BundleKey {
	return models.BundleKey{BundleID: id, Version: version}
}

// memFavorites is an in-memory favorites document.
type memFavorites struct {
	mu       sync.Mutex
	snapshot models.FavoritesSnapshot
}

func newMemFavorites(keys ...models.BundleKey) *memFavorites {
	return &memFavorites{snapshot: models.NewFavoritesSnapshot(keys...)}
}

func (m *memFavorites) Read(context.Context) (models.FavoritesSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := models.NewFavoritesSnapshot()
	for k, v := range m.snapshot.Favorites {
		cp.Favorites[k] = v
	}
	return cp, nil
}

func (m *memFavorites) Write(_ context.Context, s models.FavoritesSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = s
	return nil
}

func (m *memFavorites) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot.RawKeys()
}

// memRegistry behaves like the SQLite registry: unmarking always drops the
// key from the favorites document, marking needs an installed bundle.
type memRegistry struct {
	bundles   map[models.BundleKey]models.Bundle
	favorites *memFavorites
	calls     []string
}

func newMemRegistry(favorites *memFavorites, installed ...models.Bundle) *memRegistry {
	r := &memRegistry{bundles: make(map[models.BundleKey]models.Bundle), favorites: favorites}
	for _, b := range installed {
		r.bundles[b.Key()] = b
	}
	return r
}

func (r *memRegistry) GetBundle(_ context.Context, k models.BundleKey) (models.Bundle, error) {
	b, ok := r.bundles[k]
	if !ok {
		return models.Bundle{}, store.ErrBundleNotFound
	}
	return b, nil
}

func (r *memRegistry) SetBundleFavorite(ctx context.Context, k models.BundleKey, favorite bool) error {
	s, _ := r.favorites.Read(ctx)
	if !favorite {
		delete(s.Favorites, k.String())
		if err := r.favorites.Write(ctx, s); err != nil {
			return err
		}
	}

	b, ok := r.bundles[k]
	if !ok {
		return store.ErrBundleNotFound
	}
	b.Favorite = favorite
	r.bundles[k] = b

	if !favorite {
		r.calls = append(r.calls, "-"+k.String())
		return nil
	}

	r.calls = append(r.calls, "+"+k.String())
	s.Favorites[k.String()] = models.FavoriteMarker
	return r.favorites.Write(ctx, s)
}

func (r *memRegistry) AddBundle(_ context.Context, b models.Bundle) error {
	r.bundles[b.Key()] = b
	return nil
}

func (r *memRegistry) ListBundles(context.Context) ([]models.Bundle, error) {
	out := make([]models.Bundle, 0, len(r.bundles))
	for _, b := range r.bundles {
		out = append(out, b)
	}
	return out, nil
}

type alert struct {
	title, msg string
}

// fakePresenter records what was rendered. Notices are acknowledged right
// away when autoAck is set.
type fakePresenter struct {
	mu sync.Mutex

	autoAck bool

	placeholderRemoved bool
	waiting            bool
	cursorRestores     int
	alerts             []alert
	restartAlerts      int
	onRestart          func(models.AlertResponse)
	icons              []string
	buddies            []models.ParticipantInfo
}

func (p *fakePresenter) RemovePlaceholder() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.placeholderRemoved = true
}

func (p *fakePresenter) ShowWaiting() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.waiting = true
}

func (p *fakePresenter) RestoreCursor() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.waiting = false
	p.cursorRestores++
}

func (p *fakePresenter) NotifyAlert(title, msg string, onAck func()) {
	p.mu.Lock()
	p.alerts = append(p.alerts, alert{title, msg})
	ack := p.autoAck
	p.mu.Unlock()

	if ack && onAck != nil {
		onAck()
	}
}

func (p *fakePresenter) RestartAlert(_, _ string, onResponse func(models.AlertResponse)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.restartAlerts++
	p.onRestart = onResponse
}

func (p *fakePresenter) RevealIcon(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.icons = append(p.icons, path)
}

func (p *fakePresenter) AddBuddy(participant models.ParticipantInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buddies = append(p.buddies, participant)
}

func testOptions() ActivityOptions {
	return ActivityOptions{
		ServiceName:       testService,
		Identity:          models.ParticipantInfo{Nick: "Bob", Color: "#FF0000,#0000FF"},
		AnimationInterval: 500 * time.Millisecond,
	}
}

func newTestActivity(
	opts ActivityOptions,
	favorites store.FavoritesStore,
	registry store.BundleRegistry,
	presenter Presenter,
	sessions SessionManager,
	clock clockwork.Clock,
) *Activity {
	storages := &store.ClientStorages{Favorites: favorites, Registry: registry}
	return NewActivity(opts, storages, presenter, sessions, clock, logger.Nop())
}

// drain dispatches queued events, including the ones posted while
// dispatching, until every activity is idle.
func drain(t *testing.T, activities ...*Activity) []error {
	t.Helper()

	ctx := context.Background()
	var errs []error
	for round := 0; round < 100; round++ {
		progressed := false
		for _, a := range activities {
			for _, ev := range a.queue.popAll() {
				progressed = true
				if err := a.Dispatch(ctx, ev); err != nil {
					errs = append(errs, err)
				}
			}
		}
		if !progressed {
			return errs
		}
	}

	t.Fatal("event queues did not settle")
	return nil
}

func queued(a *Activity) int {
	a.queue.mu.Lock()
	defer a.queue.mu.Unlock()
	return len(a.queue.events)
}

func waitQueued(t *testing.T, a *Activity) {
	t.Helper()
	require.Eventually(t, func() bool { return queued(a) > 0 }, time.Second, time.Millisecond)
}
