package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/share-favorites/internal/mock"
	"github.com/MKhiriev/share-favorites/models"
)

func TestActivity_OnShared_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mock.NewMockPresenter(ctrl)

	a := newTestActivity(testOptions(), newMemFavorites(), newMemRegistry(newMemFavorites()), presenter, nil, clockwork.NewFakeClock())

	for _, kind := range []EventKind{EventShared, EventJoined} {
		err := a.Dispatch(context.Background(), Event{Kind: kind})
		require.ErrorIs(t, err, ErrNoSharedSession)

		err = a.Dispatch(context.Background(), Event{Kind: kind, Session: &Session{ID: "s"}})
		require.ErrorIs(t, err, ErrNoSharedSession)
	}

	assert.Equal(t, models.RoleUnresolved, a.state.role)
}

func TestActivity_OnShared_OffersTubeAndPushesFavorites(t *testing.T) {
	ctrl := gomock.NewController(t)
	tubes := mock.NewMockTubes(ctrl)
	presenter := mock.NewMockPresenter(ctrl)

	favorites := newMemFavorites(key("org.example.Foo", "1"))
	a := newTestActivity(testOptions(), favorites, newMemRegistry(favorites), presenter, nil, clockwork.NewFakeClock())
	ctx := context.Background()

	offered := models.TubeInfo{ID: "t1", Initiator: "sharer", Service: testService, State: models.TubeStateRemotePending}

	gomock.InOrder(
		tubes.EXPECT().Subscribe(a),
		tubes.EXPECT().OfferTube(ctx, testService).Return(offered, nil),
		presenter.EXPECT().RemovePlaceholder(),
		tubes.EXPECT().SendText(ctx, "t1", `F:{"favorites":{"org.example.Foo 1":true}}`).Return(nil),
	)

	err := a.Dispatch(ctx, Event{Kind: EventShared, Session: &Session{ID: "s", Tubes: tubes}})
	require.NoError(t, err)

	assert.Equal(t, models.RoleInitiator, a.state.role)
	assert.False(t, a.state.waiting)
	require.NotNil(t, a.state.chat)
	assert.Equal(t, "t1", a.state.chat.ID())

	// the hub also announces the offered tube; it is attached only once
	require.NoError(t, a.Dispatch(ctx, Event{Kind: EventTubeAdded, Tube: offered}))
}

func TestActivity_OnShared_OfferFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	tubes := mock.NewMockTubes(ctrl)
	presenter := mock.NewMockPresenter(ctrl)

	a := newTestActivity(testOptions(), newMemFavorites(), newMemRegistry(newMemFavorites()), presenter, nil, clockwork.NewFakeClock())

	tubes.EXPECT().Subscribe(a)
	tubes.EXPECT().OfferTube(gomock.Any(), testService).Return(models.TubeInfo{}, errors.New("hub unreachable"))

	err := a.Dispatch(context.Background(), Event{Kind: EventShared, Session: &Session{ID: "s", Tubes: tubes}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hub unreachable")
	assert.Equal(t, models.RoleInitiator, a.state.role)
}

func TestActivity_RoleIsResolvedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	tubes := mock.NewMockTubes(ctrl)
	presenter := mock.NewMockPresenter(ctrl)

	a := newTestActivity(testOptions(), newMemFavorites(), newMemRegistry(newMemFavorites()), presenter, nil, clockwork.NewFakeClock())
	ctx := context.Background()
	session := &Session{ID: "s", Tubes: tubes}

	tubes.EXPECT().Subscribe(a).Times(1)
	tubes.EXPECT().OfferTube(ctx, testService).Return(models.TubeInfo{ID: "t1", Initiator: "sharer", Service: testService}, nil)
	tubes.EXPECT().SendText(ctx, "t1", gomock.Any()).Return(nil)
	presenter.EXPECT().RemovePlaceholder()

	require.NoError(t, a.Dispatch(ctx, Event{Kind: EventShared, Session: session}))

	err := a.Dispatch(ctx, Event{Kind: EventJoined, Session: session})
	require.ErrorIs(t, err, ErrRoleAlreadyResolved)
	err = a.Dispatch(ctx, Event{Kind: EventShared, Session: session})
	require.ErrorIs(t, err, ErrRoleAlreadyResolved)

	assert.Equal(t, models.RoleInitiator, a.state.role)
}

func TestActivity_OnJoined_AttachesMatchingTubesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	tubes := mock.NewMockTubes(ctrl)
	presenter := mock.NewMockPresenter(ctrl)

	a := newTestActivity(testOptions(), newMemFavorites(), newMemRegistry(newMemFavorites()), presenter, nil, clockwork.NewFakeClock())
	ctx := context.Background()

	pending := models.TubeInfo{ID: "t1", Initiator: "sharer", Service: testService, State: models.TubeStateLocalPending}
	open := pending
	open.State = models.TubeStateOpen
	foreign := models.TubeInfo{ID: "t0", Initiator: "sharer", Service: "org.example.Chat", State: models.TubeStateLocalPending}

	var ack func()
	gomock.InOrder(
		tubes.EXPECT().Subscribe(a),
		tubes.EXPECT().ListTubes(ctx).Return([]models.TubeInfo{foreign, pending, pending}, nil),
		tubes.EXPECT().AcceptTube(ctx, "t1").Return(open, nil).Times(1),
		presenter.EXPECT().ShowWaiting(),
		presenter.EXPECT().RemovePlaceholder(),
		presenter.EXPECT().NotifyAlert(alertTitle, msgDownloading, gomock.Any()).
			Do(func(_, _ string, onAck func()) { ack = onAck }),
	)

	err := a.Dispatch(ctx, Event{Kind: EventJoined, Session: &Session{ID: "s", Tubes: tubes}})
	require.NoError(t, err)

	assert.Equal(t, models.RoleJoiner, a.state.role)
	assert.True(t, a.state.waiting)
	assert.Len(t, a.state.tubes, 1)
	require.NotNil(t, a.state.chat)
	assert.Equal(t, "sharer", a.state.chat.Initiator())

	// the new-tube signal for an already listed tube is ignored
	require.NoError(t, a.Dispatch(ctx, Event{Kind: EventTubeAdded, Tube: pending}))

	// acknowledging the notice triggers the handshake
	require.NotNil(t, ack)
	ack()
	tubes.EXPECT().SendText(gomock.Any(), "t1", `f:["Bob","#FF0000,#0000FF"]`).Return(nil)
	assert.Empty(t, drain(t, a))
	assert.True(t, a.state.identitySent)
	assert.True(t, a.state.unsetDone)
}

func TestActivity_OnJoined_ListFailureStillWaits(t *testing.T) {
	ctrl := gomock.NewController(t)
	tubes := mock.NewMockTubes(ctrl)
	presenter := mock.NewMockPresenter(ctrl)

	a := newTestActivity(testOptions(), newMemFavorites(), newMemRegistry(newMemFavorites()), presenter, nil, clockwork.NewFakeClock())

	tubes.EXPECT().Subscribe(a)
	tubes.EXPECT().ListTubes(gomock.Any()).Return(nil, errors.New("list failed"))
	presenter.EXPECT().ShowWaiting()
	presenter.EXPECT().RemovePlaceholder()
	presenter.EXPECT().NotifyAlert(alertTitle, msgDownloading, gomock.Any())

	err := a.Dispatch(context.Background(), Event{Kind: EventJoined, Session: &Session{ID: "s", Tubes: tubes}})
	require.NoError(t, err)
	assert.True(t, a.state.waiting)
	assert.Nil(t, a.state.chat)
}

func TestActivity_TubeAddedBeforeRole(t *testing.T) {
	a := newTestActivity(testOptions(), newMemFavorites(), newMemRegistry(newMemFavorites()), &fakePresenter{}, nil, clockwork.NewFakeClock())

	err := a.Dispatch(context.Background(), Event{Kind: EventTubeAdded, Tube: models.TubeInfo{ID: "t1", Service: testService}})
	require.NoError(t, err)
	assert.Empty(t, a.state.tubes)
}

func TestActivity_UnknownEvent(t *testing.T) {
	a := newTestActivity(testOptions(), newMemFavorites(), newMemRegistry(newMemFavorites()), &fakePresenter{}, nil, clockwork.NewFakeClock())

	err := a.Dispatch(context.Background(), Event{Kind: EventKind(42)})
	require.ErrorIs(t, err, ErrUnknownEvent)
	assert.Equal(t, "unknown", EventKind(42).String())
	assert.Equal(t, "handshake", EventHandshake.String())
}
