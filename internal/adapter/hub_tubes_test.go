package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/share-favorites/internal/config"
	handlerhttp "github.com/MKhiriev/share-favorites/internal/handler/http"
	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/internal/transport"
	"github.com/MKhiriev/share-favorites/models"
)

const (
	testService = "org.sugarlabs.ShareFavorites"
	waitFor     = 2 * time.Second
)

type textFrame struct {
	tubeID, sender, text string
}

type recorder struct {
	tubes chan models.TubeInfo
	texts chan textFrame
}

func newRecorder() *recorder {
	return &recorder{
		tubes: make(chan models.TubeInfo, 16),
		texts: make(chan textFrame, 16),
	}
}

func (r *recorder) TubeAdded(info models.TubeInfo) { r.tubes <- info }

func (r *recorder) TextReceived(tubeID, sender, text string) {
	r.texts <- textFrame{tubeID: tubeID, sender: sender, text: text}
}

func (r *recorder) nextTube(t *testing.T) models.TubeInfo {
	t.Helper()
	select {
	case info := <-r.tubes:
		return info
	case <-time.After(waitFor):
		t.Fatal("no tube_added frame received")
		return models.TubeInfo{}
	}
}

func (r *recorder) nextText(t *testing.T) textFrame {
	t.Helper()
	select {
	case f := <-r.texts:
		return f
	case <-time.After(waitFor):
		t.Fatal("no text frame received")
		return textFrame{}
	}
}

func newTestHub(t *testing.T) config.Transport {
	t.Helper()

	h := handlerhttp.NewHandler(models.NewAppBuildInfo("test", "", ""), handlerhttp.DefaultStreamConfig(), logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(func() {
		h.Close()
		srv.Close()
	})

	return config.Transport{
		HubAddress:     strings.TrimPrefix(srv.URL, "http://"),
		SessionID:      "classroom",
		ServiceName:    testService,
		RequestTimeout: 5 * time.Second,
	}
}

func dial(t *testing.T, cfg config.Transport, name string) transport.Tubes {
	t.Helper()

	tubes, err := NewHubTubes(context.Background(), cfg, name, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tubes.Close() })
	return tubes
}

func TestHubTubes_OfferAcceptSend(t *testing.T) {
	cfg := newTestHub(t)
	ctx := context.Background()

	alice := dial(t, cfg, "alice")
	bob := dial(t, cfg, "bob")
	aliceRec, bobRec := newRecorder(), newRecorder()
	alice.Subscribe(aliceRec)
	bob.Subscribe(bobRec)

	offered, err := alice.OfferTube(ctx, testService)
	require.NoError(t, err)
	assert.Equal(t, "alice", offered.Initiator)
	assert.Equal(t, testService, offered.Service)
	assert.Equal(t, models.TubeStateRemotePending, offered.State)

	announced := bobRec.nextTube(t)
	assert.Equal(t, offered.ID, announced.ID)
	assert.Equal(t, models.TubeStateLocalPending, announced.State)

	listed, err := bob.ListTubes(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, offered.ID, listed[0].ID)

	accepted, err := bob.AcceptTube(ctx, offered.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TubeStateOpen, accepted.State)

	const snapshot = `F:{"favorites":{"org.example.Foo 1":true}}`
	require.NoError(t, alice.SendText(ctx, offered.ID, snapshot))

	got := bobRec.nextText(t)
	assert.Equal(t, textFrame{tubeID: offered.ID, sender: "alice", text: snapshot}, got)
	echo := aliceRec.nextText(t)
	assert.Equal(t, "alice", echo.sender)

	require.NoError(t, bob.SendText(ctx, offered.ID, `f:["Bob","#FF0000,#0000FF"]`))
	ack := aliceRec.nextText(t)
	assert.Equal(t, "bob", ack.sender)
	assert.Equal(t, `f:["Bob","#FF0000,#0000FF"]`, ack.text)
}

func TestHubTubes_GeneratedName(t *testing.T) {
	cfg := newTestHub(t)

	tubes := dial(t, cfg, "")

	assert.Len(t, tubes.LocalName(), 36)
}

func TestHubTubes_DuplicateName(t *testing.T) {
	cfg := newTestHub(t)
	dial(t, cfg, "alice")

	_, err := NewHubTubes(context.Background(), cfg, "alice", logger.Nop())

	assert.ErrorIs(t, err, transport.ErrPeerExists)
}

func TestHubTubes_AcceptUnknownTube(t *testing.T) {
	cfg := newTestHub(t)
	bob := dial(t, cfg, "bob")

	_, err := bob.AcceptTube(context.Background(), "missing")

	assert.ErrorIs(t, err, transport.ErrTubeNotFound)
}

func TestHubTubes_EmptyService(t *testing.T) {
	cfg := newTestHub(t)
	alice := dial(t, cfg, "alice")

	_, err := alice.OfferTube(context.Background(), "")

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestHubTubes_NonMemberTextNotDelivered(t *testing.T) {
	cfg := newTestHub(t)
	ctx := context.Background()

	alice := dial(t, cfg, "alice")
	bob := dial(t, cfg, "bob")
	aliceRec := newRecorder()
	alice.Subscribe(aliceRec)

	offered, err := alice.OfferTube(ctx, testService)
	require.NoError(t, err)

	// rejected by the hub, reported on bob's stream only
	require.NoError(t, bob.SendText(ctx, offered.ID, "f:[]"))
	require.NoError(t, alice.SendText(ctx, offered.ID, "F:{}"))

	got := aliceRec.nextText(t)
	assert.Equal(t, "alice", got.sender)
}

func TestHubTubes_SendAfterClose(t *testing.T) {
	cfg := newTestHub(t)
	alice := dial(t, cfg, "alice")

	require.NoError(t, alice.Close())

	err := alice.SendText(context.Background(), "t1", "F:{}")
	assert.ErrorIs(t, err, ErrStreamClosed)
}

func TestHubTubes_UnreachableHub(t *testing.T) {
	cfg := config.Transport{HubAddress: "127.0.0.1:1", SessionID: "s", RequestTimeout: time.Second}

	_, err := NewHubTubes(context.Background(), cfg, "alice", logger.Nop())

	assert.Error(t, err)
}

func TestMapHubError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "success", status: http.StatusOK},
		{name: "created", status: http.StatusCreated},
		{
			name:    "tube code",
			status:  http.StatusNotFound,
			body:    `{"error":"tube not found: t1","code":"tube_not_found"}`,
			wantErr: transport.ErrTubeNotFound,
		},
		{
			name:    "session code",
			status:  http.StatusNotFound,
			body:    `{"error":"session not found","code":"session_not_found"}`,
			wantErr: transport.ErrSessionNotFound,
		},
		{
			name:    "member code",
			status:  http.StatusForbidden,
			body:    `{"error":"x","code":"not_tube_member"}`,
			wantErr: transport.ErrNotTubeMember,
		},
		{
			name:    "peer exists code",
			status:  http.StatusConflict,
			body:    `{"error":"x","code":"peer_exists"}`,
			wantErr: transport.ErrPeerExists,
		},
		{name: "plain 404", status: http.StatusNotFound, body: "404 page not found", wantErr: ErrNotFound},
		{name: "plain 400", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "plain 502", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "plain 500", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{
			name:    "unknown code keeps message",
			status:  http.StatusConflict,
			body:    `{"error":"busy","code":"other"}`,
			wantErr: ErrConflict,
			wantMsg: "busy",
		},
		{name: "teapot", status: http.StatusTeapot, wantMsg: "http 418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHubError(tt.status, []byte(tt.body))

			if tt.wantErr == nil && tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
