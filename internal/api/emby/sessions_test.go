package emby

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionsFixture = `[
	{
		"Id": "s-idle",
		"UserName": "nobody",
		"DeviceName": "Lobby TV",
		"Client": "Emby Theater"
	},
	{
		"Id": "s-direct",
		"UserName": "alice",
		"DeviceName": "Living Room",
		"Client": "Emby Web",
		"RemoteEndPoint": "192.168.1.20:53412",
		"NowPlayingItem": {
			"Id": "m1",
			"Name": "The Long Patrol",
			"Type": "Movie",
			"RunTimeTicks": 72000000000,
			"ImageTags": {"Primary": "tag1"}
		},
		"PlayState": {
			"PositionTicks": 18000000000,
			"IsPaused": true,
			"PlayMethod": "DirectPlay"
		}
	},
	{
		"Id": "s-transcode",
		"UserName": "bob",
		"DeviceName": "Phone",
		"Client": "Emby Mobile",
		"NowPlayingItem": {
			"Id": "e1",
			"Name": "Pilot",
			"Type": "Episode",
			"SeriesName": "Harbor Lights",
			"ParentIndexNumber": 1,
			"IndexNumber": 3
		},
		"PlayState": {
			"PositionTicks": 600000000,
			"IsPaused": false,
			"PlayMethod": "Transcode"
		},
		"TranscodingInfo": {
			"VideoCodec": "h264",
			"AudioCodec": "aac",
			"Container": "ts",
			"Bitrate": 4000000,
			"TranscodeReasons": ["ContainerNotSupported"]
		}
	}
]`

func TestListNowPlaying(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emby/Sessions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sessionsFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	states := client.ListNowPlaying(context.Background())

	// The idle session carries no now-playing item and is dropped.
	require.Len(t, states, 2)

	direct := states[0]
	assert.Equal(t, "s-direct", direct.SessionID)
	assert.Equal(t, "alice", direct.UserName)
	assert.Equal(t, "192.168.1.20:53412", direct.RemoteEndPoint)
	assert.Equal(t, "The Long Patrol", direct.Item.Name)
	assert.Equal(t, "tag1", direct.Item.PrimaryImageTag)
	assert.Equal(t, int64(120), direct.Item.RuntimeMinutes)
	assert.Equal(t, int64(1800), direct.PositionSeconds)
	assert.True(t, direct.IsPaused)
	assert.Equal(t, "DirectPlay", direct.PlayMethod)
	// Absent transcoding info resolves to the Direct sentinel, not nulls.
	assert.False(t, direct.Transcoding.IsTranscoding)
	assert.Equal(t, "Direct", direct.Transcoding.VideoCodec)
	assert.Equal(t, "Direct", direct.Transcoding.AudioCodec)
	assert.Equal(t, int64(0), direct.Transcoding.Bitrate)
	assert.NotNil(t, direct.Transcoding.Reasons)
	assert.Empty(t, direct.Transcoding.Reasons)

	transcode := states[1]
	assert.Equal(t, "Harbor Lights", transcode.Item.SeriesName)
	assert.Equal(t, 1, transcode.Item.SeasonNumber)
	assert.Equal(t, 3, transcode.Item.EpisodeNumber)
	assert.True(t, transcode.Transcoding.IsTranscoding)
	assert.Equal(t, "h264", transcode.Transcoding.VideoCodec)
	assert.Equal(t, "aac", transcode.Transcoding.AudioCodec)
	assert.Equal(t, "ts", transcode.Transcoding.Container)
	assert.Equal(t, int64(4000000), transcode.Transcoding.Bitrate)
	assert.Equal(t, []string{"ContainerNotSupported"}, transcode.Transcoding.Reasons)
}

func TestListNowPlayingFailsOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	states := client.ListNowPlaying(context.Background())

	assert.NotNil(t, states)
	assert.Empty(t, states)
}

func TestProjectSessionDefaultsPlayMethod(t *testing.T) {
	state := projectSession(apiSession{
		ID:             "s1",
		NowPlayingItem: &apiItem{ID: "m1", Name: "x"},
	})
	assert.Equal(t, "DirectPlay", state.PlayMethod)
	assert.Equal(t, int64(0), state.PositionSeconds)
	assert.False(t, state.IsPaused)
}
