package emby

import (
	"context"

	"embyassist/internal/models"
)

const ticksPerSecond = 10000000

// directPlay is the sentinel transcoding state for sessions playing
// without a transcode, so downstream formatting never special-cases a
// missing TranscodingInfo object.
var directPlay = models.TranscodingState{
	VideoCodec: "Direct",
	AudioCodec: "Direct",
	Reasons:    []string{},
}

// ListNowPlaying returns the sessions that carry a now-playing item,
// projected into playback states. Fails open to an empty list.
func (c *Client) ListNowPlaying(ctx context.Context) []models.PlaybackState {
	var sessions []apiSession
	if apiErr := c.getJSON(ctx, "/Sessions", nil, &sessions); apiErr != nil {
		return []models.PlaybackState{}
	}

	states := make([]models.PlaybackState, 0)
	for _, s := range sessions {
		if s.NowPlayingItem == nil || s.NowPlayingItem.ID == "" {
			continue
		}
		states = append(states, projectSession(s))
	}
	return states
}

func projectSession(s apiSession) models.PlaybackState {
	item := s.NowPlayingItem
	state := models.PlaybackState{
		SessionID:      s.ID,
		UserName:       s.UserName,
		DeviceName:     s.DeviceName,
		Client:         s.Client,
		RemoteEndPoint: s.RemoteEndPoint,
		Item: models.NowPlaying{
			ID:              item.ID,
			Name:            item.Name,
			Type:            item.Type,
			RuntimeMinutes:  item.RunTimeTicks / ticksPerMinute,
			PrimaryImageTag: item.ImageTags["Primary"],
		},
		Transcoding: directPlay,
	}

	if item.Type == "Episode" {
		state.Item.SeriesName = item.SeriesName
		state.Item.SeasonNumber = item.ParentIndexNumber
		state.Item.EpisodeNumber = item.IndexNumber
	}

	if s.PlayState != nil {
		state.PositionSeconds = s.PlayState.PositionTicks / ticksPerSecond
		state.IsPaused = s.PlayState.IsPaused
		state.PlayMethod = s.PlayState.PlayMethod
	}
	if state.PlayMethod == "" {
		state.PlayMethod = "DirectPlay"
	}

	if t := s.TranscodingInfo; t != nil {
		state.Transcoding = models.TranscodingState{
			IsTranscoding: true,
			VideoCodec:    t.VideoCodec,
			AudioCodec:    t.AudioCodec,
			Container:     t.Container,
			Bitrate:       t.Bitrate,
			Reasons:       t.TranscodeReasons,
		}
		if state.Transcoding.Reasons == nil {
			state.Transcoding.Reasons = []string{}
		}
	}

	return state
}
