// Package models contains the normalized view models produced by the Emby
// client. These are the stable shapes presentation layers consume; the raw
// upstream JSON never leaves internal/api/emby.
package models

// ServerStatus is the composite of Emby's system-info and endpoint-info
// responses. It is built fresh on every fetch and never cached.
type ServerStatus struct {
	ServerName          string       `json:"server_name"`
	Version             string       `json:"version"`
	OperatingSystem     string       `json:"operating_system"`
	Architecture        string       `json:"architecture"`
	IsShuttingDown      bool         `json:"is_shutting_down"`
	HasPendingRestart   bool         `json:"has_pending_restart"`
	CanSelfRestart      bool         `json:"can_self_restart"`
	CachePath           string       `json:"cache_path,omitempty"`
	LogPath             string       `json:"log_path,omitempty"`
	TranscodingTempPath string       `json:"transcoding_temp_path,omitempty"`
	HTTPPort            int          `json:"http_port,omitempty"`
	HTTPSPort           int          `json:"https_port,omitempty"`
	Endpoint            EndpointInfo `json:"endpoint"`
}

// EndpointInfo describes how the server sees the requesting endpoint. It is
// best-effort: when the endpoint call fails these fields stay zero-valued.
type EndpointInfo struct {
	IsLocal     bool `json:"is_local"`
	IsInNetwork bool `json:"is_in_network"`
}

// TaskResult is the last-execution record attached to a scheduled task.
type TaskResult struct {
	Status    string `json:"status"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ScheduledTask is a normalized Emby background job. State and Category are
// open string sets: upstream may introduce values we have never seen, and
// they pass through untouched.
type ScheduledTask struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Category        string      `json:"category"`
	State           string      `json:"state"`
	CurrentProgress float64     `json:"current_progress"`
	LastExecution   *TaskResult `json:"last_execution,omitempty"`
}

// ProcessingItem is the projection of a scheduled task that is Running or
// Cancelling. StartedAt comes from the last execution's start time, not the
// current run; upstream does not expose the latter.
type ProcessingItem struct {
	ID          string  `json:"id"`
	TaskName    string  `json:"task_name"`
	State       string  `json:"state"`
	Progress    float64 `json:"progress"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	StartedAt   string  `json:"started_at"`
}

// CompletedTask is the projection of an Idle task whose last execution
// finished with status "Completed". Duration is recomputed from the raw
// timestamps on every derivation.
type CompletedTask struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	CompletedAt string `json:"completed_at"`
	Duration    string `json:"duration"`
}

// Person is a cast or crew entry. The detail view adds biographical fields.
type Person struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type,omitempty"`
	Role            string `json:"role,omitempty"`
	PrimaryImageTag string `json:"primary_image_tag,omitempty"`
}

// PersonDetail extends Person with the biography fields Emby stores under
// item-shaped keys (Overview, PremiereDate, ProductionLocations).
type PersonDetail struct {
	Person
	Biography  string `json:"biography,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	BirthPlace string `json:"birth_place,omitempty"`
}

// MediaItem is a normalized library item. ID is always non-empty: entries
// without one are dropped during projection because the UI addresses items
// by id.
type MediaItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Year            int      `json:"year,omitempty"`
	Overview        string   `json:"overview,omitempty"`
	Genres          []string `json:"genres,omitempty"`
	CommunityRating float64  `json:"community_rating,omitempty"`
	OfficialRating  string   `json:"official_rating,omitempty"`
	RuntimeMinutes  int64    `json:"runtime_minutes,omitempty"`
	Path            string   `json:"path,omitempty"`
	CreatedAt       string   `json:"created_at,omitempty"`
	PremiereDate    string   `json:"premiere_date,omitempty"`
	Cast            []Person `json:"cast,omitempty"`
	ParentID        string   `json:"parent_id,omitempty"`
	PrimaryImageTag string   `json:"primary_image_tag,omitempty"`

	// Episode-only fields.
	SeriesName    string `json:"series_name,omitempty"`
	SeasonNumber  int    `json:"season_number,omitempty"`
	EpisodeNumber int    `json:"episode_number,omitempty"`
}

// Library is an Emby virtual folder. CollectionType decides which item
// types a subsequent query includes.
type Library struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CollectionType string `json:"collection_type"`
}

// NowPlaying is the subset of MediaItem a playback session reports.
type NowPlaying struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	SeriesName      string `json:"series_name,omitempty"`
	SeasonNumber    int    `json:"season_number,omitempty"`
	EpisodeNumber   int    `json:"episode_number,omitempty"`
	RuntimeMinutes  int64  `json:"runtime_minutes,omitempty"`
	PrimaryImageTag string `json:"primary_image_tag,omitempty"`
}

// TranscodingState describes how a session is being delivered. A session
// playing directly carries the "Direct" sentinel codecs instead of nils so
// formatting code never special-cases absence.
type TranscodingState struct {
	IsTranscoding bool     `json:"is_transcoding"`
	VideoCodec    string   `json:"video_codec"`
	AudioCodec    string   `json:"audio_codec"`
	Container     string   `json:"container,omitempty"`
	Bitrate       int64    `json:"bitrate"`
	Reasons       []string `json:"reasons"`
}

// PlaybackState is an active playback session with a now-playing item.
type PlaybackState struct {
	SessionID       string           `json:"session_id"`
	UserName        string           `json:"user_name"`
	DeviceName      string           `json:"device_name"`
	Client          string           `json:"client"`
	RemoteEndPoint  string           `json:"remote_end_point,omitempty"`
	Item            NowPlaying       `json:"item"`
	PositionSeconds int64            `json:"position_seconds"`
	IsPaused        bool             `json:"is_paused"`
	PlayMethod      string           `json:"play_method"`
	Transcoding     TranscodingState `json:"transcoding"`
}

// Image is fetched artwork. It lives for a single request and is never
// persisted.
type Image struct {
	Data        []byte
	ContentType string
}
