package emby

// Raw Emby JSON shapes. Upstream fields are inconsistently populated;
// everything optional stays a zero value and the projection code decides
// what that means.

type apiSystemInfo struct {
	ServerName           string `json:"ServerName"`
	Version              string `json:"Version"`
	OperatingSystem      string `json:"OperatingSystem"`
	SystemArchitecture   string `json:"SystemArchitecture"`
	IsShuttingDown       bool   `json:"IsShuttingDown"`
	HasPendingRestart    bool   `json:"HasPendingRestart"`
	CanSelfRestart       bool   `json:"CanSelfRestart"`
	CachePath            string `json:"CachePath"`
	LogPath              string `json:"LogPath"`
	TranscodingTempPath  string `json:"TranscodingTempPath"`
	HTTPServerPortNumber int    `json:"HttpServerPortNumber"`
	HTTPSPortNumber      int    `json:"HttpsPortNumber"`
}

type apiEndpointInfo struct {
	IsLocal     bool `json:"IsLocal"`
	IsInNetwork bool `json:"IsInNetwork"`
}

type apiTaskResult struct {
	StartTimeUTC string `json:"StartTimeUtc"`
	EndTimeUTC   string `json:"EndTimeUtc"`
	Status       string `json:"Status"`
}

type apiScheduledTask struct {
	ID                        string         `json:"Id"`
	Name                      string         `json:"Name"`
	State                     string         `json:"State"`
	CurrentProgressPercentage float64        `json:"CurrentProgressPercentage"`
	Category                  string         `json:"Category"`
	Description               string         `json:"Description"`
	LastExecutionResult       *apiTaskResult `json:"LastExecutionResult"`
}

type apiPerson struct {
	ID              string `json:"Id"`
	Name            string `json:"Name"`
	Type            string `json:"Type"`
	Role            string `json:"Role"`
	PrimaryImageTag string `json:"PrimaryImageTag"`
}

type apiItem struct {
	ID                  string            `json:"Id"`
	Name                string            `json:"Name"`
	Type                string            `json:"Type"`
	ProductionYear      int               `json:"ProductionYear"`
	Overview            string            `json:"Overview"`
	Genres              []string          `json:"Genres"`
	CommunityRating     float64           `json:"CommunityRating"`
	OfficialRating      string            `json:"OfficialRating"`
	RunTimeTicks        int64             `json:"RunTimeTicks"`
	Path                string            `json:"Path"`
	DateCreated         string            `json:"DateCreated"`
	PremiereDate        string            `json:"PremiereDate"`
	People              []apiPerson       `json:"People"`
	ParentID            string            `json:"ParentId"`
	ImageTags           map[string]string `json:"ImageTags"`
	SeriesName          string            `json:"SeriesName"`
	ParentIndexNumber   int               `json:"ParentIndexNumber"`
	IndexNumber         int               `json:"IndexNumber"`
	ProductionLocations []string          `json:"ProductionLocations"`
}

type apiItemsPage struct {
	Items            []apiItem `json:"Items"`
	TotalRecordCount int       `json:"TotalRecordCount"`
}

type apiVirtualFolder struct {
	ItemID         string `json:"ItemId"`
	Name           string `json:"Name"`
	CollectionType string `json:"CollectionType"`
}

type apiUser struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}

type apiPlayState struct {
	PositionTicks int64  `json:"PositionTicks"`
	IsPaused      bool   `json:"IsPaused"`
	PlayMethod    string `json:"PlayMethod"`
}

type apiTranscodingInfo struct {
	VideoCodec       string   `json:"VideoCodec"`
	AudioCodec       string   `json:"AudioCodec"`
	Container        string   `json:"Container"`
	Bitrate          int64    `json:"Bitrate"`
	TranscodeReasons []string `json:"TranscodeReasons"`
}

type apiSession struct {
	ID              string              `json:"Id"`
	UserName        string              `json:"UserName"`
	DeviceName      string              `json:"DeviceName"`
	Client          string              `json:"Client"`
	RemoteEndPoint  string              `json:"RemoteEndPoint"`
	NowPlayingItem  *apiItem            `json:"NowPlayingItem"`
	PlayState       *apiPlayState       `json:"PlayState"`
	TranscodingInfo *apiTranscodingInfo `json:"TranscodingInfo"`
}
