package emby

import (
	"context"

	"embyassist/internal/models"
)

// GetStatus merges system info and endpoint info into one composite view.
// System info is mandatory: if it cannot be fetched the whole aggregate is
// absent. Endpoint info is best-effort and defaults to zero values when its
// call fails. The result is never cached across calls.
func (c *Client) GetStatus(ctx context.Context) *models.ServerStatus {
	var info apiSystemInfo
	if apiErr := c.getJSON(ctx, "/System/Info", nil, &info); apiErr != nil {
		return nil
	}

	var endpoint apiEndpointInfo
	if apiErr := c.getJSON(ctx, "/System/Endpoint", nil, &endpoint); apiErr != nil {
		endpoint = apiEndpointInfo{}
	}

	return &models.ServerStatus{
		ServerName:          info.ServerName,
		Version:             info.Version,
		OperatingSystem:     info.OperatingSystem,
		Architecture:        info.SystemArchitecture,
		IsShuttingDown:      info.IsShuttingDown,
		HasPendingRestart:   info.HasPendingRestart,
		CanSelfRestart:      info.CanSelfRestart,
		CachePath:           info.CachePath,
		LogPath:             info.LogPath,
		TranscodingTempPath: info.TranscodingTempPath,
		HTTPPort:            info.HTTPServerPortNumber,
		HTTPSPort:           info.HTTPSPortNumber,
		Endpoint: models.EndpointInfo{
			IsLocal:     endpoint.IsLocal,
			IsInNetwork: endpoint.IsInNetwork,
		},
	}
}
