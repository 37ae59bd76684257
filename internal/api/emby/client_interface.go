package emby

import (
	"context"

	"embyassist/internal/models"
)

// ClientInterface defines the domain views the Emby client serves.
// This allows for mocking in tests. Every method returns a normalized
// value/list or an explicit absence (empty slice, nil pointer, false);
// none of them raise for "not found" or "upstream unavailable".
type ClientInterface interface {
	GetStatus(ctx context.Context) *models.ServerStatus
	ListScheduledTasks(ctx context.Context) []models.ScheduledTask
	ListActiveTasks(ctx context.Context) []models.ScheduledTask
	ListProcessing(ctx context.Context) []models.ProcessingItem
	ListCompleted(ctx context.Context, limit int) []models.CompletedTask
	GetTask(ctx context.Context, taskID string) *models.ScheduledTask
	QueryItems(ctx context.Context, q ItemQuery) []models.MediaItem
	RecentlyAdded(ctx context.Context, limit int) []models.MediaItem
	GetItem(ctx context.Context, itemID string) *models.MediaItem
	ListLibraries(ctx context.Context) []models.Library
	ListPersons(ctx context.Context, limit, startIndex int, searchTerm string) []models.Person
	GetPerson(ctx context.Context, personID string) *models.PersonDetail
	PersonCredits(ctx context.Context, personID string, limit int) []models.MediaItem
	ListNowPlaying(ctx context.Context) []models.PlaybackState
	GetImage(ctx context.Context, entityID string, kind ImageKind) (*models.Image, bool)
}

// Ensure that the Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)
