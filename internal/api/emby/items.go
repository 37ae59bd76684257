package emby

import (
	"context"
	"net/url"
	"strconv"

	"embyassist/internal/models"
)

// Emby runtimes arrive as 100-nanosecond ticks.
const ticksPerMinute = 600000000

// List views keep only the leading cast entries; the full list stays on
// the single-item detail view.
const listCastLimit = 5

// itemFields is the explicit projection requested from upstream so it does
// not return unrequested heavy fields.
const itemFields = "Path,Overview,Genres,People,CommunityRating,OfficialRating,RunTimeTicks,ProductionYear,PremiereDate,DateCreated,ParentId"

// ItemQuery describes one upstream item query. Pagination is caller-driven
// via StartIndex and Limit; nothing here aggregates across pages.
type ItemQuery struct {
	ParentID string
	// CollectionType selects which item types the query includes
	// (movies, tvshows, music, boxsets, mixed). Empty means the broad
	// default set.
	CollectionType string
	Limit          int
	StartIndex     int
	SortBy         string
	SortOrder      string
	SearchTerm     string
	// PersonID scopes the query to items crediting that person.
	PersonID string
}

// QueryItems runs a filtered, paginated, sorted item query and projects the
// results. Entries without an id are dropped: the UI addresses items by id
// and cannot render one without it. Fails open to an empty list.
func (c *Client) QueryItems(ctx context.Context, q ItemQuery) []models.MediaItem {
	params := url.Values{}
	params.Set("Recursive", "true")
	params.Set("Fields", itemFields)
	params.Set("IncludeItemTypes", includeTypesFor(q.CollectionType))
	if q.Limit > 0 {
		params.Set("Limit", strconv.Itoa(q.Limit))
	}
	if q.StartIndex > 0 {
		params.Set("StartIndex", strconv.Itoa(q.StartIndex))
	}
	if q.SortBy != "" {
		params.Set("SortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		params.Set("SortOrder", q.SortOrder)
	}
	if q.ParentID != "" {
		params.Set("ParentId", q.ParentID)
	}
	if q.SearchTerm != "" {
		params.Set("SearchTerm", q.SearchTerm)
	}
	if q.PersonID != "" {
		params.Set("PersonIds", q.PersonID)
	}

	var page apiItemsPage
	if apiErr := c.getJSON(ctx, "/Items", params, &page); apiErr != nil {
		return []models.MediaItem{}
	}

	items := make([]models.MediaItem, 0, len(page.Items))
	for _, raw := range page.Items {
		if item, ok := projectItem(raw, false); ok {
			items = append(items, item)
		}
	}
	return items
}

// RecentlyAdded returns the most recently indexed items across the whole
// library.
func (c *Client) RecentlyAdded(ctx context.Context, limit int) []models.MediaItem {
	return c.QueryItems(ctx, ItemQuery{
		Limit:     limit,
		SortBy:    "DateCreated",
		SortOrder: "Descending",
	})
}

// GetItem returns one item with its full cast. The lookup prefers the
// per-account endpoint variant when an account id has been resolved; the
// account-agnostic variant is the fallback and its failure passes through
// as absence.
func (c *Client) GetItem(ctx context.Context, itemID string) *models.MediaItem {
	if itemID == "" {
		return nil
	}

	path := "/Items/" + itemID
	if userID, ok := c.resolveUserID(ctx); ok {
		path = "/Users/" + userID + "/Items/" + itemID
	}

	var raw apiItem
	if apiErr := c.getJSON(ctx, path, nil, &raw); apiErr != nil {
		return nil
	}
	item, ok := projectItem(raw, true)
	if !ok {
		return nil
	}
	return &item
}

// ListLibraries returns the server's virtual folders.
func (c *Client) ListLibraries(ctx context.Context) []models.Library {
	var raw []apiVirtualFolder
	if apiErr := c.getJSON(ctx, "/Library/VirtualFolders", nil, &raw); apiErr != nil {
		return []models.Library{}
	}
	libraries := make([]models.Library, 0, len(raw))
	for _, folder := range raw {
		libraries = append(libraries, models.Library{
			ID:             folder.ItemID,
			Name:           folder.Name,
			CollectionType: folder.CollectionType,
		})
	}
	return libraries
}

// includeTypesFor maps a library collection type onto the item types a
// query should include. Unknown or empty collection types get the broad
// default set rather than an error; upstream introduces collection types
// faster than clients learn about them.
func includeTypesFor(collectionType string) string {
	switch collectionType {
	case "movies":
		return "Movie,BoxSet"
	case "tvshows":
		return "Series"
	case "music":
		return "MusicAlbum,Audio"
	case "boxsets":
		return "BoxSet"
	default:
		return "Movie,Series,Episode,MusicAlbum,Audio,BoxSet"
	}
}

// projectItem maps a raw item onto the normalized model. ok is false when
// the entry lacks the id every derived list requires.
func projectItem(raw apiItem, fullCast bool) (models.MediaItem, bool) {
	if raw.ID == "" {
		return models.MediaItem{}, false
	}

	item := models.MediaItem{
		ID:              raw.ID,
		Name:            raw.Name,
		Type:            raw.Type,
		Year:            raw.ProductionYear,
		Overview:        raw.Overview,
		Genres:          raw.Genres,
		CommunityRating: raw.CommunityRating,
		OfficialRating:  raw.OfficialRating,
		RuntimeMinutes:  raw.RunTimeTicks / ticksPerMinute,
		Path:            raw.Path,
		CreatedAt:       raw.DateCreated,
		PremiereDate:    raw.PremiereDate,
		ParentID:        raw.ParentID,
		PrimaryImageTag: raw.ImageTags["Primary"],
	}

	people := raw.People
	if !fullCast && len(people) > listCastLimit {
		people = people[:listCastLimit]
	}
	for _, p := range people {
		item.Cast = append(item.Cast, models.Person{
			ID:              p.ID,
			Name:            p.Name,
			Type:            p.Type,
			Role:            p.Role,
			PrimaryImageTag: p.PrimaryImageTag,
		})
	}

	if raw.Type == "Episode" {
		item.SeriesName = raw.SeriesName
		item.SeasonNumber = raw.ParentIndexNumber
		item.EpisodeNumber = raw.IndexNumber
	}

	return item, true
}
