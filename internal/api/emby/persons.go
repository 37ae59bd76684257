package emby

import (
	"context"
	"net/url"
	"strconv"

	"embyassist/internal/models"
)

// ListPersons returns people known to the server, optionally filtered by a
// search term. Fails open to an empty list.
func (c *Client) ListPersons(ctx context.Context, limit, startIndex int, searchTerm string) []models.Person {
	params := url.Values{}
	if limit > 0 {
		params.Set("Limit", strconv.Itoa(limit))
	}
	if startIndex > 0 {
		params.Set("StartIndex", strconv.Itoa(startIndex))
	}
	if searchTerm != "" {
		params.Set("SearchTerm", searchTerm)
	}

	var page apiItemsPage
	if apiErr := c.getJSON(ctx, "/Persons", params, &page); apiErr != nil {
		return []models.Person{}
	}

	persons := make([]models.Person, 0, len(page.Items))
	for _, raw := range page.Items {
		if raw.ID == "" {
			continue
		}
		persons = append(persons, models.Person{
			ID:              raw.ID,
			Name:            raw.Name,
			Type:            raw.Type,
			PrimaryImageTag: raw.ImageTags["Primary"],
		})
	}
	return persons
}

// GetPerson returns one person's detail view. People are items upstream,
// with biographical data stored under item-shaped keys: the overview is
// the biography, the premiere date is the birth date, and the first
// production location is the birth place.
func (c *Client) GetPerson(ctx context.Context, personID string) *models.PersonDetail {
	if personID == "" {
		return nil
	}

	path := "/Items/" + personID
	if userID, ok := c.resolveUserID(ctx); ok {
		path = "/Users/" + userID + "/Items/" + personID
	}

	var raw apiItem
	if apiErr := c.getJSON(ctx, path, nil, &raw); apiErr != nil {
		return nil
	}
	if raw.ID == "" {
		return nil
	}

	detail := &models.PersonDetail{
		Person: models.Person{
			ID:              raw.ID,
			Name:            raw.Name,
			Type:            raw.Type,
			PrimaryImageTag: raw.ImageTags["Primary"],
		},
		Biography: raw.Overview,
		BirthDate: raw.PremiereDate,
	}
	if len(raw.ProductionLocations) > 0 {
		detail.BirthPlace = raw.ProductionLocations[0]
	}
	return detail
}

// PersonCredits returns the items crediting a person.
func (c *Client) PersonCredits(ctx context.Context, personID string, limit int) []models.MediaItem {
	if personID == "" {
		return []models.MediaItem{}
	}
	return c.QueryItems(ctx, ItemQuery{
		PersonID:  personID,
		Limit:     limit,
		SortBy:    "PremiereDate",
		SortOrder: "Descending",
	})
}
