package emby

import (
	"context"
	"net/url"
	"strconv"

	"embyassist/internal/models"
)

// ImageKind selects the target bounds for a fetched image.
type ImageKind int

const (
	// ImageKindItem is poster artwork for a library item.
	ImageKindItem ImageKind = iota
	// ImageKindPerson is a cast member headshot, rendered smaller.
	ImageKindPerson
)

const imageQuality = 90

func (k ImageKind) maxHeight() int {
	if k == ImageKindPerson {
		return 200
	}
	return 300
}

// GetImage resolves a displayable image for an entity. The Primary variant
// is preferred; a not-found outcome triggers one retry against the Thumb
// variant with the same bounds. Any other outcome after both attempts is
// absence: "no image available", not an error, and placeholder rendering
// stays a UI concern.
func (c *Client) GetImage(ctx context.Context, entityID string, kind ImageKind) (*models.Image, bool) {
	if entityID == "" {
		return nil, false
	}

	params := url.Values{}
	params.Set("maxHeight", strconv.Itoa(kind.maxHeight()))
	params.Set("quality", strconv.Itoa(imageQuality))

	data, contentType, apiErr := c.getBytes(ctx, "/Items/"+entityID+"/Images/Primary", params)
	if apiErr != nil && apiErr.Kind == ErrNotFound {
		data, contentType, apiErr = c.getBytes(ctx, "/Items/"+entityID+"/Images/Thumb", params)
	}
	if apiErr != nil {
		return nil, false
	}

	if contentType == "" {
		contentType = "image/jpeg"
	}
	return &models.Image{Data: data, ContentType: contentType}, true
}
