package jellyfin

import (
	"context"
	"fmt"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// MediaItem is a simplified representation of a Jellyfin item.
type MediaItem struct {
	ID         string
	Name       string
	Type       string // Movie, Series, Episode, CollectionFolder, etc.
	Year       int
	SeriesName string
}

// Library is one user view with its most recent items.
type Library struct {
	ID     string
	Name   string
	Latest []MediaItem
}

// GetViews returns the user's media libraries (Movies, TV Shows, Music, etc.)
func (c *Client) GetViews(ctx context.Context) ([]MediaItem, error) {
	result, resp, err := c.api.UserViewsAPI.GetUserViews(ctx).UserId(c.userID).Execute()
	if err != nil {
		return nil, fmt.Errorf("get views: %w (status: %s)", err, respStatus(resp))
	}
	return convertItems(result.Items), nil
}

// GetLatestMedia returns the latest items in a library.
func (c *Client) GetLatestMedia(ctx context.Context, parentID string, limit int) ([]MediaItem, error) {
	req := c.api.UserLibraryAPI.GetLatestMedia(ctx).
		UserId(c.userID).
		Limit(int32(limit))
	if parentID != "" {
		req = req.ParentId(parentID)
	}
	items, resp, err := req.Execute()
	if err != nil {
		return nil, fmt.Errorf("get latest: %w (status: %s)", err, respStatus(resp))
	}
	return convertItems(items), nil
}

// LoadLibraries fetches every view and its latest items. A library whose
// items fail to load is kept with an empty list.
func (c *Client) LoadLibraries(ctx context.Context, limit int) ([]Library, error) {
	views, err := c.GetViews(ctx)
	if err != nil {
		return nil, err
	}
	libs := make([]Library, 0, len(views))
	for _, v := range views {
		lib := Library{ID: v.ID, Name: v.Name}
		if items, err := c.GetLatestMedia(ctx, v.ID, limit); err == nil {
			lib.Latest = items
		} else if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		libs = append(libs, lib)
	}
	return libs, nil
}

func convertItems(items []jellyfin.BaseItemDto) []MediaItem {
	result := make([]MediaItem, 0, len(items))
	for _, item := range items {
		result = append(result, convertBaseItemDto(&item))
	}
	return result
}

func convertBaseItemDto(item *jellyfin.BaseItemDto) MediaItem {
	mi := MediaItem{}
	if item.Id != nil {
		mi.ID = *item.Id
	}
	mi.Name = item.GetName()
	if item.Type != nil {
		mi.Type = string(*item.Type)
	}
	mi.Year = int(item.GetProductionYear())
	mi.SeriesName = item.GetSeriesName()
	return mi
}
