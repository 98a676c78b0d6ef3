package geocode

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"shopmap/internal/apperr"
	"shopmap/internal/config"
)

// ErrNoMatch is returned when the lookup succeeded but no place matched the
// query. It is a NotFound condition, distinct from a transport failure.
var ErrNoMatch = apperr.NotFound("no matching place")

// Candidate is the best-match place returned by the geocoding collaborator.
type Candidate struct {
	OSMID     int64   `json:"osmId"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"category,omitempty"`
}

type Client interface {
	Search(ctx context.Context, name string) (*Candidate, error)
}

type overpassClient struct {
	http *resty.Client
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

func NewOverpassClient(cfg *config.Config) Client {
	client := resty.New().
		SetBaseURL(cfg.Geocode.OverpassURL).
		SetTimeout(cfg.Geocode.Timeout).
		SetHeader("User-Agent", "shopmap/1.0")

	return &overpassClient{http: client}
}

// Search resolves a free-text shop name to at most one Overpass node tagged as
// an amenity. The first element of the response is taken as the best match.
func (c *overpassClient) Search(ctx context.Context, name string) (*Candidate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("shop name query is empty")
	}

	query := fmt.Sprintf(
		`[out:json][timeout:10];node["name"~%q,i]["amenity"];out body 1;`,
		name,
	)

	var result overpassResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{"data": query}).
		SetResult(&result).
		Post("")
	if err != nil {
		return nil, apperr.ExternalService("overpass request failed: %v", err)
	}

	if resp.IsError() {
		return nil, apperr.ExternalService("overpass returned status %d", resp.StatusCode())
	}

	if len(result.Elements) == 0 {
		return nil, ErrNoMatch
	}

	el := result.Elements[0]
	candidate := &Candidate{
		OSMID:     el.ID,
		Name:      el.Tags["name"],
		Latitude:  el.Lat,
		Longitude: el.Lon,
		Category:  el.Tags["amenity"],
	}

	if candidate.Name == "" {
		candidate.Name = name
	}

	return candidate, nil
}
