package services

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// Location is the outcome of an IP-to-coordinates lookup. Lookups never
// fail: every error path collapses into the fixed fallback coordinate, with
// Reason recording why.
type Location struct {
	Coords   string
	Fallback bool
	Reason   string
}

const (
	FallbackLoopback          = "loopback"
	FallbackLookupFailure     = "lookup_failure"
	FallbackMalformedResponse = "malformed_response"
	FallbackNonSuccess        = "non_success"
)

// GeoIPClient resolves a caller IP to "lat,lon" via a keyless lookup API.
type GeoIPClient struct {
	apiURL        string
	fallbackCoord string
	httpClient    *http.Client
}

type geoIPResponse struct {
	Status string   `json:"status"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
}

func NewGeoIPClient(apiURL, fallbackCoord string) *GeoIPClient {
	return &GeoIPClient{
		apiURL:        apiURL,
		fallbackCoord: fallbackCoord,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *GeoIPClient) Locate(ip string) Location {
	if ip == "" || ip == "127.0.0.1" || ip == "::1" {
		return c.fallback(FallbackLoopback)
	}

	resp, err := c.httpClient.Get(c.apiURL + "/" + ip)
	if err != nil {
		return c.fallback(FallbackLookupFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.fallback(FallbackLookupFailure)
	}

	var body geoIPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.fallback(FallbackMalformedResponse)
	}

	if body.Status != "success" {
		return c.fallback(FallbackNonSuccess)
	}
	if body.Lat == nil || body.Lon == nil {
		return c.fallback(FallbackMalformedResponse)
	}

	return Location{Coords: formatCoords(*body.Lat, *body.Lon)}
}

func (c *GeoIPClient) fallback(reason string) Location {
	return Location{Coords: c.fallbackCoord, Fallback: true, Reason: reason}
}

func formatCoords(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}
