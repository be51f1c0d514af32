package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// WeatherClient calls the tomorrow.io realtime endpoint for the current
// temperature at a "lat,lon" location. Failures propagate to the caller.
type WeatherClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

type weatherResponse struct {
	Data struct {
		Values struct {
			Temperature float64 `json:"temperature"`
		} `json:"values"`
	} `json:"data"`
}

func NewWeatherClient(apiURL, apiKey string, timeout time.Duration) *WeatherClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WeatherClient{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *WeatherClient) CurrentTemperature(location string) (int, error) {
	params := url.Values{}
	params.Set("location", location)
	params.Set("language", "en")
	params.Set("fields", "temperature")

	req, err := http.NewRequest("GET", c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("weather API status %d", resp.StatusCode)
	}

	var body weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("weather response decode failed: %w", err)
	}

	return int(body.Data.Values.Temperature), nil
}
