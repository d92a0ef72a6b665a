package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultGeocoderBaseURL = "https://geocode-maps.yandex.ru/1.x"

// ErrAddressNotFound means the provider answered but knows no such address.
// Callers surface this as "distance unknown" instead of failing.
var ErrAddressNotFound = errors.New("geocoder: no results for address")

// TransportError covers timeouts, connection failures and non-2xx answers
// from the geocoding provider. It is recoverable per address.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "geocoder: transport failure: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// GeocodeFailed reports whether err is one of the geocoder's own failure
// modes (as opposed to e.g. a database error from the caller).
func GeocodeFailed(err error) bool {
	var te *TransportError
	return errors.Is(err, ErrAddressNotFound) || errors.As(err, &te)
}

// Geocoder resolves free-text addresses against the Yandex geocoding API.
type Geocoder struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGeocoder(apiKey, baseURL string) *Geocoder {
	if baseURL == "" {
		baseURL = defaultGeocoderBaseURL
	}
	return &Geocoder{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type geocoderResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Resolve returns the coordinates of the most relevant match for address.
// The provider encodes a point as "longitude latitude" in one string.
func (g *Geocoder) Resolve(address string) (lon, lat float64, err error) {
	params := url.Values{}
	params.Set("geocode", address)
	params.Set("apikey", g.apiKey)
	params.Set("format", "json")

	resp, err := g.httpClient.Get(g.baseURL + "?" + params.Encode())
	if err != nil {
		return 0, 0, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, 0, &TransportError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var body geocoderResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, &TransportError{Err: err}
	}

	found := body.Response.GeoObjectCollection.FeatureMember
	if len(found) == 0 {
		return 0, 0, ErrAddressNotFound
	}

	// First result wins, ties are not disambiguated.
	parts := strings.Fields(found[0].GeoObject.Point.Pos)
	if len(parts) != 2 {
		return 0, 0, &TransportError{Err: fmt.Errorf("malformed point %q", found[0].GeoObject.Point.Pos)}
	}
	lon, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, &TransportError{Err: err}
	}
	lat, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, &TransportError{Err: err}
	}
	return lon, lat, nil
}
