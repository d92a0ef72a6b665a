package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func geocoderBody(pos string) string {
	return `{"response":{"GeoObjectCollection":{"featureMember":[` +
		`{"GeoObject":{"Point":{"pos":"` + pos + `"}}}]}}}`
}

const emptyGeocoderBody = `{"response":{"GeoObjectCollection":{"featureMember":[]}}}`

func TestGeocoderResolve(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"geocode": r.URL.Query().Get("geocode"),
			"apikey":  r.URL.Query().Get("apikey"),
			"format":  r.URL.Query().Get("format"),
		}
		w.Write([]byte(geocoderBody("30.523 50.450")))
	}))
	defer srv.Close()

	g := NewGeocoder("test-key", srv.URL)
	lon, lat, err := g.Resolve("123 Elm St")

	assert.NoError(t, err)
	// Longitude comes first in the provider's "pos" string.
	assert.Equal(t, 30.523, lon)
	assert.Equal(t, 50.450, lat)
	assert.Equal(t, "123 Elm St", gotQuery["geocode"])
	assert.Equal(t, "test-key", gotQuery["apikey"])
	assert.Equal(t, "json", gotQuery["format"])
}

func TestGeocoderResolveNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(emptyGeocoderBody))
	}))
	defer srv.Close()

	g := NewGeocoder("test-key", srv.URL)
	_, _, err := g.Resolve("nowhere at all")

	assert.ErrorIs(t, err, ErrAddressNotFound)
	assert.False(t, func() bool {
		var te *TransportError
		return errors.As(err, &te)
	}())
}

func TestGeocoderResolveServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGeocoder("test-key", srv.URL)
	_, _, err := g.Resolve("123 Elm St")

	var te *TransportError
	assert.ErrorAs(t, err, &te)
	assert.True(t, GeocodeFailed(err))
}

func TestGeocoderResolveConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	g := NewGeocoder("test-key", srv.URL)
	_, _, err := g.Resolve("123 Elm St")

	var te *TransportError
	assert.ErrorAs(t, err, &te)
}

func TestGeocoderResolveMalformedPoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geocoderBody("not-a-point")))
	}))
	defer srv.Close()

	g := NewGeocoder("test-key", srv.URL)
	_, _, err := g.Resolve("123 Elm St")

	var te *TransportError
	assert.ErrorAs(t, err, &te)
}
