package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "placeshare/internal/errors"
)

func TestHTTPGeocoder_Resolve(t *testing.T) {
	t.Run("resolves coordinates from first match", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "20 W 34th St, NYC", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"lat":"40.748","lon":"-73.985"},{"lat":"0","lon":"0"}]`))
		}))
		defer srv.Close()

		g := NewHTTPGeocoder(srv.URL, time.Second)
		loc, err := g.Resolve(context.Background(), "20 W 34th St, NYC")

		assert.NoError(t, err)
		assert.Equal(t, "40.748", loc.Lat.String())
		assert.Equal(t, "-73.985", loc.Lng.String())
	})

	t.Run("no match fails with geocode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		g := NewHTTPGeocoder(srv.URL, time.Second)
		_, err := g.Resolve(context.Background(), "nowhere at all")

		assert.ErrorIs(t, err, apperrors.ErrGeocodeFailed)
	})

	t.Run("upstream error fails with geocode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		g := NewHTTPGeocoder(srv.URL, time.Second)
		_, err := g.Resolve(context.Background(), "20 W 34th St, NYC")

		assert.ErrorIs(t, err, apperrors.ErrGeocodeFailed)
	})

	t.Run("unreachable upstream fails with geocode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		g := NewHTTPGeocoder(srv.URL, time.Second)
		_, err := g.Resolve(context.Background(), "20 W 34th St, NYC")

		assert.ErrorIs(t, err, apperrors.ErrGeocodeFailed)
	})

	t.Run("malformed coordinates fail with geocode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"lat":"not-a-number","lon":"-73.985"}]`))
		}))
		defer srv.Close()

		g := NewHTTPGeocoder(srv.URL, time.Second)
		_, err := g.Resolve(context.Background(), "20 W 34th St, NYC")

		assert.ErrorIs(t, err, apperrors.ErrGeocodeFailed)
	})
}
