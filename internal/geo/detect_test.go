package geo

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func withServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	old := geoAPIURL
	geoAPIURL = srv.URL
	t.Cleanup(func() { geoAPIURL = old })
}

func TestDetectLocation_Success(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "success",
			"lat": 21.4225,
			"lon": 39.8262,
			"city": "Mecca",
			"country": "Saudi Arabia",
			"timezone": "Asia/Riyadh"
		}`))
	})

	loc, err := DetectLocation()
	if err != nil {
		t.Fatalf("DetectLocation error: %v", err)
	}
	if loc.Latitude != 21.4225 || loc.Longitude != 39.8262 {
		t.Errorf("coordinates = (%g, %g)", loc.Latitude, loc.Longitude)
	}
	if loc.City != "Mecca" || loc.Timezone != "Asia/Riyadh" {
		t.Errorf("location = %+v", loc)
	}
}

func TestDetectLocation_APIFailure(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "fail", "message": "private range"}`))
	})

	_, err := DetectLocation()
	if err == nil {
		t.Fatal("expected error for fail status")
	}
	if !strings.Contains(err.Error(), "private range") {
		t.Errorf("error message should carry API message, got %v", err)
	}
}

func TestDetectLocation_BadStatusCode(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	if _, err := DetectLocation(); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestDetectLocation_MalformedJSON(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "succ`))
	})

	if _, err := DetectLocation(); err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func TestDetectLocation_OutOfRangeCoordinate(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "lat": 912.0, "lon": 0.0}`))
	})

	_, err := DetectLocation()
	if err == nil {
		t.Fatal("expected error for out-of-range latitude")
	}
	if !strings.Contains(err.Error(), "out-of-range") {
		t.Errorf("unexpected error: %v", err)
	}
}
