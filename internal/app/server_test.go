package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehr/scribe/internal/config"
	"github.com/ehr/scribe/internal/platform/middleware"
)

const testIndex = `<!doctype html><title>dashboard</title><div id="root"></div>`

func testConfig() *config.Config {
	return &config.Config{
		Port:            "5000",
		Env:             "test",
		StaticDir:       "unused",
		CORSOrigins:     []string{"*"},
		LogLevel:        "info",
		CacheMaxAge:     60,
		ShutdownTimeout: time.Second,
	}
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/index.html", []byte(testIndex), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/static/css/main.css", []byte("body{}"), 0o644))
	return NewServer(testConfig(), zerolog.Nop(), fsys)
}

func do(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	rec := do(newTestServer(t), http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","version":"0.1.0"}`, rec.Body.String())
}

func TestServer_ConsultationEndpointsIgnoreID(t *testing.T) {
	e := newTestServer(t)

	for _, route := range []string{"/api/transcript/", "/api/missing-info/", "/api/soap/", "/api/icd-codes/"} {
		a := do(e, http.MethodGet, route+"1", "", nil)
		b := do(e, http.MethodGet, route+"999", "", nil)
		require.Equal(t, http.StatusOK, a.Code, route)
		require.Equal(t, http.StatusOK, b.Code, route)
		assert.Equal(t, a.Body.String(), b.Body.String(), route)
	}

	var lines []map[string]interface{}
	rec := do(e, http.MethodGet, "/api/transcript/999", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lines))
	assert.Len(t, lines, 6)
}

func TestServer_Consultations(t *testing.T) {
	rec := do(newTestServer(t), http.MethodGet, "/api/consultations", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "د. هدى", items[0]["doctor"])
	assert.Equal(t, "Dr. Huda", items[0]["doctor_en"])
}

func TestServer_Reports(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/reports", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var reports []struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Len(t, reports, 4)
	for i, want := range []int{101, 102, 103, 104} {
		assert.Equal(t, want, reports[i].ID)
	}

	rec = do(e, http.MethodGet, "/api/reports/101", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"patient_name_en":"Fatima Ahmed"`)

	rec = do(e, http.MethodGet, "/api/reports/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Report not found"}`, rec.Body.String())
}

func TestServer_Statistics(t *testing.T) {
	rec := do(newTestServer(t), http.MethodGet, "/api/statistics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		Monthly []struct {
			Month string `json:"month"`
			Count int    `json:"count"`
		} `json:"monthly_consultations"`
		Efficiency map[string]float64 `json:"efficiency_metrics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Len(t, stats.Monthly, 6)
	assert.Equal(t, "January", stats.Monthly[0].Month)
	assert.Equal(t, 45, stats.Monthly[0].Count)
	assert.Equal(t, 0.94, stats.Efficiency["avg_transcription_accuracy"])
}

func TestServer_SaveToEMR(t *testing.T) {
	e := newTestServer(t)
	want := `{"success":true,"message":"Note pushed to EMR successfully"}`

	for _, body := range []string{"", `{"note":"plan"}`, "not json at all {"} {
		rec := do(e, http.MethodPost, "/api/save-to-emr", body, map[string]string{
			echo.HeaderContentType: echo.MIMEApplicationJSON,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, want, rec.Body.String())
	}
}

func TestServer_MalformedIDsAreNotFound(t *testing.T) {
	e := newTestServer(t)

	for _, target := range []string{"/api/reports/abc", "/api/soap/-1", "/api/transcript/1e3", "/api/unknown", "/api"} {
		rec := do(e, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String(), target)
	}
}

func TestServer_OversizedAndEscapedIDs(t *testing.T) {
	e := newTestServer(t)

	transcript := do(e, http.MethodGet, "/api/transcript/1", "", nil).Body.String()
	rec := do(e, http.MethodGet, "/api/transcript/99999999999999999999", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, transcript, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/reports/99999999999999999999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Report not found"}`, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/reports/%31%30%31", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"patient_name_en":"Fatima Ahmed"`)
}

func TestServer_HeadMirrorsGet(t *testing.T) {
	e := newTestServer(t)

	for _, target := range []string{"/", "/dashboard", "/health", "/api/reports", "/api/soap/1"} {
		rec := do(e, http.MethodHead, target, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}

	rec := do(e, http.MethodHead, "/api/reports", "", nil)
	assert.NotEmpty(t, rec.Header().Get("ETag"))

	rec = do(e, http.MethodHead, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestServer_StaticFallback(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/nonexistent.js", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testIndex, rec.Body.String())

	rec = do(e, http.MethodGet, "/", "", nil)
	assert.Equal(t, testIndex, rec.Body.String())

	rec = do(e, http.MethodGet, "/static/css/main.css", "", nil)
	assert.Equal(t, "body{}", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
}

func TestServer_ETagRoundTrip(t *testing.T) {
	e := newTestServer(t)

	first := do(e, http.MethodGet, "/api/statistics", "", nil)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	rec := do(e, http.MethodGet, "/api/statistics", "", map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, rec.Code)

	notFound := do(e, http.MethodGet, "/api/reports/999", "", nil)
	assert.Empty(t, notFound.Header().Get("ETag"))
}

func TestServer_RequestIDAndSecurityHeaders(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/api/consultations", "", map[string]string{middleware.RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = do(e, http.MethodGet, "/", "", nil)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestServer_CORSAnyOrigin(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodOptions, "/api/reports", "", map[string]string{
		echo.HeaderOrigin:                     "http://dashboard.example",
		echo.HeaderAccessControlRequestMethod: http.MethodGet,
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	rec = do(e, http.MethodGet, "/api/consultations", "", map[string]string{echo.HeaderOrigin: "http://other.example"})
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
