package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedax/schedax/internal/kv/memkv"
	"github.com/schedax/schedax/internal/model"
	"github.com/schedax/schedax/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	router := NewRouter(store.New(memkv.New()), 0)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	var out bytes.Buffer
	_, _ = out.ReadFrom(resp.Body)
	return resp, out.Bytes()
}

func TestScheduleLifecycle(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/users/ana"

	resp, body := doJSON(t, http.MethodPost, base+"/schedules", map[string]any{
		"title": "2026-1",
		"subjects": []map[string]any{{
			"name":      "Matemáticas I",
			"professor": "Dr. Ruiz",
			"credits":   4,
			"weeklySchedule": map[string]any{
				"lunes": []map[string]string{{"timeRange": "08:00 - 10:00", "room": "A101"}},
			},
		}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created model.Schedule
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.ID)

	// List
	resp, body = doJSON(t, http.MethodGet, base+"/schedules", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Count     int              `json:"count"`
		Schedules []model.Schedule `json:"schedules"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 1, list.Count)

	// Toggle completed
	resp, body = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/schedules/%s/completed", base, created.ID), map[string]bool{"completed": true})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var toggled model.Schedule
	require.NoError(t, json.Unmarshal(body, &toggled))
	assert.True(t, toggled.Completed)

	// Delete
	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/schedules/%s", base, created.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, fmt.Sprintf("%s/schedules/%s", base, created.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateScheduleValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/users/ana/schedules", map[string]any{
		"description": "missing title",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEventFilterByDate(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/users/ana"

	for _, e := range []map[string]any{
		{"title": "Parcial", "date": "2026-09-01", "time": "10:00", "type": "exam"},
		{"title": "Entrega", "date": "2026-09-02", "time": "23:59", "type": "deadline"},
	} {
		resp, body := doJSON(t, http.MethodPost, base+"/events", e)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := doJSON(t, http.MethodGet, base+"/events?date=2026-09-01", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Count  int           `json:"count"`
		Events []model.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Parcial", list.Events[0].Title)
}

func TestEventUnknownTypeStoredAsOther(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/users/ana"

	resp, body := doJSON(t, http.MethodPost, base+"/events", map[string]any{
		"title": "Fiesta", "date": "2026-09-05", "time": "20:00", "type": "fiesta",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created model.Event
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, model.EventOther, created.Type)
}

func TestStatsAndAnalytics(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/users/ana"

	resp, _ := doJSON(t, http.MethodGet, base+"/stats", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPut, base+"/stats", map[string]any{
		"systemType":       "periods",
		"totalPeriods":     10,
		"completedPeriods": 4,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = doJSON(t, http.MethodGet, base+"/analytics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var snap struct {
		Progress struct {
			CompletionPercent float64 `json:"completionPercent"`
		} `json:"progress"`
		Week struct {
			Days      []any   `json:"days"`
			FreeHours float64 `json:"freeHours"`
		} `json:"week"`
	}
	require.NoError(t, json.Unmarshal(body, &snap))
	assert.Equal(t, 40.0, snap.Progress.CompletionPercent)
	assert.Len(t, snap.Week.Days, 7)
	assert.Equal(t, 84.0, snap.Week.FreeHours)
}

func TestProfileRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/users/ana"

	resp, body := doJSON(t, http.MethodPut, base+"/profile", map[string]any{
		"name": "Ana", "institution": "UNAM",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = doJSON(t, http.MethodGet, base+"/profile", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var p model.UserProfile
	require.NoError(t, json.Unmarshal(body, &p))
	assert.Equal(t, "UNAM", p.Institution)
}

func TestUsersAreIsolated(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/users/ana/schedules", map[string]any{"title": "2026-1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created model.Schedule
	require.NoError(t, json.Unmarshal(body, &created))

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/users/ben/schedules/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClearUserData(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/users/ana"

	resp, body := doJSON(t, http.MethodPost, base+"/schedules", map[string]any{"title": "2026-1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	resp, body = doJSON(t, http.MethodPut, base+"/stats", map[string]any{
		"systemType": "credits", "totalCredits": 120,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/users/ben/schedules", map[string]any{"title": "2026-1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, _ = doJSON(t, http.MethodDelete, base+"/data", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, base+"/schedules", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 0, list.Count)

	resp, _ = doJSON(t, http.MethodGet, base+"/stats", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Other accounts are untouched.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/users/ben/schedules", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Equal(t, 1, list.Count)
}
