package dashboard

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/parkspot/parkwatch/internal/feed"
	"github.com/parkspot/parkwatch/pkg/config"
	"go.uber.org/zap"
)

func testController(t *testing.T, view *View) *Controller {
	t.Helper()

	var wg sync.WaitGroup
	ctrl, err := NewController(context.Background(), &wg, config.DashboardData{
		ListenAddr: "127.0.0.1",
		Port:       0,
	}, view, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return ctrl
}

func TestGetStateEmptySurface(t *testing.T) {
	ctrl := testController(t, NewView())

	rec := httptest.NewRecorder()
	ctrl.handlers.GetState(rec, httptest.NewRequest("GET", "/api/state", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var payload struct {
		Counts  []CountTile `json:"counts"`
		Updated string      `json:"updated"`
		Rows    []Row       `json:"rows"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding state: %v", err)
	}

	if len(payload.Counts) != 6 {
		t.Fatalf("state has %d count tiles, want 6", len(payload.Counts))
	}
	for _, tile := range payload.Counts {
		if tile.Value != "0" {
			t.Errorf("tile %s = %q before any cycle, want %q", tile.Key, tile.Value, "0")
		}
	}
	if len(payload.Rows) != 0 {
		t.Errorf("state has %d rows before any cycle, want 0", len(payload.Rows))
	}
}

func TestGetStateAfterPresentation(t *testing.T) {
	presenter, view := viewPresenter()
	ctrl := testController(t, view)

	now := time.Now()
	presenter.PresentCounts(map[string]int{"UNOCCUPIED": 2})
	presenter.PresentTable([]feed.PredictionItem{
		{Status: "Unoccupied", Classification: "UNOCCUPIED", KerbsideID: "50001"},
	})
	presenter.PresentUpdated(now, now, 60)

	rec := httptest.NewRecorder()
	ctrl.handlers.GetState(rec, httptest.NewRequest("GET", "/api/state", nil))

	var payload struct {
		Counts  []CountTile `json:"counts"`
		Updated string      `json:"updated"`
		Rows    []Row       `json:"rows"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding state: %v", err)
	}

	if payload.Counts[0].Key != "UNOCCUPIED" || payload.Counts[0].Value != "2" {
		t.Errorf("first tile = %+v, want UNOCCUPIED=2", payload.Counts[0])
	}
	if len(payload.Rows) != 1 || payload.Rows[0].SpaceID != "50001" {
		t.Errorf("rows = %+v, want one row for space 50001", payload.Rows)
	}
	if payload.Updated != "updated 0 seconds ago" {
		t.Errorf("updated = %q, want %q", payload.Updated, "updated 0 seconds ago")
	}
}

func TestServeDashboard(t *testing.T) {
	presenter, view := viewPresenter()
	ctrl := testController(t, view)

	now := time.Now()
	presenter.PresentCounts(map[string]int{"VACATE_15M": 4})
	presenter.PresentUpdated(now, now, 60)

	rec := httptest.NewRecorder()
	ctrl.handlers.ServeDashboard(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Vacating within 15 min") {
		t.Error("page is missing the count tile captions")
	}
	if !strings.Contains(body, "updated 0 seconds ago") {
		t.Error("page is missing the updated-at line")
	}
}
