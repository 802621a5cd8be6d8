package dashboard

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/parkspot/parkwatch/internal/log"
	"github.com/parkspot/parkwatch/internal/predict"
)

// Handlers contains the HTTP handlers for the dashboard server
type Handlers struct {
	controller *Controller
}

// NewHandlers creates the handler set for a controller
func NewHandlers(c *Controller) *Handlers {
	return &Handlers{controller: c}
}

// classificationLabels maps classification keys to the tile captions shown
// on the dashboard.
var classificationLabels = map[string]string{
	predict.ClassUnoccupied:    "Unoccupied",
	predict.ClassVacate15M:     "Vacating within 15 min",
	predict.ClassVacate30M:     "Vacating within 30 min",
	predict.ClassVacate60M:     "Vacating within 60 min",
	predict.ClassOccupiedGT60M: "Occupied 60+ min",
	predict.ClassPermitParking: "Permit parking",
}

// CountTile is one aggregate tile on the dashboard page.
type CountTile struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// countTiles expands a state's counts over the fixed six-key set, in display
// order, substituting "0" for any key the surface has no value for yet.
func countTiles(state State) []CountTile {
	tiles := make([]CountTile, 0, len(predict.Classifications))
	for _, key := range predict.Classifications {
		value := state.Counts[key]
		if value == "" {
			value = "0"
		}
		tiles = append(tiles, CountTile{Key: key, Label: classificationLabels[key], Value: value})
	}
	return tiles
}

// ServeDashboard renders the dashboard page from the embedded template.
func (h *Handlers) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	state := h.controller.view.Snapshot()

	view := template.Must(template.New("dashboard.html.tmpl").ParseFS(h.controller.FS, "dashboard.html.tmpl"))

	templateData := struct {
		PageTitle string
		Tiles     []CountTile
		Updated   string
		Rows      []Row
	}{
		PageTitle: h.controller.dashConfig.PageTitle,
		Tiles:     countTiles(state),
		Updated:   state.Updated,
		Rows:      state.Rows,
	}

	w.Header().Set("Content-Type", "text/html")
	if err := view.Execute(w, templateData); err != nil {
		log.Error("error executing dashboard template:", err)
	}
}

// GetState returns the current dashboard state as JSON, mirroring exactly
// what the page shows.
func (h *Handlers) GetState(w http.ResponseWriter, r *http.Request) {
	state := h.controller.view.Snapshot()

	payload := struct {
		Tiles   []CountTile `json:"counts"`
		Updated string      `json:"updated"`
		Rows    []Row       `json:"rows"`
	}{
		Tiles:   countTiles(state),
		Updated: state.Updated,
		Rows:    state.Rows,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("error encoding dashboard state:", err)
	}
}
