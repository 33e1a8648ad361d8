package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kauntidev/kaunti/internal/model"
	"github.com/kauntidev/kaunti/internal/paint"
	"github.com/kauntidev/kaunti/internal/tui"
)

type recordDTO struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	FiscalYear       string  `json:"fiscal_year"`
	Population       int64   `json:"population"`
	Allocated        float64 `json:"allocated"`
	Spent            float64 `json:"spent"`
	OwnSourceRevenue float64 `json:"own_source_revenue"`
	Utilization      float64 `json:"utilization"`
	FundingGap       float64 `json:"funding_gap"`
	DebtOutstanding  float64 `json:"debt_outstanding"`
	PendingBills     float64 `json:"pending_bills"`
	DebtRatio        float64 `json:"debt_ratio"`
	AuditStatus      string  `json:"audit_status"`
	AuditNote        string  `json:"audit_note,omitempty"`
}

func toRecordDTO(rec model.Record) recordDTO {
	return recordDTO{
		ID:               rec.ID,
		Name:             rec.Name,
		FiscalYear:       rec.FiscalYear,
		Population:       rec.Population,
		Allocated:        rec.Budget.Allocated,
		Spent:            rec.Budget.Spent,
		OwnSourceRevenue: rec.Budget.OwnSourceRevenue,
		Utilization:      rec.Budget.Utilization(),
		FundingGap:       rec.FundingGap(),
		DebtOutstanding:  rec.Debt.Outstanding,
		PendingBills:     rec.Debt.PendingBills,
		DebtRatio:        rec.DebtRatio(),
		AuditStatus:      string(rec.Audit.Status),
		AuditNote:        rec.Audit.Note,
	}
}

type stateDTO struct {
	SelectedID    string `json:"selected_id,omitempty"`
	HoveredName   string `json:"hovered_name,omitempty"`
	RotationIndex int    `json:"rotation_index"`
	DisplayMode   string `json:"display_mode"`
	AnimationMode string `json:"animation_mode"`
}

type boundaryDTO struct {
	Boundary string `json:"boundary"`
	Code     string `json:"code"`
	Col      int    `json:"col"`
	Row      int    `json:"row"`
	Matched  bool   `json:"matched"`
	RecordID string `json:"record_id,omitempty"`
	County   string `json:"county,omitempty"`
	Status   string `json:"status,omitempty"`
	Shade    string `json:"shade"`
	Color    string `json:"color"`
}

// handleRecords returns the full dataset the map is painted from.
func (s *Server) handleRecords(w http.ResponseWriter, _ *http.Request) {
	ds := s.coordinator.Dataset()

	records := make([]recordDTO, 0, ds.Len())
	for _, rec := range ds.Records {
		records = append(records, toRecordDTO(rec))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"fiscal_year": s.cfg.FiscalYear,
		"source":      s.cfg.Source,
		"version":     ds.Version,
		"fetched_at":  ds.FetchedAt.Format(time.RFC3339),
		"count":       len(records),
		"records":     records,
	})
}

func (s *Server) handleRecordByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ds := s.coordinator.Dataset()

	i, ok := ds.IndexByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no record with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, toRecordDTO(ds.Records[i]))
}

// handleMap resolves every boundary against the current dataset and
// interaction state: the same frame the TUI paints, as JSON.
func (s *Server) handleMap(w http.ResponseWriter, _ *http.Request) {
	ds := s.coordinator.Dataset()
	st := s.coordinator.State()

	tiles := tui.Boundaries()
	boundaries := make([]boundaryDTO, 0, len(tiles))
	for _, t := range tiles {
		dto := boundaryDTO{
			Boundary: t.Name,
			Code:     t.Code,
			Col:      t.Col,
			Row:      t.Row,
			Color:    string(paint.ColorFor(t.Name, ds, st, s.resolver)),
		}
		shade, i, ok := paint.Classify(t.Name, ds, st, s.resolver)
		dto.Shade = shade.String()
		if ok {
			rec := ds.Records[i]
			dto.Matched = true
			dto.RecordID = rec.ID
			dto.County = rec.Name
			dto.Status = string(rec.Audit.Status)
		}
		boundaries = append(boundaries, dto)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"fiscal_year": s.cfg.FiscalYear,
		"state": stateDTO{
			SelectedID:    st.SelectedID,
			HoveredName:   st.HoveredName,
			RotationIndex: st.RotationIndex,
			DisplayMode:   st.DisplayMode.String(),
			AnimationMode: st.AnimationMode.String(),
		},
		"boundaries": boundaries,
	})
}

// handleEmphasis returns the single emphasized record, mirroring the TUI's
// detail panel.
func (s *Server) handleEmphasis(w http.ResponseWriter, _ *http.Request) {
	rec, ok := s.coordinator.Emphasized()
	if !ok {
		writeError(w, http.StatusNotFound, "no records loaded")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"pinned": s.coordinator.State().HasSelection(),
		"record": toRecordDTO(rec),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
