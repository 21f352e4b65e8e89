package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func TestSetToast_Basic(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "info", "Aucune adresse détectée")

	var parsed map[string]map[string]string
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	toast := parsed["showToast"]
	if toast["message"] != "Aucune adresse détectée" || toast["type"] != "info" {
		t.Errorf("unexpected toast %v", toast)
	}
}

func TestSetToast_MergesExistingTrigger(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set("HX-Trigger", `{"refresh":true}`)
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "success", "ok")

	var parsed map[string]any
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if parsed["refresh"] != true {
		t.Error("existing trigger was lost")
	}
	if _, ok := parsed["showToast"]; !ok {
		t.Error("showToast missing")
	}
}

func TestSetToast_InvalidExistingTrigger(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set("HX-Trigger", "not-json")
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "error", "boom")

	var parsed map[string]any
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if len(parsed) != 1 {
		t.Errorf("expected only showToast, got %v", parsed)
	}
}

func TestErrorToast(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	if err := ErrorToast(e, http.StatusBadRequest, "Texte invalide"); err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap: none")
	}
	if rec.Body.String() != "Texte invalide" {
		t.Errorf("body = %q", rec.Body.String())
	}
}
