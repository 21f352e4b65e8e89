package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"devisbot/testhelpers"
)

const doorQuote = "devis\nsalon\nmur\n3,20 x 2,40 retirer 1 x 2,10"

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleDevisForm(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := HandleDevisForm()(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "<textarea", `hx-post="/devis"`, "/devis/export/pdf")
}

func TestHandleDevisFormat_HTMX(t *testing.T) {
	req := formRequest("/devis", url.Values{"text": {doorQuote}})
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	if err := HandleDevisFormat(testhelpers.NewTestFormatter())(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "▶️salon", "(🔸 5,58 m²)", "TOTAL mur : 5,58 m²", `class="line-total"`)
	if strings.Contains(body, "<!doctype html>") {
		t.Error("HTMX response should be a partial")
	}
}

func TestHandleDevisFormat_FullPage(t *testing.T) {
	req := formRequest("/devis", url.Values{"text": {doorQuote + "\n<b>note</b>"}})
	rec := httptest.NewRecorder()

	if err := HandleDevisFormat(testhelpers.NewTestFormatter())(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "<!doctype html>", "TOTAL mur : 5,58 m²", "&lt;b&gt;note&lt;/b&gt;")
	if strings.Contains(body, "<b>note</b>") {
		t.Error("user text must be escaped")
	}
}

func TestHandleDevisText(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/devis.txt", strings.NewReader(doorQuote))
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	rec := httptest.NewRecorder()

	if err := HandleDevisText(testhelpers.NewTestFormatter())(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	want := "▶️salon\n▫️mur\n3,20 x 2,40 retirer 1 x 2,10 (🔸 5,58 m²)\nTOTAL mur : 5,58 m²"
	if got := rec.Body.String(); got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestHandleDevisText_TooLarge(t *testing.T) {
	big := strings.Repeat("a", maxTextBytes+10)
	req := httptest.NewRequest(http.MethodPost, "/devis.txt", strings.NewReader(big))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	if err := HandleDevisText(testhelpers.NewTestFormatter())(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleAddressLinks_JSON(t *testing.T) {
	req := formRequest("/adresses", url.Values{"text": {"32 bis rue des Fontaines\n31300 Toulouse"}})
	rec := httptest.NewRecorder()

	if err := HandleAddressLinks()(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("expected JSON content type, got %q", ct)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "32 bis rue des Fontaines, 31300 Toulouse", "waze.com")
}

func TestHandleAddressLinks_HTMXEmpty(t *testing.T) {
	req := formRequest("/adresses", url.Values{"text": {"rien ici"}})
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	if err := HandleAddressLinks()(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Header().Get("HX-Trigger"), "Aucune adresse") {
		t.Errorf("expected an info toast, got %q", rec.Header().Get("HX-Trigger"))
	}
}
