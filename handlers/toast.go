package handlers

import (
	"encoding/json"
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// SetToast asks the page, through the HX-Trigger header, to show a short
// notification. Other triggers already set on the response are kept.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	trigger := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &trigger); err != nil {
			log.Printf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
			trigger = map[string]any{}
		}
	}
	trigger["showToast"] = map[string]string{"message": message, "type": toastType}

	data, err := json.Marshal(trigger)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

// ErrorToast sets an error toast and prevents HTMX from swapping the error
// text into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
