package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]interface{}{"id": 7, "name": "My Portfolio"})

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Unexpected content type: %s", ct)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if payload["name"] != "My Portfolio" {
		t.Errorf("Unexpected payload: %+v", payload)
	}
	// Resources are written as-is, not wrapped.
	if _, wrapped := payload["data"]; wrapped {
		t.Error("Successful responses must not be enveloped")
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "Portfolio not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Detail != "Portfolio not found" {
		t.Errorf("Unexpected detail: %q", body.Detail)
	}
}

func TestErrorHelperStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		fn   func(http.ResponseWriter, string)
		want int
	}{
		{"BadRequest", BadRequest, http.StatusBadRequest},
		{"Unauthorized", Unauthorized, http.StatusUnauthorized},
		{"Forbidden", Forbidden, http.StatusForbidden},
		{"NotFound", NotFound, http.StatusNotFound},
		{"UnprocessableEntity", UnprocessableEntity, http.StatusUnprocessableEntity},
		{"InternalServerError", InternalServerError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.fn(rec, "detail")
			if rec.Code != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
