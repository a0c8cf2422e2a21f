package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestBuild_GroupsMethodsByPath(t *testing.T) {
	doc := Build("t", "d", "1.0.0", APIRoutes)

	ops, ok := doc.Paths["/subscribers"]
	if !ok {
		t.Fatal("document missing /subscribers path")
	}
	if _, ok := ops["get"]; !ok {
		t.Error("missing get operation on /subscribers")
	}
	if _, ok := ops["post"]; !ok {
		t.Error("missing post operation on /subscribers")
	}

	for _, path := range []string{"/subscribers/name", "/subscribers/{id}", "/healthz"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("document missing %s path", path)
		}
	}
}

func TestSpecHandler_ServesValidJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	SpecHandler()(rec, httptest.NewRequest(http.MethodGet, "/api-docs/openapi.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q, want application/json", ct)
	}

	var doc Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("served document is not valid JSON: %v", err)
	}
	if doc.OpenAPI != "3.0.3" {
		t.Fatalf("openapi version = %q, want 3.0.3", doc.OpenAPI)
	}
	if len(doc.Paths) == 0 {
		t.Fatal("served document has no paths")
	}
}

func TestUIHandler_ServesBrowserPage(t *testing.T) {
	rec := httptest.NewRecorder()
	UIHandler()(rec, httptest.NewRequest(http.MethodGet, "/api-docs", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "/api-docs/openapi.json") {
		t.Fatal("page does not reference the generated document")
	}
}
