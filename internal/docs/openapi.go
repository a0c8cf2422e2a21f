// Package docs builds the service's OpenAPI description from a declarative
// route table and serves it alongside an interactive browser.
package docs

import (
	"encoding/json"
	"net/http"
	"sync"
)

// Document is the subset of OpenAPI 3.0 this service emits.
type Document struct {
	OpenAPI string                           `json:"openapi"`
	Info    Info                             `json:"info"`
	Paths   map[string]map[string]*Operation `json:"paths"`
}

type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// Operation describes one method on one path.
type Operation struct {
	Summary     string              `json:"summary,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses"`
}

type Parameter struct {
	Name     string  `json:"name"`
	In       string  `json:"in"`
	Required bool    `json:"required"`
	Schema   *Schema `json:"schema,omitempty"`
}

type RequestBody struct {
	Required bool                 `json:"required"`
	Content  map[string]MediaType `json:"content"`
}

type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

type MediaType struct {
	Schema  *Schema     `json:"schema,omitempty"`
	Example interface{} `json:"example,omitempty"`
}

type Schema struct {
	Type       string             `json:"type,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Example    interface{}        `json:"example,omitempty"`
}

// Route binds an operation description to its method and path. The table in
// routes.go is the single source the generated document derives from; the
// handlers themselves carry no documentation metadata.
type Route struct {
	Method    string
	Path      string
	Operation *Operation
}

// Build assembles the OpenAPI document from a route table.
func Build(title, description, version string, routes []Route) *Document {
	doc := &Document{
		OpenAPI: "3.0.3",
		Info:    Info{Title: title, Description: description, Version: version},
		Paths:   map[string]map[string]*Operation{},
	}

	for _, rt := range routes {
		ops, ok := doc.Paths[rt.Path]
		if !ok {
			ops = map[string]*Operation{}
			doc.Paths[rt.Path] = ops
		}
		ops[rt.Method] = rt.Operation
	}

	return doc
}

var (
	specOnce sync.Once
	specJSON []byte
)

// SpecHandler serves the generated document. The document is fixed for the
// process lifetime, so it is marshaled once.
func SpecHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		specOnce.Do(func() {
			specJSON, _ = json.Marshal(Build(apiTitle, apiDescription, apiVersion, APIRoutes))
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(specJSON)
	}
}
