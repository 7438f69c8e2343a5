package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Incident Desk API",
    "description": "Ticket triage: KB suggestions, duplicate detection and ticket analysis",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/healthz": {"get": {"tags": ["health"], "summary": "Store health", "responses": {"200": {"description": "OK"}}}},
    "/api/kb-suggestions": {
      "get": {"tags": ["kb"], "summary": "KB suggestion capabilities", "responses": {"200": {"description": "OK"}}},
      "post": {"tags": ["kb"], "summary": "Suggest KB articles for a ticket", "responses": {"200": {"description": "OK"}, "400": {"description": "Missing required fields"}}}
    },
    "/api/similarity-check": {
      "get": {"tags": ["similarity"], "summary": "Similarity check capabilities", "responses": {"200": {"description": "OK"}}},
      "post": {"tags": ["similarity"], "summary": "Detect duplicates and clusters for a new ticket", "responses": {"200": {"description": "OK"}, "400": {"description": "Missing required fields"}}}
    },
    "/api/analyze-ticket": {
      "get": {"tags": ["analysis"], "summary": "Ticket analysis capabilities", "responses": {"200": {"description": "OK"}}},
      "post": {"tags": ["analysis"], "summary": "Classify a ticket", "responses": {"200": {"description": "OK"}, "400": {"description": "Missing required fields"}}}
    },
    "/api/tickets": {
      "get": {"tags": ["tickets"], "summary": "List tickets", "responses": {"200": {"description": "OK"}}},
      "post": {"tags": ["tickets"], "summary": "Create a ticket", "responses": {"200": {"description": "OK"}, "400": {"description": "Validation failed"}}}
    },
    "/api/tickets/{id}": {
      "get": {"tags": ["tickets"], "summary": "Get a ticket", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
      "put": {"tags": ["tickets"], "summary": "Update a ticket", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid admin key"}, "404": {"description": "Not found"}}}
    },
    "/api/analytics": {"get": {"tags": ["analytics"], "summary": "Ticket analytics", "responses": {"200": {"description": "OK"}}}}
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
