package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the careers API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>careers-backend — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document for the public intake and admin endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "careers-backend", "version": "v0.1.0" },
  "paths": {
    "/api/apply": {
      "post": {
        "summary": "Submit a job application (multipart form, optional resumeFile)",
        "responses": { "201": { "description": "application stored" }, "400": { "description": "missing required fields" } }
      }
    },
    "/api/positions": {
      "get": { "summary": "List open positions", "responses": { "200": { "description": "positions" } } },
      "post": { "summary": "Add a position (admin)", "security": [{"bearerAuth": []}], "responses": { "201": { "description": "position added" } } }
    },
    "/api/positions/{id}": {
      "delete": { "summary": "Delete a position (admin)", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "deleted" } } }
    },
    "/api/inquiries": {
      "post": {
        "summary": "Submit a contact inquiry",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","message"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"message":{"type":"string"}}}}}},
        "responses": { "201": { "description": "inquiry stored" }, "400": { "description": "missing required fields" } }
      },
      "get": { "summary": "List inquiries (admin)", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "inquiries" } } }
    },
    "/api/inquiries/mark-as-read": {
      "post": { "summary": "Mark all inquiries as read (admin)", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "marked" } } }
    },
    "/api/inquiries/{id}": {
      "delete": { "summary": "Delete an inquiry (admin)", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "deleted" } } }
    },
    "/api/applications": {
      "get": { "summary": "List applications (admin)", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "applications, newest first" } } }
    },
    "/api/applications/mark-as-read": {
      "post": { "summary": "Mark all applications as read (admin)", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "marked" } } }
    },
    "/api/application/{id}": {
      "get": { "summary": "Fetch one application (admin)", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "application" }, "404": { "description": "not found" } } },
      "put": {
        "summary": "Update whitelisted application fields (admin)",
        "security": [{"bearerAuth": []}],
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"status":{"type":"string"},"notes":{"type":"string"},"rating":{"type":"number"},"interviewStartTime":{"type":"string"},"interviewEndTime":{"type":"string"}}}}}},
        "responses": { "200": { "description": "updated" }, "400": { "description": "no valid fields" }, "404": { "description": "not found" }, "500": { "description": "updated but email failed" } }
      },
      "delete": { "summary": "Delete an application (admin)", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "deleted" } } }
    },
    "/api/analytics/application-trends": {
      "get": { "summary": "7-day application trend report (admin)", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "labels plus datasets" } } }
    },
    "/api/me": {
      "get": { "summary": "Current staff profile or token claims (admin)", "security": [{"bearerAuth": []}], "responses": { "200": { "description": "staff or claims" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  },
  "components": { "securitySchemes": { "bearerAuth": { "type": "http", "scheme": "bearer" } } }
}`
