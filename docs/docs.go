// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service health",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/price-calculators/{kind}/calculator/estimate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculators"],
                "summary": "Compute an estimate without storing it",
                "parameters": [
                    {"type": "string", "enum": ["home", "kitchen", "wardrobe"], "name": "kind", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Estimate"},
                    "400": {"description": "Malformed JSON"},
                    "404": {"description": "Unknown calculator"},
                    "422": {"description": "Invalid input", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/api/price-calculators/{kind}/calculator/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculators"],
                "summary": "Submit a lead; the price is recomputed on the server",
                "parameters": [
                    {"type": "string", "enum": ["home", "kitchen", "wardrobe"], "name": "kind", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Stored"},
                    "400": {"description": "Invalid contact details", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Invalid estimate input", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "500": {"description": "Failed to save, try again"}
                }
            }
        },
        "/api/price-calculators/{kind}/calculator/estimates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculators"],
                "summary": "List stored leads newest first",
                "parameters": [
                    {"type": "string", "enum": ["home", "kitchen", "wardrobe"], "name": "kind", "in": "path", "required": true},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "Page of estimates"}}
            }
        },
        "/api/price-calculators/{kind}/calculator/estimates/export": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["calculators"],
                "summary": "Export a page of leads as xlsx",
                "parameters": [
                    {"type": "string", "enum": ["home", "kitchen", "wardrobe"], "name": "kind", "in": "path", "required": true},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "Workbook"}}
            }
        },
        "/api/design/categories": {
            "get": {"produces": ["application/json"], "tags": ["catalog"], "summary": "Design categories", "responses": {"200": {"description": "Categories"}}}
        },
        "/api/design/{categoryId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Designs in a category",
                "parameters": [{"type": "string", "name": "categoryId", "in": "path", "required": true}],
                "responses": {"200": {"description": "Designs"}, "404": {"description": "No designs found"}}
            }
        },
        "/api/design/{categoryId}/{designSlug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Design details",
                "parameters": [
                    {"type": "string", "name": "categoryId", "in": "path", "required": true},
                    {"type": "string", "name": "designSlug", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "Design"}, "404": {"description": "Design not found"}}
            }
        },
        "/api/projects/delivered": {
            "get": {"produces": ["application/json"], "tags": ["catalog"], "summary": "Delivered projects", "responses": {"200": {"description": "Projects"}, "404": {"description": "None delivered"}}}
        },
        "/api/projects/delivered/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Delivered project details",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "Project"}, "404": {"description": "Not found"}}
            }
        },
        "/api/contact": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Contact form",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "Received"}, "400": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        }
    },
    "definitions": {
        "pkg.FieldError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "message": {"type": "string"}}
        },
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "code": {"type": "string"},
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/pkg.FieldError"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Kalakruti Interiors API",
	Description:      "Interior design price calculators, lead capture and catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
