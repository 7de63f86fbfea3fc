// Package docs registers the OpenAPI description served under /swagger/.
//
// Keep the template in step with the @Router annotations in internal/handler.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/evaluate": {
            "post": {
                "tags": ["encounters"],
                "summary": "Judge a found artifact",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.EvaluateRequest"}}],
                "responses": {
                    "200": {"description": "Verdict", "schema": {"$ref": "#/definitions/handler.EvaluateResponse"}},
                    "400": {"description": "Invalid policy or artifact", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/replay": {
            "post": {
                "tags": ["encounters"],
                "summary": "Replay an encounter log line",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.ReplayRequest"}}],
                "responses": {
                    "200": {"description": "Artifact held afterwards", "schema": {"$ref": "#/definitions/handler.ReplayResponse"}},
                    "400": {"description": "Malformed log line", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/trade": {
            "post": {
                "tags": ["encounters"],
                "summary": "Trade held artifacts between two scavengers",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.TradeRequest"}}],
                "responses": {
                    "200": {"description": "Trade result", "schema": {"$ref": "#/definitions/handler.TradeResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Scavenger not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/scavengers": {
            "get": {
                "tags": ["scavengers"],
                "summary": "List scavengers",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Scavengers", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.ScavengerResponse"}}}
                }
            },
            "post": {
                "tags": ["scavengers"],
                "summary": "Register a scavenger",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Registered", "schema": {"$ref": "#/definitions/handler.ScavengerResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Name already taken", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/scavengers/{name}": {
            "get": {
                "tags": ["scavengers"],
                "summary": "Get a scavenger",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "name", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Scavenger", "schema": {"$ref": "#/definitions/handler.ScavengerResponse"}},
                    "404": {"description": "Scavenger not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/scavengers/{name}/explore": {
            "post": {
                "tags": ["encounters"],
                "summary": "Explore an asteroid",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "name", "type": "string", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.ExploreRequest"}}
                ],
                "responses": {
                    "200": {"description": "Explore result", "schema": {"$ref": "#/definitions/handler.ExploreResponse"}},
                    "400": {"description": "Malformed artifact", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Scavenger not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/scavengers/{name}/journal": {
            "get": {
                "tags": ["scavengers"],
                "summary": "Recent encounters, newest first",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "name", "type": "string", "required": true},
                    {"in": "query", "name": "limit", "type": "integer", "required": false}
                ],
                "responses": {
                    "200": {"description": "Journal", "schema": {"$ref": "#/definitions/handler.JournalResponse"}},
                    "400": {"description": "Invalid limit", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.ScavengerResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "policy": {"type": "string"},
            "held": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "handler.RegisterRequest": {"type": "object", "required": ["name", "policy", "held"], "properties": {
            "name": {"type": "string"}, "policy": {"type": "string"}, "held": {"type": "string"}}},
        "handler.ExploreRequest": {"type": "object", "required": ["found"], "properties": {"found": {"type": "string"}}},
        "handler.ExploreResponse": {"type": "object", "properties": {
            "scavenger": {"$ref": "#/definitions/handler.ScavengerResponse"}, "found": {"type": "string"},
            "left_behind": {"type": "string"}, "verdict": {"type": "string"}, "outcome": {"type": "string"}}},
        "handler.TradeRequest": {"type": "object", "required": ["a", "b"], "properties": {"a": {"type": "string"}, "b": {"type": "string"}}},
        "handler.TradeResponse": {"type": "object", "properties": {
            "a": {"$ref": "#/definitions/handler.ScavengerResponse"}, "b": {"$ref": "#/definitions/handler.ScavengerResponse"},
            "verdict_a": {"type": "string"}, "verdict_b": {"type": "string"}, "outcome": {"type": "string"}}},
        "handler.JournalResponse": {"type": "object", "properties": {"entries": {"type": "array", "items": {"type": "object"}}, "text": {"type": "string"}}},
        "handler.EvaluateRequest": {"type": "object", "required": ["policy", "owned", "found"], "properties": {
            "policy": {"type": "string"}, "owned": {"type": "string"}, "found": {"type": "string"}}},
        "handler.EvaluateResponse": {"type": "object", "properties": {"policy": {"type": "string"}, "verdict": {"type": "string"}}},
        "handler.ReplayRequest": {"type": "object", "required": ["line"], "properties": {"line": {"type": "string"}}},
        "handler.ReplayResponse": {"type": "object", "properties": {"held": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Scavenger API",
	Description:      "Scavenger fleet, artifact evaluation and encounter log replay.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
