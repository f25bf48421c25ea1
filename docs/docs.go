// Package docs registers the OpenAPI document served under /swagger.
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
        "/api/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SignUpRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "description": "Sets the session cookie on success.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Log out",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Message"}}}
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current session",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Me"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            }
        },
        "/api/users/{username}/role": {
            "put": {
                "tags": ["users"],
                "summary": "Grant or revoke the admin role",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "username", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RoleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            }
        },
        "/api/scores": {
            "get": {
                "tags": ["scores"],
                "summary": "List house scores",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Score"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            },
            "post": {
                "tags": ["scores"],
                "summary": "Set a house score",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ScoreUpdateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            }
        },
        "/api/events": {
            "get": {
                "tags": ["events"],
                "summary": "List events",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Event"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            },
            "post": {
                "tags": ["events"],
                "summary": "Create an event",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EventRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            },
            "put": {
                "tags": ["events"],
                "summary": "Replace an event",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EventRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            }
        },
        "/api/events/{id}": {
            "delete": {
                "tags": ["events"],
                "summary": "Delete an event",
                "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            }
        },
        "/ws/scores": {
            "get": {
                "tags": ["scores"],
                "summary": "Live score feed",
                "description": "Upgrades to a WebSocket and pushes {type:\"scores\",data:[...]} immediately and then every interval.",
                "parameters": [
                    {"in": "query", "name": "interval", "type": "string", "description": "push interval, e.g. 2s"},
                    {"in": "query", "name": "interval_ms", "type": "integer", "description": "push interval in milliseconds"}
                ],
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Health check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "handlers.Message": {"type": "object", "properties": {"message": {"type": "string"}}},
        "handlers.LoginResponse": {"type": "object", "properties": {"message": {"type": "string"}, "role": {"type": "string"}}},
        "handlers.Me": {"type": "object", "properties": {"username": {"type": "string"}, "role": {"type": "string"}}},
        "handlers.SignUpRequest": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}, "role": {"type": "string"}}},
        "handlers.LoginRequest": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "handlers.RoleRequest": {"type": "object", "properties": {"role": {"type": "string", "enum": ["admin", "user"]}}},
        "handlers.ScoreUpdateRequest": {"type": "object", "properties": {"house": {"type": "string"}, "score": {"type": "integer"}}},
        "handlers.EventRequest": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "date": {"type": "string"}, "description": {"type": "string"}}},
        "models.Score": {"type": "object", "properties": {"id": {"type": "integer"}, "house": {"type": "string"}, "score": {"type": "integer"}}},
        "models.Event": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "date": {"type": "string"}, "description": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "House Scoreboard API",
	Description:      "Scores and events of the inter-house sports meet.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
