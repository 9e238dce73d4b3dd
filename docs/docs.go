// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with `swag init -g internal/api/router.go` after changing the
// handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/health": {"get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/health/ready": {"get": {"tags": ["health"], "summary": "Readiness probe", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/v1/timers": {"post": {"tags": ["timers"], "summary": "Create a timer", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/v1/timers/ticks": {"post": {"tags": ["timers"], "summary": "Queue timer ticks", "security": [{"BearerAuth": []}], "responses": {"202": {"description": "Accepted"}, "200": {"description": "Duplicate tick id"}}}},
        "/v1/timers/{id}": {
            "get": {"tags": ["timers"], "summary": "Get a timer", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["timers"], "summary": "Partially update a timer", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}},
            "delete": {"tags": ["timers"], "summary": "Delete a timer", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/timers/{id}/start": {"post": {"tags": ["timers"], "summary": "Start a timer", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/timers/{id}/stop": {"post": {"tags": ["timers"], "summary": "Stop a timer", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/timers/{id}/decrement": {"post": {"tags": ["timers"], "summary": "Decrement a timer by one interval", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/timers/{id}/reset": {"post": {"tags": ["timers"], "summary": "Reset a timer to its full duration", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/timers/{id}/alerts": {
            "get": {"tags": ["alerts"], "summary": "List a timer's alerts", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["alerts"], "summary": "Create an alert on a timer", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/v1/alerts/{id}": {
            "get": {"tags": ["alerts"], "summary": "Get an alert", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["alerts"], "summary": "Partially update an alert", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["alerts"], "summary": "Delete an alert", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/alerts/{id}/activate": {"post": {"tags": ["alerts"], "summary": "Activate an alert", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}}},
        "/v1/alerts/{id}/deactivate": {"post": {"tags": ["alerts"], "summary": "Deactivate an alert", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/users/{userId}": {
            "get": {"tags": ["users"], "summary": "Get a user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "patch": {"tags": ["users"], "summary": "Partially update a user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}},
            "delete": {"tags": ["users"], "summary": "Delete a user", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/users/{userId}/password": {"post": {"tags": ["users"], "summary": "Change a user's password", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/v1/users/{userId}/timers": {"get": {"tags": ["timers"], "summary": "List a user's timers", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/users/{userId}/inventories": {"get": {"tags": ["inventories"], "summary": "List a user's inventories", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/users/{userId}/settings": {"get": {"tags": ["settings"], "summary": "List a user's settings", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/v1/inventories": {"post": {"tags": ["inventories"], "summary": "Create an inventory", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/v1/inventories/{id}": {
            "get": {"tags": ["inventories"], "summary": "Get an inventory", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["inventories"], "summary": "Partially update an inventory", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"tags": ["inventories"], "summary": "Delete an inventory", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/inventories/{id}/items": {
            "get": {"tags": ["items"], "summary": "List an inventory's items", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["items"], "summary": "Add an item to an inventory", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/v1/items/{id}": {
            "get": {"tags": ["items"], "summary": "Get an inventory item", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["items"], "summary": "Partially update an inventory item", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["items"], "summary": "Delete an inventory item", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/settings": {"post": {"tags": ["settings"], "summary": "Create a setting", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/v1/settings/{id}": {
            "get": {"tags": ["settings"], "summary": "Get a setting", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["settings"], "summary": "Partially update a setting", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}},
            "delete": {"tags": ["settings"], "summary": "Delete a setting", "security": [{"BearerAuth": []}], "responses": {"204": {"description": "No Content"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "timerkit API",
	Description:      "Kitchen timers, timer alerts, inventories and user settings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
