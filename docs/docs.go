// Package docs registers the OpenAPI specification served by the Swagger UI
// route. Regenerate with `swag init -g cmd/server/main.go` after changing
// handler annotations.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and the JWT."
        }
    },
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["Auth"],
                "operationId": "signup",
                "summary": "Register a new account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Email or username taken", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "operationId": "login",
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/habits": {
            "get": {
                "tags": ["Habits"],
                "operationId": "listHabits",
                "summary": "List habits",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ListHabitsResponse"}},
                    "304": {"description": "Not Modified"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["Habits"],
                "operationId": "createHabit",
                "summary": "Create a habit",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateHabitRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Partner not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/habits/{id}": {
            "get": {
                "tags": ["Habits"],
                "operationId": "getHabit",
                "summary": "Get one habit",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "format": "uuid", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.HabitDetail"}},
                    "404": {"description": "Habit not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["Habits"],
                "operationId": "updateHabit",
                "summary": "Edit a habit",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "format": "uuid", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateHabitRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Habit not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Habits"],
                "operationId": "deleteHabit",
                "summary": "Delete a habit",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "format": "uuid", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Habit not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/habits/{id}/log": {
            "post": {
                "tags": ["Habits"],
                "operationId": "logHabit",
                "summary": "Log today's completion",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "format": "uuid", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.LogResult"}},
                    "404": {"description": "Habit not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Already logged today", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Corrupt recurrence rule or internal error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/habits/{id}/partner": {
            "post": {
                "tags": ["Partners"],
                "operationId": "invitePartner",
                "summary": "Attach an accountability partner",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "format": "uuid", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.PartnerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "404": {"description": "Habit or partner not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Partners"],
                "operationId": "removePartner",
                "summary": "Detach the accountability partner",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "format": "uuid", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "404": {"description": "Habit not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/partner-habits": {
            "get": {
                "tags": ["Partners"],
                "operationId": "listPartnerHabits",
                "summary": "List watched habits",
                "produces": ["application/json"],
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ListPartnerHabitsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Habit": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "name": {"type": "string"},
                "frequency_label": {"type": "string", "enum": ["daily", "weekly", "weekdays", "weekends", "custom"]},
                "frequency": {"type": "array", "items": {"type": "string"}},
                "streak": {"type": "integer"},
                "last_logged": {"type": "string", "format": "date-time"},
                "partner_id": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "domain.HabitLog": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "habit_id": {"type": "string"},
                "logged_at": {"type": "string", "format": "date-time"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "username": {"type": "string"},
                "name": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "handlers.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.User"}
            }
        },
        "handlers.SignupRequest": {
            "type": "object",
            "required": ["email", "username", "password", "name"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "username": {"type": "string", "example": "alice"},
                "password": {"type": "string", "example": "s3cret!"},
                "name": {"type": "string", "example": "Alice"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "password": {"type": "string", "example": "s3cret!"}
            }
        },
        "handlers.CreateHabitRequest": {
            "type": "object",
            "required": ["name", "frequency_label"],
            "properties": {
                "name": {"type": "string", "example": "Morning run"},
                "frequency_label": {"type": "string", "example": "custom"},
                "frequency": {"type": "array", "items": {"type": "string"}, "example": ["Monday", "Wednesday", "Friday"]},
                "partner_username": {"type": "string", "example": "buddy"}
            }
        },
        "handlers.UpdateHabitRequest": {
            "type": "object",
            "required": ["name", "frequency_label"],
            "properties": {
                "name": {"type": "string", "example": "Evening run"},
                "frequency_label": {"type": "string", "example": "weekdays"},
                "frequency": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handlers.PartnerRequest": {
            "type": "object",
            "required": ["username"],
            "properties": {
                "username": {"type": "string", "example": "buddy"}
            }
        },
        "handlers.ListHabitsResponse": {
            "type": "object",
            "properties": {
                "habits": {"type": "array", "items": {"$ref": "#/definitions/domain.Habit"}}
            }
        },
        "handlers.ListPartnerHabitsResponse": {
            "type": "object",
            "properties": {
                "habits": {"type": "array", "items": {"$ref": "#/definitions/services.HabitDetail"}}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "code": {"type": "string", "example": "not_found"},
                "message": {"type": "string", "example": "habit not found"}
            }
        },
        "services.HabitDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "name": {"type": "string"},
                "frequency_label": {"type": "string"},
                "frequency": {"type": "array", "items": {"type": "string"}},
                "streak": {"type": "integer"},
                "last_logged": {"type": "string", "format": "date-time"},
                "partner_id": {"type": "string"},
                "partner_username": {"type": "string"},
                "owner_username": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "services.LogResult": {
            "type": "object",
            "properties": {
                "streak": {"type": "integer"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/domain.HabitLog"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "HabitSync API",
	Description:      "Habit tracking backend with streaks and accountability partners.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
