// Package docs holds the OpenAPI description served under /swagger.
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
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Registration form", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.validationResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.validationResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/healthentries": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["healthentries"],
                "summary": "List own health entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.HealthEntry"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["healthentries"],
                "summary": "Submit a health entry",
                "parameters": [
                    {"type": "string", "description": "Client retry key", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Metrics, each 1-5", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.metricsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Replayed", "schema": {"$ref": "#/definitions/domain.HealthEntry"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.HealthEntry"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.validationResponse"}}
                }
            }
        },
        "/api/healthentries/stats/daily": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["healthentries"],
                "summary": "Daily workplace stats",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.DailyStats"}}},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/healthentries/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["healthentries"],
                "summary": "Get a health entry",
                "parameters": [{"type": "integer", "description": "Entry ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.HealthEntry"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["healthentries"],
                "summary": "Update a health entry",
                "parameters": [
                    {"type": "integer", "description": "Entry ID", "name": "id", "in": "path", "required": true},
                    {"description": "Metrics, each 1-5", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.metricsRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["healthentries"],
                "summary": "Delete a health entry",
                "parameters": [{"type": "integer", "description": "Entry ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/workplaces": {
            "get": {
                "produces": ["application/json"],
                "tags": ["workplaces"],
                "summary": "List workplaces",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Workplace"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["workplaces"],
                "summary": "Create a workplace",
                "parameters": [{"description": "Workplace", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.workplaceRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Workplace"}},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/api/workplaces/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["workplaces"],
                "summary": "Get a workplace",
                "parameters": [{"type": "integer", "description": "Workplace ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Workplace"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["workplaces"],
                "summary": "Rename a workplace",
                "parameters": [
                    {"type": "integer", "description": "Workplace ID", "name": "id", "in": "path", "required": true},
                    {"description": "Workplace", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.workplaceRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["workplaces"],
                "summary": "Delete a workplace",
                "parameters": [{"type": "integer", "description": "Workplace ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/api/users/{id}/roles": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["users"],
                "summary": "Grant a role",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Role", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.grantRoleRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "domain.DailyStats": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "average_mood": {"type": "number"},
                "average_sleep": {"type": "number"},
                "average_stress": {"type": "number"},
                "average_activity": {"type": "number"},
                "average_nutrition": {"type": "number"},
                "entry_count": {"type": "integer"}
            }
        },
        "domain.HealthEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "date": {"type": "string"},
                "mood": {"type": "integer"},
                "sleep": {"type": "integer"},
                "stress": {"type": "integer"},
                "activity": {"type": "integer"},
                "nutrition": {"type": "integer"}
            }
        },
        "domain.Profile": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "workplace_id": {"type": "integer"},
                "roles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.Workplace": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "handler.grantRoleRequest": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "role": {"type": "string", "enum": ["admin", "manager", "user"]}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "username": {"type": "string"},
                "roles": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.metricsRequest": {
            "type": "object",
            "properties": {
                "mood": {"type": "integer", "minimum": 1, "maximum": 5},
                "sleep": {"type": "integer", "minimum": 1, "maximum": 5},
                "stress": {"type": "integer", "minimum": 1, "maximum": 5},
                "activity": {"type": "integer", "minimum": 1, "maximum": 5},
                "nutrition": {"type": "integer", "minimum": 1, "maximum": 5}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["username"],
            "properties": {
                "username": {"type": "string", "maxLength": 100},
                "password": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "workplace_id": {"type": "integer"}
            }
        },
        "handler.validationResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "reasons": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.workplaceRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 200}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PulsePoint API",
	Description:      "Daily wellness check-ins with workplace aggregates for managers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
