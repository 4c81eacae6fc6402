// Package docs holds the OpenAPI document served at /swagger. Keep it in
// sync with the @ annotations on the handlers.
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
        "/courses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List all courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/course_enrollment.CourseSummary"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}}
                }
            }
        },
        "/enroll": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["enrollments"],
                "summary": "Enroll a user into a course",
                "parameters": [
                    {"description": "user and course ids", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.enrollRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/course_enrollment.EnrollmentConfirmation"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}}
                }
            }
        },
        "/enrollments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["enrollments"],
                "summary": "List a user's enrollments",
                "parameters": [
                    {"type": "integer", "description": "user id", "name": "user_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/course_enrollment.EnrollmentView"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/course_enrollment.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Unknown usernames and wrong passwords produce the same 401 body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/course_enrollment.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}}
                }
            }
        },
        "/my_courses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List the caller's courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/course_enrollment.CourseSummary"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/course_enrollment.UserSummary"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/course_enrollment.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "course_enrollment.CourseSummary": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Go basics"},
                "price": {"type": "integer", "example": 100}
            }
        },
        "course_enrollment.EnrollmentConfirmation": {
            "type": "object",
            "properties": {
                "enrollment_id": {"type": "integer", "example": 1},
                "message": {"type": "string", "example": "enrollment successful"}
            }
        },
        "course_enrollment.EnrollmentView": {
            "type": "object",
            "properties": {
                "course_description": {"type": "string"},
                "course_id": {"type": "integer"},
                "course_name": {"type": "string"},
                "course_price": {"type": "integer"},
                "enrollment_date": {"type": "string"}
            }
        },
        "course_enrollment.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "unauthorized"},
                "error": {"type": "string", "example": "invalid credentials"}
            }
        },
        "course_enrollment.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"}
            }
        },
        "course_enrollment.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "expires_in": {"type": "integer", "example": 900},
                "token_type": {"type": "string", "example": "bearer"}
            }
        },
        "course_enrollment.UserSummary": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string", "example": "a@x.com"},
                "id": {"type": "integer", "example": 1},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handlers.enrollRequest": {
            "type": "object",
            "required": ["course_id", "user_id"],
            "properties": {
                "course_id": {"type": "integer", "example": 1},
                "user_id": {"type": "integer", "example": 1}
            }
        },
        "handlers.loginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "example": "pw123"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "handlers.registerRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string", "example": "a@x.com"},
                "password": {"type": "string", "example": "pw123"},
                "username": {"type": "string", "example": "alice"}
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
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Course Enrollment API",
	Description:      "Registration, login and course enrollment tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
