package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Studio Pay API",
        "description": "Fitness-studio administration: disciplines, payroll periods, payment formulas and covers",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Authentication and session management"},
        {"name": "Disciplinas", "description": "Class discipline catalog"},
        {"name": "Periodos", "description": "Payroll periods"},
        {"name": "Formulas", "description": "Payment formulas per discipline and period"},
        {"name": "Covers", "description": "Cover substitutions and class linkage"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a user or instructor account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate account"}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate a refresh token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid refresh token"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Revoke the current refresh token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current authenticated user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/disciplinas": {
            "get": {
                "tags": ["Disciplinas"],
                "summary": "List disciplines",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Disciplinas"],
                "summary": "Create discipline",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateDisciplinaRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate name"}
                }
            }
        },
        "/periodos": {
            "get": {
                "tags": ["Periodos"],
                "summary": "List payroll periods",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Periodos"],
                "summary": "Create payroll period",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePeriodoRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/periodos/{id}/export": {
            "get": {
                "tags": ["Periodos"],
                "summary": "Export a period payroll summary",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "formato", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "404": {"description": "Period not found"}
                }
            }
        },
        "/formulas": {
            "get": {
                "tags": ["Formulas"],
                "summary": "List formulas with discipline and period details",
                "parameters": [
                    {"name": "periodoId", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Formulas"],
                "summary": "Create formula",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateFormulaRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown discipline or period"}
                }
            }
        },
        "/formulas/{id}": {
            "put": {
                "tags": ["Formulas"],
                "summary": "Update formula parameters",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateFormulaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Formula not found"}
                }
            },
            "delete": {
                "tags": ["Formulas"],
                "summary": "Delete formula",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Formula not found"}
                }
            }
        },
        "/covers": {
            "get": {
                "tags": ["Covers"],
                "summary": "List covers for a period",
                "parameters": [
                    {"name": "periodoId", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/covers/enlazar": {
            "post": {
                "tags": ["Covers"],
                "summary": "Link pending covers to their permanent classes",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnlazarCoversRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        }
    },
    "definitions": {
        "Disciplina": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "descripcion": {"type": "string"},
                "color": {"type": "string"},
                "activo": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "Periodo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "numero": {"type": "integer"},
                "año": {"type": "integer"},
                "fecha_inicio": {"type": "string"},
                "fecha_fin": {"type": "string"},
                "fecha_pago": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "Formula": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "disciplina_id": {"type": "integer"},
                "periodo_id": {"type": "integer"},
                "parametros": {"type": "object"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "Cover": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "periodo_id": {"type": "integer"},
                "clase_id": {"type": "integer"},
                "clase_temp": {"type": "integer"},
                "clase_nombre": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "identifier": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["identifier", "password"]
        },
        "RegisterRequest": {
            "type": "object",
            "properties": {
                "userType": {"type": "string", "enum": ["usuario", "instructor"]},
                "nombre": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "rol": {"type": "string"}
            },
            "required": ["userType", "nombre", "password"]
        },
        "RefreshTokenRequest": {
            "type": "object",
            "properties": {
                "refresh_token": {"type": "string"}
            },
            "required": ["refresh_token"]
        },
        "CreateDisciplinaRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "descripcion": {"type": "string"},
                "color": {"type": "string"},
                "activo": {"type": "boolean"}
            },
            "required": ["nombre"]
        },
        "CreatePeriodoRequest": {
            "type": "object",
            "properties": {
                "numero": {"type": "integer"},
                "año": {"type": "integer"},
                "fechaInicio": {"type": "string"},
                "fechaFin": {"type": "string"},
                "fechaPago": {"type": "string"}
            },
            "required": ["numero", "año", "fechaInicio", "fechaFin", "fechaPago"]
        },
        "CreateFormulaRequest": {
            "type": "object",
            "properties": {
                "disciplinaId": {"type": "integer"},
                "periodoId": {"type": "integer"},
                "parametros": {"type": "object"}
            },
            "required": ["disciplinaId", "periodoId", "parametros"]
        },
        "UpdateFormulaRequest": {
            "type": "object",
            "properties": {
                "parametros": {"type": "object"}
            },
            "required": ["parametros"]
        },
        "EnlazarCoversRequest": {
            "type": "object",
            "properties": {
                "periodoId": {"type": "integer"}
            },
            "required": ["periodoId"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
