// Package docs holds the OpenAPI template served under /api/docs.
// Regenerate with swag v2 from the handler annotations when routes change
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/forms": {
            "get": {
                "tags": ["Forms"],
                "summary": "List editable forms",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/domain.FormSummary"}}}}}}
            }
        },
        "/forms/{formType}": {
            "get": {
                "tags": ["Forms"],
                "summary": "Current values of a form",
                "parameters": [{"$ref": "#/components/parameters/formType"}],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Form"}}}},
                    "404": {"description": "unknown form type", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}}
                }
            },
            "patch": {
                "tags": ["Forms"],
                "summary": "Update form fields",
                "parameters": [{"$ref": "#/components/parameters/formType"}],
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.PatchInput"}}}},
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Form"}}}},
                    "400": {"description": "no updates or unknown fields", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}},
                    "404": {"description": "unknown form type", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}}
                }
            }
        },
        "/forms/{formType}/reset": {
            "post": {
                "tags": ["Forms"],
                "summary": "Reset a form to its defaults",
                "parameters": [{"$ref": "#/components/parameters/formType"}],
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Form"}}}}}
            }
        },
        "/forms/{formType}/fields": {
            "get": {
                "tags": ["Forms"],
                "summary": "Field definitions of a form",
                "parameters": [{"$ref": "#/components/parameters/formType"}],
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/domain.FieldInfo"}}}}}}
            }
        },
        "/commands/{formType}/interpret": {
            "post": {
                "tags": ["Commands"],
                "summary": "Interpret a command without applying it",
                "parameters": [{"$ref": "#/components/parameters/formType"}],
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.CommandInput"}}}},
                "responses": {
                    "200": {"description": "recognized or not understood", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Outcome"}}}},
                    "404": {"description": "unknown form type", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}}
                }
            }
        },
        "/commands/{formType}/apply": {
            "post": {
                "tags": ["Commands"],
                "summary": "Interpret a command and update the form",
                "parameters": [{"$ref": "#/components/parameters/formType"}],
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.CommandInput"}}}},
                "responses": {
                    "200": {"description": "applied, or not understood", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.Outcome"}}}},
                    "404": {"description": "unknown form type", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}}
                }
            }
        },
        "/commands/{formType}/explain": {
            "post": {
                "tags": ["Commands"],
                "summary": "Trace how a command is interpreted",
                "parameters": [{"$ref": "#/components/parameters/formType"}],
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.CommandInput"}}}},
                "responses": {"200": {"description": "trace", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/interpret.Trace"}}}}}
            }
        },
        "/commands/{formType}/activity": {
            "get": {
                "tags": ["Commands"],
                "summary": "Applied commands, newest first",
                "parameters": [
                    {"$ref": "#/components/parameters/formType"},
                    {"name": "limit", "in": "query", "description": "Max entries (1-200, default 50)", "schema": {"type": "integer"}}
                ],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/domain.Activity"}}}}},
                    "422": {"description": "bad limit", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/httpkit.Envelope"}}}}
                }
            }
        },
        "/meta/health": {"get": {"tags": ["Meta"], "summary": "Health check", "responses": {"200": {"description": "ok"}}}},
        "/meta/ready": {"get": {"tags": ["Meta"], "summary": "Readiness probe with dependency checks", "responses": {"200": {"description": "ok"}}}},
        "/meta/version": {"get": {"tags": ["Meta"], "summary": "Build and version info", "responses": {"200": {"description": "ok"}}}},
        "/meta/service": {"get": {"tags": ["Meta"], "summary": "Service info and uptime", "responses": {"200": {"description": "ok"}}}},
        "/meta/interpreter": {"get": {"tags": ["Meta"], "summary": "Loaded interpreters and build", "responses": {"200": {"description": "ok"}}}}
    },
    "components": {
        "parameters": {
            "formType": {"name": "formType", "in": "path", "required": true, "description": "Form type", "schema": {"type": "string", "example": "policy"}}
        },
        "schemas": {
            "domain.FormSummary": {
                "type": "object",
                "properties": {
                    "form_type": {"type": "string", "example": "policy"},
                    "title": {"type": "string", "example": "Insurance Policy"},
                    "fields": {"type": "integer", "example": 12}
                }
            },
            "domain.FieldInfo": {
                "type": "object",
                "properties": {
                    "id": {"type": "string", "example": "deductible"},
                    "display_name": {"type": "string", "example": "Deductible"},
                    "aliases": {"type": "array", "items": {"type": "string"}},
                    "type": {"type": "string", "example": "currency"},
                    "options": {"type": "array", "items": {"type": "string"}},
                    "default": {"type": "string", "example": "1000"}
                }
            },
            "domain.Form": {
                "type": "object",
                "properties": {
                    "form_type": {"type": "string", "example": "policy"},
                    "title": {"type": "string", "example": "Insurance Policy"},
                    "values": {"type": "object", "additionalProperties": {"type": "string"}},
                    "updated_at": {"type": "string", "format": "date-time"}
                }
            },
            "domain.PatchInput": {
                "type": "object",
                "properties": {
                    "values": {"type": "object", "additionalProperties": {"type": "string"}}
                }
            },
            "domain.CommandInput": {
                "type": "object",
                "required": ["command"],
                "properties": {
                    "command": {"type": "string", "maxLength": 10000, "example": "change the deductible to $2,000"}
                }
            },
            "domain.Outcome": {
                "type": "object",
                "properties": {
                    "recognized": {"type": "boolean"},
                    "field": {"type": "string", "example": "deductible"},
                    "label": {"type": "string", "example": "Deductible"},
                    "value": {"type": "string", "example": "2000"},
                    "strategy": {"type": "string", "example": "preposition"},
                    "message": {"type": "string", "example": "Updated Deductible to 2000"},
                    "form": {"$ref": "#/components/schemas/domain.Form"}
                }
            },
            "domain.Activity": {
                "type": "object",
                "properties": {
                    "id": {"type": "string", "format": "uuid"},
                    "form_type": {"type": "string", "example": "policy"},
                    "command": {"type": "string", "example": "change the deductible to $2,000"},
                    "field": {"type": "string", "example": "deductible"},
                    "label": {"type": "string", "example": "Deductible"},
                    "value": {"type": "string", "example": "2000"},
                    "created_at": {"type": "string", "format": "date-time"}
                }
            },
            "interpret.Trace": {
                "type": "object",
                "properties": {
                    "command": {"type": "string"},
                    "field": {"type": "string"},
                    "preposition": {"type": "string"},
                    "raw": {"type": "string"},
                    "value": {"type": "string"},
                    "strategy": {"type": "string", "enum": ["preposition", "adjacent", "to"]},
                    "recognized": {"type": "boolean"}
                }
            },
            "httpkit.Envelope": {
                "type": "object",
                "properties": {
                    "status_code": {"type": "integer"},
                    "status": {"type": "string"},
                    "code": {"type": "integer"},
                    "error": {"type": "string"},
                    "request_id": {"type": "string"},
                    "data": {}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "formvoice API",
	Description:      "Voice and text commands for insurance forms",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
