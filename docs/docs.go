// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/v1/auth/token/decode": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Verifies the signature of a token and returns its claims, even when expired. Requires the master token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Token"],
                "summary": "Decode a token",
                "parameters": [
                    {
                        "description": "Token to decode",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.decodeReq"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Resp"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/http.claimsResp"}}}
                            ]
                        }
                    },
                    "400": {"description": "Token decode failed", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "403": {"description": "Invalid master token", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "422": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/v1/auth/token/generate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Issues a signed token. Requires the master token as bearer credential.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Token"],
                "summary": "Generate a token",
                "parameters": [
                    {
                        "description": "Subject and lifetime in hours",
                        "name": "body",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/http.generateReq"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Resp"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/http.generateResp"}}}
                            ]
                        }
                    },
                    "403": {"description": "Invalid master token", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "422": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/v1/auth/token/test": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Grants access when the bearer token is valid and not expired.",
                "produces": ["application/json"],
                "tags": ["Token"],
                "summary": "Test a token",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Resp"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/http.testResp"}}}
                            ]
                        }
                    },
                    "401": {"description": "Invalid token or token has expired", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.claimsResp": {
            "type": "object",
            "properties": {
                "expires_at": {"type": "string", "format": "date-time"},
                "issued_at": {"type": "string", "format": "date-time"},
                "subject": {"type": "string"}
            }
        },
        "http.decodeReq": {
            "type": "object",
            "required": ["token"],
            "properties": {
                "token": {"type": "string"}
            }
        },
        "http.generateReq": {
            "type": "object",
            "properties": {
                "lifetime_hours": {"type": "integer", "maximum": 876000},
                "subject": {"type": "string", "maxLength": 255}
            }
        },
        "http.generateResp": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "http.testResp": {
            "type": "object",
            "properties": {
                "expires_at": {"type": "string", "format": "date-time"},
                "issued_at": {"type": "string", "format": "date-time"},
                "message": {"type": "string"},
                "subject": {"type": "string"}
            }
        },
        "response.ErrorItem": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "errors": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/response.ErrorItem"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer credential: the master token for generate and decode, an issued token for test.",
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Token Service API",
	Description:      "Issues and verifies signed access tokens.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
