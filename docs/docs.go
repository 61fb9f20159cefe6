// Package docs registra el documento swagger 2.0 del API (mismo formato que produce swag init)
// y lo sirve el handler /swagger/* del router.
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
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/login": {
            "post": {
                "tags": [
                    "session"
                ],
                "summary": "Login simulado",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "303": {
                        "description": "redirect a /pets",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/organizations": {
            "get": {
                "tags": [
                    "organizations"
                ],
                "summary": "Listar organizaciones",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/organizations.organizationResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/organizations/{slug}": {
            "get": {
                "tags": [
                    "organizations"
                ],
                "summary": "Obtener organización por slug",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/organizations.organizationResponse"
                        }
                    },
                    "404": {
                        "description": "organization not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Slug de la organización",
                        "name": "slug",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/owners": {
            "get": {
                "tags": [
                    "owners"
                ],
                "summary": "Listar dueños",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/owners.ownerResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto de búsqueda",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Slug de organización",
                        "name": "organization",
                        "in": "query"
                    }
                ]
            }
        },
        "/owners/export.xlsx": {
            "get": {
                "tags": [
                    "owners"
                ],
                "summary": "Exportar dueños a Excel",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto de búsqueda",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Slug de organización",
                        "name": "organization",
                        "in": "query"
                    }
                ]
            }
        },
        "/owners/new": {
            "get": {
                "tags": [
                    "registration"
                ],
                "summary": "Paso de edición (owners)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/wizard.editResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "registration"
                ],
                "summary": "Enviar edición (owners)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "303": {
                        "description": "redirect a verify",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "invalid json / unknown field",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "422": {
                        "description": "required fields missing",
                        "schema": {
                            "$ref": "#/definitions/wizard.missingResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "description": "Campos del draft: texto, lista de textos, booleano o null",
                        "name": "payload",
                        "in": "body",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ]
            }
        },
        "/owners/new/verify": {
            "get": {
                "tags": [
                    "registration"
                ],
                "summary": "Paso de verificación (owners)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/wizard.verifyResponse"
                        }
                    }
                }
            }
        },
        "/owners/new/verify/confirm": {
            "post": {
                "tags": [
                    "registration"
                ],
                "summary": "Confirmar draft (owners)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "303": {
                        "description": "redirect al detalle con el id emitido",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/owners/new/verify/edit": {
            "post": {
                "tags": [
                    "registration"
                ],
                "summary": "Volver a edición (owners)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "303": {
                        "description": "redirect a edit",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/owners/{id}": {
            "get": {
                "tags": [
                    "owners"
                ],
                "summary": "Obtener dueño o draft confirmado",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/owners.ownerResponse"
                        }
                    },
                    "404": {
                        "description": "owner not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID numérico o id emitido al confirmar",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/owners/{id}/pets": {
            "get": {
                "tags": [
                    "pets"
                ],
                "summary": "Listar mascotas de un dueño",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/pets.petResponse"
                            }
                        }
                    },
                    "404": {
                        "description": "owner not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del dueño",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/pets": {
            "get": {
                "tags": [
                    "pets"
                ],
                "summary": "Listar mascotas",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/pets.petResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "ownerId must be a number",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto de búsqueda (nombre, raza, microchip)",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Slug de organización",
                        "name": "organization",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Especie",
                        "name": "type",
                        "in": "query",
                        "enum": [
                            "dog",
                            "cat",
                            "bird",
                            "rabbit",
                            "other"
                        ]
                    },
                    {
                        "type": "integer",
                        "description": "ID del dueño",
                        "name": "ownerId",
                        "in": "query"
                    }
                ]
            }
        },
        "/pets/export.xlsx": {
            "get": {
                "tags": [
                    "pets"
                ],
                "summary": "Exportar mascotas a Excel",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "ownerId must be a number",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto de búsqueda (nombre, raza, microchip)",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Slug de organización",
                        "name": "organization",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Especie",
                        "name": "type",
                        "in": "query",
                        "enum": [
                            "dog",
                            "cat",
                            "bird",
                            "rabbit",
                            "other"
                        ]
                    },
                    {
                        "type": "integer",
                        "description": "ID del dueño",
                        "name": "ownerId",
                        "in": "query"
                    }
                ]
            }
        },
        "/pets/new": {
            "get": {
                "tags": [
                    "registration"
                ],
                "summary": "Paso de edición (pets)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/wizard.editResponse"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "registration"
                ],
                "summary": "Enviar edición (pets)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "303": {
                        "description": "redirect a verify",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "invalid json / unknown field",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "422": {
                        "description": "required fields missing",
                        "schema": {
                            "$ref": "#/definitions/wizard.missingResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "description": "Campos del draft: texto, lista de textos, booleano o null",
                        "name": "payload",
                        "in": "body",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "consumes": [
                    "application/json",
                    "application/x-www-form-urlencoded"
                ]
            }
        },
        "/pets/new/verify": {
            "get": {
                "tags": [
                    "registration"
                ],
                "summary": "Paso de verificación (pets)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/wizard.verifyResponse"
                        }
                    }
                }
            }
        },
        "/pets/new/verify/confirm": {
            "post": {
                "tags": [
                    "registration"
                ],
                "summary": "Confirmar draft (pets)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "303": {
                        "description": "redirect al detalle con el id emitido",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/pets/new/verify/edit": {
            "post": {
                "tags": [
                    "registration"
                ],
                "summary": "Volver a edición (pets)",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "303": {
                        "description": "redirect a edit",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/pets/{id}": {
            "get": {
                "tags": [
                    "pets"
                ],
                "summary": "Obtener mascota o draft confirmado",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.petResponse"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID numérico o id emitido al confirmar",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        }
    },
    "definitions": {
        "organizations.organizationResponse": {
            "type": "object",
            "properties": {
                "slug": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "badge": {
                    "$ref": "#/definitions/organizations.Badge"
                }
            }
        },
        "organizations.Badge": {
            "type": "object",
            "properties": {
                "initials": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "owners.ownerResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "type": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phones": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "organization": {
                    "type": "string"
                },
                "preferred_contact": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "sex": {
                    "type": "string"
                },
                "birth_date": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "microchip": {
                    "type": "string"
                },
                "weight_kg": {
                    "type": "number"
                },
                "owner_id": {
                    "type": "integer"
                },
                "organization": {
                    "type": "string"
                },
                "allergies": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "neutered": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "wizard.editResponse": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "step": {
                    "type": "string"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "name": {
                                "type": "string"
                            },
                            "kind": {
                                "type": "string"
                            },
                            "required": {
                                "type": "boolean"
                            }
                        }
                    }
                },
                "draft": {
                    "type": "object"
                },
                "submit": {
                    "type": "string"
                }
            }
        },
        "wizard.verifyResponse": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "step": {
                    "type": "string"
                },
                "draft": {
                    "type": "object"
                },
                "view": {
                    "type": "object"
                },
                "edit": {
                    "type": "string"
                },
                "confirm": {
                    "type": "string"
                }
            }
        },
        "wizard.missingResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "missing": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "VetDesk API",
	Description:      "Listados de la práctica veterinaria y wizards de alta (edit -> verify -> confirm).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
