package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "PawPal User Service",
        "description": "User and dog profiles for the PawPal dog-walking platform",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Users", "description": "Owner and walker profiles"},
        {"name": "Dogs", "description": "Dog profiles and discovery"},
        {"name": "Stats", "description": "Aggregate statistics"}
    ],
    "paths": {
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "parameters": [
                    {"name": "role", "in": "query", "type": "string", "enum": ["owner", "walker"]},
                    {"name": "location", "in": "query", "type": "string"},
                    {"name": "is_active", "in": "query", "type": "boolean"},
                    {"name": "min_rating", "in": "query", "type": "number"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Users"],
                "summary": "Register user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/users/search": {
            "get": {
                "tags": ["Users"],
                "summary": "Search users",
                "parameters": [
                    {"name": "q", "in": "query", "required": true, "type": "string"},
                    {"name": "role", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/users/walkers": {
            "get": {
                "tags": ["Users"],
                "summary": "List walkers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/users/top-walkers": {
            "get": {
                "tags": ["Users"],
                "summary": "List highest rated walkers",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/users/owners": {
            "get": {
                "tags": ["Users"],
                "summary": "List owners",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/users/email/{email}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user by email",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Users"],
                "summary": "Update user",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found"},
                    "409": {"description": "Email already registered"}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Deactivate user and their dogs",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/users/{id}/hard": {
            "delete": {
                "tags": ["Users"],
                "summary": "Permanently remove user and their dogs",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/users/{id}/dogs": {
            "get": {
                "tags": ["Users"],
                "summary": "List a user's dogs",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/users/{id}/stats": {
            "get": {
                "tags": ["Stats"],
                "summary": "Get a user's dog statistics",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/dogs": {
            "get": {
                "tags": ["Dogs"],
                "summary": "List dogs",
                "parameters": [
                    {"name": "owner_id", "in": "query", "type": "string"},
                    {"name": "size", "in": "query", "type": "string", "enum": ["small", "medium", "large", "extra_large"]},
                    {"name": "breed", "in": "query", "type": "string"},
                    {"name": "energy_level", "in": "query", "type": "string", "enum": ["low", "medium", "high"]},
                    {"name": "friendly_with_dogs", "in": "query", "type": "boolean"},
                    {"name": "friendly_with_children", "in": "query", "type": "boolean"},
                    {"name": "min_age", "in": "query", "type": "integer"},
                    {"name": "max_age", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "tags": ["Dogs"],
                "summary": "Register dog",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateDogRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Owner not found"}
                }
            }
        },
        "/dogs/search": {
            "get": {
                "tags": ["Dogs"],
                "summary": "Search dogs",
                "parameters": [
                    {"name": "q", "in": "query", "required": true, "type": "string"},
                    {"name": "size", "in": "query", "type": "string"},
                    {"name": "energy_level", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/dogs/friendly": {
            "get": {
                "tags": ["Dogs"],
                "summary": "List dogs friendly with other dogs and children",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/dogs/high-energy": {
            "get": {
                "tags": ["Dogs"],
                "summary": "List high-energy dogs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/dogs/senior": {
            "get": {
                "tags": ["Dogs"],
                "summary": "List senior dogs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/dogs/size/{size}": {
            "get": {
                "tags": ["Dogs"],
                "summary": "List dogs of one size",
                "parameters": [
                    {"name": "size", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Unknown size"}
                }
            }
        },
        "/dogs/energy/{level}": {
            "get": {
                "tags": ["Dogs"],
                "summary": "List dogs of one energy level",
                "parameters": [
                    {"name": "level", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Unknown energy level"}
                }
            }
        },
        "/dogs/breed/{breed}": {
            "get": {
                "tags": ["Dogs"],
                "summary": "List dogs of one breed",
                "parameters": [
                    {"name": "breed", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/dogs/owner/{ownerId}": {
            "get": {
                "tags": ["Dogs"],
                "summary": "List the dogs of one owner",
                "parameters": [
                    {"name": "ownerId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/dogs/stats/breeds": {
            "get": {
                "tags": ["Stats"],
                "summary": "Aggregate dogs per breed",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/dogs/stats/sizes": {
            "get": {
                "tags": ["Stats"],
                "summary": "Aggregate dogs per size",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/dogs/{id}": {
            "get": {
                "tags": ["Dogs"],
                "summary": "Get dog",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Dogs"],
                "summary": "Update dog",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateDogRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Dogs"],
                "summary": "Deactivate dog",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/dogs/{id}/hard": {
            "delete": {
                "tags": ["Dogs"],
                "summary": "Permanently remove dog",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/dogs/{id}/owner": {
            "get": {
                "tags": ["Dogs"],
                "summary": "Get the owner of a dog",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not found"}
                }
            }
        }
    },
    "definitions": {
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["owner", "walker"]},
                "phone": {"type": "string"},
                "location": {"type": "string"},
                "profile_image_url": {"type": "string"},
                "bio": {"type": "string"},
                "rating": {"type": "number"},
                "total_reviews": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "is_active": {"type": "boolean"}
            }
        },
        "Dog": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "owner_id": {"type": "string"},
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "integer"},
                "size": {"type": "string", "enum": ["small", "medium", "large", "extra_large"]},
                "temperament": {"type": "string"},
                "special_needs": {"type": "string"},
                "medical_notes": {"type": "string"},
                "profile_image_url": {"type": "string"},
                "is_friendly_with_other_dogs": {"type": "boolean"},
                "is_friendly_with_children": {"type": "boolean"},
                "energy_level": {"type": "string", "enum": ["low", "medium", "high"]},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "is_active": {"type": "boolean"}
            }
        },
        "CreateUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["owner", "walker"]},
                "phone": {"type": "string"},
                "location": {"type": "string"},
                "profile_image_url": {"type": "string"},
                "bio": {"type": "string"}
            },
            "required": ["name", "email", "role"]
        },
        "UpdateUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "phone": {"type": "string"},
                "location": {"type": "string"},
                "profile_image_url": {"type": "string"},
                "bio": {"type": "string"},
                "rating": {"type": "number"},
                "total_reviews": {"type": "integer"}
            }
        },
        "CreateDogRequest": {
            "type": "object",
            "properties": {
                "owner_id": {"type": "string"},
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "integer"},
                "size": {"type": "string", "enum": ["small", "medium", "large", "extra_large"]},
                "temperament": {"type": "string"},
                "special_needs": {"type": "string"},
                "medical_notes": {"type": "string"},
                "profile_image_url": {"type": "string"},
                "is_friendly_with_other_dogs": {"type": "boolean"},
                "is_friendly_with_children": {"type": "boolean"},
                "energy_level": {"type": "string", "enum": ["low", "medium", "high"]}
            },
            "required": ["owner_id", "name", "size"]
        },
        "UpdateDogRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "integer"},
                "size": {"type": "string"},
                "temperament": {"type": "string"},
                "special_needs": {"type": "string"},
                "medical_notes": {"type": "string"},
                "profile_image_url": {"type": "string"},
                "is_friendly_with_other_dogs": {"type": "boolean"},
                "is_friendly_with_children": {"type": "boolean"},
                "energy_level": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "count": {"type": "integer"},
                "query": {"type": "string"},
                "message": {"type": "string"},
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"}
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
