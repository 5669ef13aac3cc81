// Package docs registers the OpenAPI description served under /swagger.
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
        "/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Login user",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.LoginRequest"
                        }
                    }
                ]
            }
        },
        "/auth/signup": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Create an account and sign in",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SignupRequest"
                        }
                    }
                ]
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Refresh access token",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.RefreshRequest"
                        }
                    }
                ]
            }
        },
        "/auth/logout": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Logout user",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/me": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Current account",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/me/saved": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Saved properties of the current account",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/me/saved/{id}": {
            "put": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Save a property",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Property ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Remove a saved property",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Property ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/dashboard": {
            "get": {
                "tags": [
                    "dashboard"
                ],
                "summary": "Role-specific dashboard",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/properties": {
            "get": {
                "tags": [
                    "properties"
                ],
                "summary": "Search properties",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Title contains",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Area contains",
                        "name": "location",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "for-sale, for-rent or all",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Minimum bedrooms",
                        "name": "bedrooms",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "",
                        "name": "priceMin",
                        "in": "query"
                    },
                    {
                        "type": "number",
                        "description": "",
                        "name": "priceMax",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "newest, price-low, price-high or relevance",
                        "name": "sort",
                        "in": "query"
                    }
                ]
            }
        },
        "/properties/featured": {
            "get": {
                "tags": [
                    "properties"
                ],
                "summary": "Featured properties",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/properties/{id}": {
            "get": {
                "tags": [
                    "properties"
                ],
                "summary": "Get property",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Property ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/agents": {
            "get": {
                "tags": [
                    "agents"
                ],
                "summary": "Search agents",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Name or company contains",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "",
                        "name": "specialty",
                        "in": "query"
                    }
                ]
            }
        },
        "/agents/specialties": {
            "get": {
                "tags": [
                    "agents"
                ],
                "summary": "Distinct agent specialties",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/agents/{id}": {
            "get": {
                "tags": [
                    "agents"
                ],
                "summary": "Get agent",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Agent ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/insights": {
            "get": {
                "tags": [
                    "insights"
                ],
                "summary": "Market insights for every area",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/insights/{area}": {
            "get": {
                "tags": [
                    "insights"
                ],
                "summary": "Market insight for one area",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Area name",
                        "name": "area",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/tools/mortgage": {
            "post": {
                "tags": [
                    "tools"
                ],
                "summary": "Mortgage repayment",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/calculator.MortgageInput"
                        }
                    }
                ]
            }
        },
        "/tools/affordability": {
            "post": {
                "tags": [
                    "tools"
                ],
                "summary": "How much house an income supports",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/calculator.AffordabilityInput"
                        }
                    }
                ]
            }
        },
        "/tools/rent": {
            "post": {
                "tags": [
                    "tools"
                ],
                "summary": "Rent budget",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/calculator.RentInput"
                        }
                    }
                ]
            }
        },
        "/tools/roi": {
            "post": {
                "tags": [
                    "tools"
                ],
                "summary": "Buy-to-let return on investment",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "request",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/calculator.ROIInput"
                        }
                    }
                ]
            }
        },
        "/admin/accounts": {
            "get": {
                "tags": [
                    "admin"
                ],
                "summary": "List accounts",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/seed": {
            "post": {
                "tags": [
                    "admin"
                ],
                "summary": "Restore the demo accounts",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "handler.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "handler.SignupRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "handler.RefreshRequest": {
            "type": "object",
            "properties": {
                "refresh_token": {
                    "type": "string"
                }
            }
        },
        "calculator.MortgageInput": {
            "type": "object",
            "properties": {
                "price": {
                    "type": "string"
                },
                "downPayment": {
                    "type": "string"
                },
                "interestRate": {
                    "type": "string"
                },
                "termYears": {
                    "type": "string"
                }
            }
        },
        "calculator.AffordabilityInput": {
            "type": "object",
            "properties": {
                "annualIncome": {
                    "type": "string"
                },
                "monthlyDebts": {
                    "type": "string"
                },
                "downPayment": {
                    "type": "string"
                },
                "interestRate": {
                    "type": "string"
                },
                "termYears": {
                    "type": "string"
                }
            }
        },
        "calculator.RentInput": {
            "type": "object",
            "properties": {
                "monthlyIncome": {
                    "type": "string"
                },
                "otherExpenses": {
                    "type": "string"
                },
                "rentPercent": {
                    "type": "string"
                }
            }
        },
        "calculator.ROIInput": {
            "type": "object",
            "properties": {
                "purchasePrice": {
                    "type": "string"
                },
                "downPayment": {
                    "type": "string"
                },
                "monthlyRent": {
                    "type": "string"
                },
                "monthlyExpenses": {
                    "type": "string"
                },
                "annualAppreciation": {
                    "type": "string"
                },
                "holdingYears": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "KenyaReal API",
	Description:      "Property listings, agent directory, market insights, financial calculators and session-based authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
