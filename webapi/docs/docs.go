// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {"name": "MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/currencies": {
            "get": {"tags": ["currencies"], "summary": "List supported currencies", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/currencies/{country}": {
            "get": {"tags": ["currencies"], "summary": "Get currency by country code", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "country", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/corridors": {
            "get": {"tags": ["currencies"], "summary": "List featured corridors", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/payment-methods": {
            "get": {"tags": ["currencies"], "summary": "List payment methods", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/exchange-rates": {
            "get": {"tags": ["exchange-rates"], "summary": "List exchange rates", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/exchange-rates/{from}/{to}": {
            "get": {"tags": ["exchange-rates"], "summary": "Get exchange rate", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "from", "in": "path", "required": true},
                    {"type": "string", "name": "to", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/exchange-rates/{id}": {
            "put": {"tags": ["exchange-rates"], "summary": "Update exchange rate", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"type": "object", "properties": {"rate": {"type": "string"}}}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/quote": {
            "get": {"tags": ["exchange-rates"], "summary": "Quote a transfer", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "from", "in": "query", "required": true},
                    {"type": "string", "name": "to", "in": "query", "required": true},
                    {"type": "string", "name": "amount", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/api/users": {
            "post": {"tags": ["users"], "summary": "Create a new user", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/api/users/{id}": {
            "get": {"tags": ["users"], "summary": "Get user by ID", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/users/{id}/transfers": {
            "get": {"tags": ["users"], "summary": "List a user's transfers", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/receivers": {
            "post": {"tags": ["receivers"], "summary": "Register a receiving account", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/transfers": {
            "post": {"tags": ["transfers"], "summary": "Create transfer", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}
        },
        "/api/transfers/{id}": {
            "get": {"tags": ["transfers"], "summary": "Get transfer", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/transfers/transaction/{transactionId}": {
            "get": {"tags": ["transfers"], "summary": "Get transfer by transaction id", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "transactionId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/transfers/transaction/{transactionId}/receipt": {
            "get": {"tags": ["transfers"], "summary": "Download receipt", "produces": ["text/plain"],
                "parameters": [{"type": "string", "name": "transactionId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/wizard": {
            "post": {"tags": ["wizard"], "summary": "Start a transfer wizard", "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}}
        },
        "/api/wizard/{id}": {
            "get": {"tags": ["wizard"], "summary": "Get wizard session", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["wizard"], "summary": "Delete wizard session",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/api/wizard/{id}/draft": {
            "patch": {"tags": ["wizard"], "summary": "Update the transfer draft", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/api/wizard/{id}/details": {
            "put": {"tags": ["wizard"], "summary": "Submit transfer details", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/api/wizard/{id}/confirm": {
            "post": {"tags": ["wizard"], "summary": "Confirm the reviewed transfer", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/api/wizard/{id}/back": {
            "post": {"tags": ["wizard"], "summary": "Go back one step", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/api/wizard/{id}/reset": {
            "post": {"tags": ["wizard"], "summary": "Start a new transfer", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/wizard/{id}/pay": {
            "post": {"tags": ["wizard"], "summary": "Pay for the transfer", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/api/wizard/{id}/receipt": {
            "get": {"tags": ["wizard"], "summary": "Download wizard receipt", "produces": ["text/plain"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GlobalRemit API",
	Description:      "Money transfer quotes, wizard sessions and receipts",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
