// Package docs registra la especificación OpenAPI en swaggo/swag para que
// las herramientas que la consultan en runtime la encuentren. El archivo
// swagger.json también lo sirve directamente el middleware de Swagger UI.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerSpec string

// SwaggerInfo describe la API publicada.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Title:            "Almacén API",
	Description:      "API de inventario y órdenes para taller de confección.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  swaggerSpec,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
