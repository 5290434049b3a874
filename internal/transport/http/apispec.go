package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"

	"github.com/holidaydesk/backoffice/internal/util"
)

// RegisterAPISpec serves the OpenAPI document. The source of truth is the
// YAML file under docs/; it is converted to JSON on every request so edits
// show up without a restart.
func RegisterAPISpec(e *echo.Echo) {
	e.GET("/openapi.json", func(c echo.Context) error {
		specPath := filepath.Join("docs", "openapi.yaml")
		data, err := os.ReadFile(specPath)
		if err != nil {
			c.Logger().Errorf("load openapi spec: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load api spec"))
		}
		jsonSpec, err := yaml.YAMLToJSON(data)
		if err != nil {
			c.Logger().Errorf("convert openapi spec: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to parse api spec"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, jsonSpec)
	})
}
