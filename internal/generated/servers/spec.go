package servers

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}

type swaggerDoc struct {
	doc []byte
}

// ReadDoc returns the raw OpenAPI document for swag.
func (s swaggerDoc) ReadDoc() string {
	return string(s.doc)
}

var registerOnce sync.Once

// RegisterSwagger publishes the document to swag so echo-swagger can serve it.
// Subsequent calls are no-ops.
func RegisterSwagger(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: raw})
	})
	return nil
}
