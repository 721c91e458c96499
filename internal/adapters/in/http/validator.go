package http

import (
	"net/http"
	"strings"

	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

// RequestValidator checks every request against the OpenAPI document before it
// reaches a handler. Routes not described by the document pass through.
func RequestValidator(doc *openapi3.T) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		MultiError:         true,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			route, ok := findRoute(doc, ctx)
			if !ok {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    ctx.Request(),
				PathParams: pathParams(ctx),
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(ctx.Request().Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Kind:    string(errs.KindValidation),
					Message: err.Error(),
				})
			}

			return next(ctx)
		}
	}
}

// findRoute resolves the matched echo route template, e.g. /orders/:orderId,
// to the document's /orders/{orderId} operation.
func findRoute(doc *openapi3.T, ctx echo.Context) (*routers.Route, bool) {
	template := openAPIPath(ctx.Path())
	item := doc.Paths.Value(template)
	if item == nil {
		return nil, false
	}
	method := ctx.Request().Method
	operation := item.GetOperation(method)
	if operation == nil {
		return nil, false
	}

	return &routers.Route{
		Spec:      doc,
		Path:      template,
		PathItem:  item,
		Method:    method,
		Operation: operation,
	}, true
}

func openAPIPath(echoPath string) string {
	segments := strings.Split(echoPath, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func pathParams(ctx echo.Context) map[string]string {
	names := ctx.ParamNames()
	values := ctx.ParamValues()
	params := make(map[string]string, len(names))
	for i, name := range names {
		if i < len(values) {
			params[name] = values[i]
		}
	}
	return params
}
