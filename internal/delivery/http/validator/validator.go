// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator used by every handler's Bind-then-Validate
// flow. Struct tags drive the rules.
func New() echo.Validator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
