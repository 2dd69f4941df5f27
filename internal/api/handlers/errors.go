package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	"github.com/donaldgifford/inspection-pricing/internal/engine"
)

// toHTTPError maps engine and store errors onto Huma status errors. action
// prefixes the message of unexpected failures ("quoting estimate failed").
func toHTTPError(err error, action string) error {
	switch {
	case errors.Is(err, engine.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, engine.ErrInvalidRequest), errors.Is(err, engine.ErrInvalidSettings):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, engine.ErrUnknownService), errors.Is(err, engine.ErrInvalidParams):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(action + " failed: " + err.Error())
	}
}
