package services

import (
	"encoding/json"
	"fmt"

	"github.com/architeacher/imagekit/internal/adapters/outbound/rest"
	"github.com/architeacher/imagekit/pkg/media"
)

type errorBody struct {
	Message string `json:"message"`
	Help    string `json:"help"`
}

// mapResponseError builds the error of a non-success response. The message
// comes from the JSON error body, or the raw body when it is not JSON.
func mapResponseError(resp *rest.Response) error {
	message := string(resp.Body)

	var body errorBody
	if err := json.Unmarshal(resp.Body, &body); err == nil && body.Message != "" {
		message = body.Message
	}

	return media.NewServiceError(resp.StatusCode, message)
}

func mapTransportError(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", media.ErrTransport, err)
}

func decode[T any](resp *rest.Response) (T, error) {
	var result T

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return result, fmt.Errorf("%w: %w", media.ErrDecode, err)
	}

	return result, nil
}
