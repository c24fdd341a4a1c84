package services

import (
	"log/slog"

	"estate-hub/domain"
)

// render serializes the envelope. A payload that no longer validates on the
// way out is reported as a failure envelope instead.
func render[T domain.Entity](log *slog.Logger, response domain.ApiResponse[T]) []byte {
	data, err := domain.Serialize(response)
	if err == nil {
		return data
	}
	log.Error("Unable to serialize response", "error", err)
	data, err = domain.Serialize(domain.Fail[T](err))
	if err != nil {
		// A failure envelope only carries strings.
		panic(err)
	}
	return data
}
