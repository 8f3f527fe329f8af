package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/smazurov/tulipd/internal/api/models"
)

// registerLEDRoutes registers the physical LED listing.
func (s *Server) registerLEDRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list-leds",
		Method:      http.MethodGet,
		Path:        "/api/leds",
		Summary:     "List LEDs",
		Description: "Get the LED class devices the driver can write to. Empty when running without sysfs LEDs.",
		Tags:        []string{"leds"},
		Security:    withAuth(),
		Errors:      []int{401},
	}, func(_ context.Context, _ *struct{}) (*models.LEDsResponse, error) {
		available := s.ctrl.Available()
		return &models.LEDsResponse{
			Body: models.LEDsData{
				Available: available,
				Count:     len(available),
			},
		}, nil
	})
}
