package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/smazurov/tulipd/internal/api/models"
	"github.com/smazurov/tulipd/internal/wifimac"
)

func (s *Server) registerWifiMACRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "get-wifimac",
		Method:      http.MethodGet,
		Path:        "/api/wifimac",
		Summary:     "Get WiFi MAC",
		Description: "Read the WiFi MAC address from the persisted calibration file",
		Tags:        []string{"system"},
		Security:    withAuth(),
		Errors:      []int{401, 500},
	}, func(_ context.Context, _ *struct{}) (*models.WifiMACResponse, error) {
		path := s.options.WifiMACPath
		if path == "" {
			path = wifimac.DefaultPath
		}

		addr, err := wifimac.Read(path)
		if err != nil {
			s.logger.Error("Failed to read WiFi MAC address", "path", path, "error", err)
			return nil, huma.Error500InternalServerError("Failed to read WiFi MAC address", err)
		}

		return &models.WifiMACResponse{
			Body: models.WifiMACData{
				Address: addr.String(),
				Path:    path,
			},
		}, nil
	})
}
