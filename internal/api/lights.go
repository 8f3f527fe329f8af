package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/smazurov/tulipd/internal/api/models"
	"github.com/smazurov/tulipd/internal/lights"
)

func (s *Server) registerLightRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "list-lights",
		Method:      http.MethodGet,
		Path:        "/api/lights",
		Summary:     "List Lights",
		Description: "Get the state of every logical light and the command currently shown on the indicator LED",
		Tags:        []string{"lights"},
		Security:    withAuth(),
		Errors:      []int{401},
	}, func(_ context.Context, _ *struct{}) (*models.LightsResponse, error) {
		return &models.LightsResponse{Body: lightsData(s.ctrl.Snapshot())}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "set-light",
		Method:      http.MethodPut,
		Path:        "/api/lights/{id}",
		Summary:     "Set Light",
		Description: "Replace the state of one logical light. Notifications win over attention, attention over battery; the backlight is independent.",
		Tags:        []string{"lights"},
		Security:    withAuth(),
		Errors:      []int{400, 401},
	}, func(_ context.Context, input *models.SetLightRequest) (*models.LightsResponse, error) {
		dev, err := lights.Open(s.ctrl, input.ID)
		if errors.Is(err, lights.ErrUnknownLight) {
			return nil, huma.Error400BadRequest("Unknown light", err)
		}
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to open light", err)
		}

		state, err := lightState(input.Body)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid light state", err)
		}

		dev.Set(state)
		s.logger.Info("Light set via API",
			"light", input.ID,
			"color", input.Body.Color,
			"flash_mode", state.FlashMode.String())

		return &models.LightsResponse{Body: lightsData(s.ctrl.Snapshot())}, nil
	})
}

func lightState(data models.LightStateData) (lights.LightState, error) {
	mode, err := lights.ParseFlashMode(data.FlashMode)
	if err != nil {
		return lights.LightState{}, err
	}
	return lights.LightState{
		Color:      data.Color,
		FlashMode:  mode,
		FlashOnMS:  data.FlashOnMS,
		FlashOffMS: data.FlashOffMS,
	}, nil
}

func lightStateData(state lights.LightState) models.LightStateData {
	return models.LightStateData{
		Color:      state.Color,
		FlashMode:  state.FlashMode.String(),
		FlashOnMS:  state.FlashOnMS,
		FlashOffMS: state.FlashOffMS,
	}
}

func lightsData(snap lights.Snapshot) models.LightsData {
	states := map[lights.ID]lights.LightState{
		lights.Backlight:     snap.Backlight,
		lights.Battery:       snap.Battery,
		lights.Notifications: snap.Notifications,
		lights.Attention:     snap.Attention,
	}

	data := models.LightsData{
		Lights:              make([]models.LightData, 0, len(states)),
		Active:              string(snap.Active),
		Command:             commandData(snap.Command),
		BacklightBrightness: lights.BacklightBrightness(snap.Backlight.Color),
	}
	for _, id := range lights.IDs() {
		state := states[id]
		data.Lights = append(data.Lights, models.LightData{
			ID:     string(id),
			Lit:    state.Lit(),
			Active: id == snap.Active,
			State:  lightStateData(state),
		})
	}
	return data
}

func commandData(cmd lights.Command) models.CommandData {
	data := models.CommandData{Kind: cmd.Kind.String()}
	switch cmd.Kind {
	case lights.CommandSolid:
		data.LED = cmd.Channel.LED()
		data.Brightness = cmd.Brightness
	case lights.CommandBlink:
		data.LED = cmd.Channel.LED()
		data.LEDTime = cmd.Timing.String()
	}
	return data
}
