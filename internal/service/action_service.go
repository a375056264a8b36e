package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
)

// Simulated action kinds.
const (
	ActionResetRouter      = "reset-router"
	ActionRestartEquipment = "restart-equipment"
	ActionSpeedTest        = "speed-test"
)

type actionConfig struct {
	delay time.Duration

	// requiresSubscriber selects which identifier pair the request must carry:
	// subscriberId/subscriberName instead of equipmentId/equipmentName.
	requiresSubscriber bool
}

// ActionService simulates remote device actions. There is no real device
// control: each action waits a fixed, kind-specific delay and fabricates a
// plausible result.
type ActionService struct {
	configs map[string]actionConfig

	// Injection points for tests.
	now  func() time.Time
	intN func(n int) int
}

// NewActionService creates an ActionService with the built-in action kinds.
func NewActionService() *ActionService {
	return &ActionService{
		configs: map[string]actionConfig{
			ActionResetRouter:      {delay: 1500 * time.Millisecond},
			ActionRestartEquipment: {delay: 2000 * time.Millisecond},
			ActionSpeedTest:        {delay: 2000 * time.Millisecond, requiresSubscriber: true},
		},
		now:  time.Now,
		intN: rand.IntN,
	}
}

// Execute runs one simulated action. Unknown kinds return an error wrapping
// ErrUnknownAction; a missing identifier returns a ValidationError. The delay
// aborts on context cancellation, in which case nothing is reported as done.
func (s *ActionService) Execute(
	ctx context.Context, actionType string, req models.ActionRequest,
) (*models.ActionResponse, error) {
	cfg, ok := s.configs[actionType]
	if !ok {
		return nil, apperrors.NewUnknownActionError(actionType)
	}

	if cfg.requiresSubscriber {
		if req.SubscriberID == "" && req.SubscriberName == "" {
			return nil, apperrors.NewValidationError("subscriberId", "Subscriber ID or name required")
		}
	} else if req.EquipmentID == "" && req.EquipmentName == "" {
		return nil, apperrors.NewValidationError("equipmentId", "Equipment ID or name required")
	}

	timer := time.NewTimer(cfg.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err() //nolint:wrapcheck // cancellation passes through unchanged
	case <-timer.C:
	}

	resp := &models.ActionResponse{
		Success:   true,
		Timestamp: s.now(),
	}

	switch actionType {
	case ActionResetRouter:
		resp.Message = fmt.Sprintf("Router %s reset successfully", firstNonEmpty(req.EquipmentName, req.EquipmentID))
	case ActionRestartEquipment:
		resp.Message = fmt.Sprintf("%s %s restarted successfully",
			firstNonEmpty(req.EquipmentType, "Equipment"),
			firstNonEmpty(req.EquipmentName, req.EquipmentID))
	case ActionSpeedTest:
		download := s.intN(500) + 100
		upload := s.intN(100) + 20
		latency := s.intN(30) + 10

		resp.Message = fmt.Sprintf("Speed test completed: %d Mbps down, %d Mbps up, %d ms latency",
			download, upload, latency)
		resp.Results = &models.SpeedTestResults{
			DownloadSpeed: fmt.Sprintf("%d Mbps", download),
			UploadSpeed:   fmt.Sprintf("%d Mbps", upload),
			Latency:       fmt.Sprintf("%d ms", latency),
			Timestamp:     resp.Timestamp,
		}
	}

	return resp, nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}

	return b
}
