package subscriber

import (
	"context"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
)

const topicPattern = "/fleet/camion/+/ubicacion"

type locationService interface {
	Register(ctx context.Context, body []byte) (*domain.LocationReport, error)
}

// LocationSubscriber is the MQTT ingest path. Payloads are the same JSON
// shape as the HTTP endpoint and run through the same pipeline; with no
// caller to answer, every failure ends in the log.
type LocationSubscriber struct {
	client      mqtt.Client
	locationSvc locationService
}

func NewLocationSubscriber(client mqtt.Client, locationSvc locationService) *LocationSubscriber {
	return &LocationSubscriber{client: client, locationSvc: locationSvc}
}

func (s *LocationSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	report, err := s.locationSvc.Register(context.Background(), msg.Payload())
	if err != nil {
		log.Printf("mqtt location rejected on %s: %v", msg.Topic(), err)
		return
	}
	log.Printf("mqtt location registered for %s", report.CamionID)
}
