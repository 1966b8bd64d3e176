package subscriber

import (
	"context"
	"testing"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
	"github.com/isaireyesmejia/camion-tracker/module/core/service"
)

type mockLocationSvc struct {
	registerFn func(ctx context.Context, body []byte) (*domain.LocationReport, error)
}

func (m *mockLocationSvc) Register(ctx context.Context, body []byte) (*domain.LocationReport, error) {
	return m.registerFn(ctx, body)
}

type fakeMQTTMessage struct {
	payload []byte
}

func (f *fakeMQTTMessage) Duplicate() bool   { return false }
func (f *fakeMQTTMessage) Qos() byte         { return 0 }
func (f *fakeMQTTMessage) Retained() bool    { return false }
func (f *fakeMQTTMessage) Topic() string     { return "/fleet/camion/T1/ubicacion" }
func (f *fakeMQTTMessage) MessageID() uint16 { return 0 }
func (f *fakeMQTTMessage) Payload() []byte   { return f.payload }
func (f *fakeMQTTMessage) Ack()              {}

func TestHandleMessage_FeedsPipeline(t *testing.T) {
	var gotBody []byte
	svc := &mockLocationSvc{
		registerFn: func(_ context.Context, body []byte) (*domain.LocationReport, error) {
			gotBody = body
			return &domain.LocationReport{CamionID: "T1"}, nil
		},
	}

	sub := &LocationSubscriber{locationSvc: svc}
	payload := []byte(`{"camionId":"T1","latitud":19.4,"longitud":-99.1}`)
	sub.handleMessage(nil, &fakeMQTTMessage{payload: payload})

	if string(gotBody) != string(payload) {
		t.Errorf("expected raw payload to reach the pipeline, got %s", gotBody)
	}
}

func TestHandleMessage_RejectionLoggedOnly(t *testing.T) {
	svc := &mockLocationSvc{
		registerFn: func(_ context.Context, _ []byte) (*domain.LocationReport, error) {
			return nil, &service.ValidationError{Errors: []string{"camionId is required"}}
		},
	}

	sub := &LocationSubscriber{locationSvc: svc}
	// must not panic; there is no caller to answer
	sub.handleMessage(nil, &fakeMQTTMessage{payload: []byte(`{}`)})
}
