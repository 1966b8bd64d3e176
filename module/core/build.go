package core

import (
	"database/sql"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	driver "go.mongodb.org/mongo-driver/mongo"

	handler "github.com/isaireyesmejia/camion-tracker/module/core/internal/handler/http"
	"github.com/isaireyesmejia/camion-tracker/module/core/internal/handler/subscriber"
	"github.com/isaireyesmejia/camion-tracker/module/core/internal/repository/database"
	mongostore "github.com/isaireyesmejia/camion-tracker/module/core/internal/repository/database/mongo"
	"github.com/isaireyesmejia/camion-tracker/module/core/internal/repository/database/postgres"
	"github.com/isaireyesmejia/camion-tracker/module/core/internal/repository/publisher"
	"github.com/isaireyesmejia/camion-tracker/module/core/internal/repository/publisher/rabbitmq"
	"github.com/isaireyesmejia/camion-tracker/module/core/service"
)

type Module struct {
	LocationSvc     *service.LocationService
	HealthSvc       *service.HealthService
	locationHandler *handler.LocationHandler
	healthHandler   *handler.HealthHandler
	subscriber      *subscriber.LocationSubscriber
}

// Build wires the module. db, amqpConn and mqttClient are optional; a nil
// value disables that dependency's path without error.
func Build(coll *driver.Collection, db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, healthGate bool) (*Module, error) {
	primary := mongostore.NewLocationStore(coll)

	var secondary database.UbicacionStore
	if db != nil {
		secondary = postgres.NewUbicacionStore(db)
	}

	var events publisher.LocationEventPublisher
	if amqpConn != nil {
		pub, err := rabbitmq.NewLocationPublisher(amqpConn)
		if err != nil {
			return nil, fmt.Errorf("location publisher: %w", err)
		}
		events = pub
	}

	locationSvc := service.NewLocationService(primary, secondary, events, healthGate)
	healthSvc := service.NewHealthService(primary, secondary)

	m := &Module{
		LocationSvc:     locationSvc,
		HealthSvc:       healthSvc,
		locationHandler: handler.NewLocationHandler(locationSvc),
		healthHandler:   handler.NewHealthHandler(healthSvc),
	}
	if mqttClient != nil {
		m.subscriber = subscriber.NewLocationSubscriber(mqttClient, locationSvc)
	}
	return m, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.locationHandler.Register(r)
	m.healthHandler.Register(r)
}

func (m *Module) StartSubscribers() error {
	if m.subscriber == nil {
		return nil
	}
	return m.subscriber.Start()
}
