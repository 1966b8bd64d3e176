package main

import (
	"context"
	"database/sql"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/isaireyesmejia/camion-tracker/config"
	"github.com/isaireyesmejia/camion-tracker/module/core"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	mongoClient, coll, err := config.NewMongo(ctx, cfg)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	var db *sql.DB
	if cfg.PostgresDSN != "" {
		db, err = config.NewPostgres(cfg)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer func() { _ = db.Close() }()
	} else {
		log.Printf("postgres not configured, secondary store disabled")
	}

	var amqpConn *amqp.Connection
	if cfg.RabbitMQURL != "" {
		amqpConn, err = config.NewRabbitMQ(cfg)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer func() { _ = amqpConn.Close() }()
	}

	var mqttClient mqtt.Client
	if cfg.MQTTBroker != "" {
		mqttClient, err = config.NewMQTT(cfg)
		if err != nil {
			log.Fatalf("mqtt: %v", err)
		}
		defer mqttClient.Disconnect(250)
	}

	coreModule, err := core.Build(coll, db, amqpConn, mqttClient, cfg.HealthGateEnabled)
	if err != nil {
		log.Fatalf("core module: %v", err)
	}

	if err := coreModule.StartSubscribers(); err != nil {
		log.Fatalf("start subscribers: %v", err)
	}

	r := gin.Default()
	coreModule.RegisterRoutes(&r.RouterGroup)

	log.Printf("listening on :%s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
