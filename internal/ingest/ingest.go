package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/moto-maintenance/internal/db"
	"github.com/ukydev/moto-maintenance/internal/models"
)

// OdometerTopic is the wildcard subscription for odometer readings. The
// middle segment carries the vehicle id.
const OdometerTopic = "vehicles/+/odometer"

const applyTimeout = 5 * time.Second

var (
	ErrBadTopic   = errors.New("topic does not match vehicles/{id}/odometer")
	ErrBadPayload = errors.New("invalid odometer payload")
)

// OdometerReading is the payload published to vehicles/{id}/odometer.
type OdometerReading struct {
	VehicleID  string    `json:"vehicle_id"`
	Odometer   int       `json:"odometer"`
	RecordedAt time.Time `json:"recorded_at"`
}

// OdometerStore is the slice of the vehicle collection the subscriber needs.
type OdometerStore interface {
	UpdateOdometer(ctx context.Context, id string, odometer int) (*models.Vehicle, error)
}

// Subscriber consumes odometer readings from MQTT and applies them to the
// vehicle store. Readings lower than the stored odometer are dropped.
type Subscriber struct {
	client mqtt.Client
	store  OdometerStore
}

// NewSubscriber connects to the broker and returns a subscriber ready to
// Start.
func NewSubscriber(brokerURL, clientID string, store OdometerStore) (*Subscriber, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &Subscriber{client: client, store: store}, nil
}

// Start subscribes to the odometer topic.
func (s *Subscriber) Start() error {
	token := s.client.Subscribe(OdometerTopic, 1, s.handleMessage)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt subscribe: %w", token.Error())
	}
	log.WithFields(log.Fields{"topic": OdometerTopic}).Info("odometer ingest started")
	return nil
}

// Stop disconnects from the broker.
func (s *Subscriber) Stop() {
	s.client.Disconnect(250)
	log.Info("odometer ingest stopped")
}

func (s *Subscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	reading, err := ParseReading(msg.Topic(), msg.Payload())
	if err != nil {
		log.WithFields(log.Fields{"topic": msg.Topic(), "error": err}).Warn("dropping odometer message")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()
	if err := s.Apply(ctx, reading); err != nil {
		log.WithFields(log.Fields{
			"vehicle_id": reading.VehicleID,
			"odometer":   reading.Odometer,
			"error":      err,
		}).Warn("odometer reading not applied")
	}
}

// Apply writes one reading to the store. Regressions and unknown vehicles
// come back as db errors for the caller to log.
func (s *Subscriber) Apply(ctx context.Context, reading OdometerReading) error {
	updated, err := s.store.UpdateOdometer(ctx, reading.VehicleID, reading.Odometer)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"vehicle_id": updated.ID.Hex(),
		"odometer":   updated.CurrentOdo,
	}).Info("odometer updated from broker")
	return nil
}

// ParseReading validates a topic/payload pair and returns the reading. The
// topic segment is authoritative for the vehicle id; a payload that names a
// different vehicle is rejected.
func ParseReading(topic string, payload []byte) (OdometerReading, error) {
	vehicleID, err := vehicleIDFromTopic(topic)
	if err != nil {
		return OdometerReading{}, err
	}

	var reading OdometerReading
	if err := json.Unmarshal(payload, &reading); err != nil {
		return OdometerReading{}, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if reading.VehicleID != "" && reading.VehicleID != vehicleID {
		return OdometerReading{}, fmt.Errorf("%w: payload vehicle %q does not match topic", ErrBadPayload, reading.VehicleID)
	}
	if reading.Odometer < 0 {
		return OdometerReading{}, fmt.Errorf("%w: negative odometer", ErrBadPayload)
	}

	reading.VehicleID = vehicleID
	if reading.RecordedAt.IsZero() {
		reading.RecordedAt = time.Now().UTC()
	}
	return reading, nil
}

func vehicleIDFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "vehicles" || parts[2] != "odometer" || parts[1] == "" {
		return "", fmt.Errorf("%w: %q", ErrBadTopic, topic)
	}
	return parts[1], nil
}

// IsRegression reports whether an apply failure was a stale reading, which
// callers usually drop silently rather than alert on.
func IsRegression(err error) bool {
	return errors.Is(err, db.ErrOdometerRegression)
}
