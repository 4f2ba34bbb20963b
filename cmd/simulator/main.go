package main

import (
	"encoding/json"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/moto-maintenance/internal/ingest"
)

// rideState tracks one simulated vehicle between ticks. The odometer only
// ever goes up.
type rideState struct {
	VehicleID string
	Odometer  int
	SpeedKmh  float64
}

// advance moves the ride forward by one tick and returns the distance
// covered. Speed drifts within city-riding bounds.
func (s *rideState) advance(tick time.Duration) int {
	s.SpeedKmh += (rand.Float64()*2 - 1) * 5
	if s.SpeedKmh < 10 {
		s.SpeedKmh = 10
	}
	if s.SpeedKmh > 110 {
		s.SpeedKmh = 110
	}
	km := int(s.SpeedKmh * tick.Hours())
	if km < 1 {
		km = 1
	}
	s.Odometer += km
	return km
}

func (s *rideState) reading() ingest.OdometerReading {
	return ingest.OdometerReading{
		VehicleID:  s.VehicleID,
		Odometer:   s.Odometer,
		RecordedAt: time.Now().UTC(),
	}
}

// odometerTopic builds the publish topic for one vehicle.
func odometerTopic(vehicleID string) string {
	return "vehicles/" + vehicleID + "/odometer"
}

// parseVehicleIDs splits a comma-separated id list, dropping empty entries.
func parseVehicleIDs(raw string) []string {
	ids := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func publishReading(client mqtt.Client, state *rideState) {
	payload, err := json.Marshal(state.reading())
	if err != nil {
		log.WithError(err).Error("Failed to marshal reading")
		return
	}
	token := client.Publish(odometerTopic(state.VehicleID), 1, false, payload)
	if token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).WithField("vehicle_id", state.VehicleID).Error("Failed to publish reading")
		return
	}
	log.WithFields(log.Fields{
		"vehicle_id": state.VehicleID,
		"odometer":   state.Odometer,
	}).Info("Published odometer reading")
}

func simulateRide(client mqtt.Client, state *rideState, interval time.Duration) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for range tick.C {
		state.advance(interval)
		publishReading(client, state)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	broker := os.Getenv("MQTT_BROKER")
	if broker == "" {
		broker = "tcp://localhost:1883"
	}

	vehicleIDs := parseVehicleIDs(os.Getenv("SIM_VEHICLE_IDS"))
	if len(vehicleIDs) == 0 {
		log.Fatal("SIM_VEHICLE_IDS must list at least one vehicle id")
	}

	interval := 5 * time.Second
	if v := os.Getenv("SIM_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			interval = time.Duration(n) * time.Second
		}
	}

	startOdo := 0
	if v := os.Getenv("SIM_START_ODO"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			startOdo = n
		}
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("moto-maintenance-simulator").
		SetConnectRetry(true)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.WithError(token.Error()).Fatal("Failed to connect to MQTT broker")
	}

	log.WithFields(log.Fields{
		"broker":   broker,
		"vehicles": len(vehicleIDs),
		"interval": interval,
	}).Info("Starting odometer simulation")

	for _, id := range vehicleIDs {
		state := &rideState{
			VehicleID: id,
			Odometer:  startOdo,
			SpeedKmh:  30 + rand.Float64()*30,
		}
		go simulateRide(client, state, interval)
	}

	select {} // Block forever
}
