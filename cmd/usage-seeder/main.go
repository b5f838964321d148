// usage-seeder posts randomized sample records to a running usage-data
// server, for local development and demo charts.
// Run: go run ./cmd/usage-seeder
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

type usagePayload struct {
	DeviceName string  `json:"device_name"`
	Value      float64 `json:"value"`
}

// deviceProfile holds a device label and the base draw it fluctuates around.
type deviceProfile struct {
	Name      string
	BaseValue float64
}

var devices = []deviceProfile{
	{Name: "Fridge", BaseValue: 12.0},
	{Name: "Lamp", BaseValue: 2.0},
	{Name: "Washer", BaseValue: 8.5},
	{Name: "Heater", BaseValue: 20.0},
	{Name: "Router", BaseValue: 1.2},
}

func main() {
	apiURL := getEnv("SEED_API_URL", "http://localhost:4000")
	count := getEnvInt("SEED_COUNT", 20)

	client := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(5 * time.Second).
		SetHeader("Content-Type", "application/json")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := 0
	for i := 0; i < count; i++ {
		d := devices[rng.Intn(len(devices))]

		// Fluctuate ±30% around the base, clamped at zero.
		value := d.BaseValue * (0.7 + rng.Float64()*0.6)
		value = float64(int(value*100)) / 100

		payload := usagePayload{DeviceName: d.Name, Value: value}
		resp, err := client.R().SetBody(payload).Post("/api/device-usage")
		if err != nil {
			log.Fatalf("POST /api/device-usage failed: %v", err)
		}
		if resp.IsError() {
			log.Fatalf("POST /api/device-usage returned %d: %s", resp.StatusCode(), resp.String())
		}

		created++
		fmt.Printf("created %s = %.2f\n", d.Name, value)
	}

	fmt.Printf("seeded %d records against %s\n", created, apiURL)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
