package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// Simple health check utility for deployment probes and local smoke tests.

func main() {
	base := os.Getenv("API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	fmt.Println("assemblyStatApp Health Check Utility")
	fmt.Println("------------------------------------")

	status, err := checkServiceHealth(base + "/health")
	if err != nil {
		log.Fatalf("Health check failed: %v", err)
	}

	fmt.Printf("Service is %s (database: %s)\n", status["status"], status["database"])
	if status["status"] != "healthy" {
		os.Exit(1)
	}
}

func checkServiceHealth(url string) (map[string]string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return body, nil
}
