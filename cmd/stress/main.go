package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// Fires concurrent reservation requests for a single variant against a
// running server and checks that no oversell happened. Each request uses a
// distinct session key so every one is a separate holder competing for the
// same stock.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	variantID := flag.String("variant", "stress-variant", "variant to reserve")
	totalRequests := flag.Int("n", 50, "number of concurrent requests")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	avail, err := availability(client, *baseURL, *variantID)
	if err != nil {
		log.Fatalf("failed to read availability: %v", err)
	}
	fmt.Printf("Variant %s: %d available before test\n", *variantID, avail)

	var successCount atomic.Int32
	var insufficientCount atomic.Int32
	var errorCount atomic.Int32

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < *totalRequests; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			body, _ := json.Marshal(map[string]any{
				"variant_id":  *variantID,
				"quantity":    1,
				"session_key": fmt.Sprintf("stress-session-%d", id),
			})
			resp, err := client.Post(*baseURL+"/reservations", "application/json", bytes.NewReader(body))
			if err != nil {
				errorCount.Add(1)
				return
			}
			resp.Body.Close()

			switch resp.StatusCode {
			case http.StatusCreated:
				successCount.Add(1)
			case http.StatusBadRequest:
				insufficientCount.Add(1)
			default:
				errorCount.Add(1)
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	success := successCount.Load()
	insufficient := insufficientCount.Load()
	failed := errorCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Available Before: %d\n", avail)
	fmt.Printf("Total Requests:   %d\n", *totalRequests)
	fmt.Printf("Reserved:         %d\n", success)
	fmt.Printf("Insufficient:     %d\n", insufficient)
	fmt.Printf("Errors:           %d\n", failed)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	expected := int32(avail)
	if int32(*totalRequests) < expected {
		expected = int32(*totalRequests)
	}
	if success == expected && failed == 0 {
		fmt.Printf("PASS: exactly %d reservations succeeded\n", expected)
	} else {
		fmt.Printf("FAIL: expected %d successes, got %d (%d errors)\n", expected, success, failed)
	}

	after, err := availability(client, *baseURL, *variantID)
	if err != nil {
		log.Fatalf("failed to read availability: %v", err)
	}
	fmt.Printf("Available After:  %d\n", after)
	if after == avail-int(success) {
		fmt.Println("PASS: availability dropped by exactly the reserved count")
	} else {
		fmt.Printf("FAIL: expected availability %d, got %d\n", avail-int(success), after)
	}
}

func availability(client *http.Client, baseURL, variantID string) (int, error) {
	resp, err := client.Get(fmt.Sprintf("%s/availability?variant_id=%s", baseURL, variantID))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out struct {
		Available int `json:"available"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.Available, nil
}
