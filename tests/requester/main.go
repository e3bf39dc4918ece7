package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080"

type item struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderRequest struct {
	UserID string `json:"user_id"`
	Items  []item `json:"items"`
}

type orderResponse struct {
	Order struct {
		OrderID string `json:"order_id"`
	} `json:"order"`
}

var (
	mu      sync.Mutex
	placed  []string
	itemIDs = []string{"item-1", "item-2", "item-3"}
	userIDs = []string{"user-premium", "user-regular"}
	client  = &http.Client{Timeout: 5 * time.Second}
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			if rand.Intn(3) == 0 {
				wg.Go(placeOrder)
			} else {
				wg.Go(getOrder)
			}
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func placeOrder() {
	body, _ := json.Marshal(orderRequest{
		UserID: userIDs[rand.Intn(len(userIDs))],
		Items:  []item{{ID: itemIDs[rand.Intn(len(itemIDs))], Quantity: 1 + rand.Intn(3), Price: 19.99}},
	})

	resp, err := client.Post(baseURL+"/orders", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("POST /orders ->", resp.Status)

	if resp.StatusCode != http.StatusCreated {
		return
	}
	var res orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err == nil {
		mu.Lock()
		placed = append(placed, res.Order.OrderID)
		mu.Unlock()
	}
}

func getOrder() {
	id := "unknown-order"
	mu.Lock()
	if len(placed) > 0 && rand.Intn(5) != 0 {
		id = placed[rand.Intn(len(placed))]
	}
	mu.Unlock()

	url := baseURL + "/order/" + id
	resp, err := client.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
