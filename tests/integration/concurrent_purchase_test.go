package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two buyers race for the last of the stock. Exactly one order may win;
// the loser gets a stock conflict and the listing never goes negative.
func TestConcurrentPurchases(t *testing.T) {
	startMarketApp(t, ":8082")
	baseURL := "http://localhost:8082/api"

	status, resp := postJSON(t, baseURL+"/farmers", map[string]any{
		"name":          "Anand",
		"email":         "anand@farm.example",
		"contactNumber": "555-0101",
	})
	require.Equal(t, http.StatusOK, status)

	var farmer struct {
		Id int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &farmer))

	buyerIds := make([]int, 2)
	for i := range buyerIds {
		status, resp = postJSON(t, baseURL+"/buyers", map[string]any{
			"name":          fmt.Sprintf("Buyer %d", i+1),
			"email":         fmt.Sprintf("buyer%d@mail.example", i+1),
			"contactNumber": "555-0300",
		})
		require.Equal(t, http.StatusOK, status)

		var buyer struct {
			Id int `json:"id"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &buyer))
		buyerIds[i] = buyer.Id
	}

	status, resp = postJSON(t, baseURL+"/crops", map[string]any{
		"farmerId":          farmer.Id,
		"cropName":          "Onions",
		"availableQuantity": 5.0,
		"pricePerUnit":      1.20,
		"unit":              "kg",
	})
	require.Equal(t, http.StatusOK, status)

	var listing struct {
		Id int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &listing))

	statuses := make([]int, len(buyerIds))
	var wg sync.WaitGroup
	for i, buyerId := range buyerIds {
		wg.Add(1)
		go func(i, buyerId int) {
			defer wg.Done()

			body, err := json.Marshal(map[string]any{
				"buyerId":           buyerId,
				"cropId":            listing.Id,
				"quantityPurchased": 5.0,
				"pricePerUnit":      1.20,
			})
			if err != nil {
				return
			}

			purchaseResp, err := http.Post(baseURL+"/orders/purchase", "application/json", bytes.NewBuffer(body))
			if err != nil {
				return
			}
			defer purchaseResp.Body.Close()

			_, _ = io.Copy(io.Discard, purchaseResp.Body)
			statuses[i] = purchaseResp.StatusCode
		}(i, buyerId)
	}
	wg.Wait()

	winners := 0
	conflicts := 0
	for _, code := range statuses {
		switch code {
		case http.StatusOK:
			winners++
		case http.StatusConflict:
			conflicts++
		}
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, 1, conflicts)

	status, resp = getJSON(t, fmt.Sprintf("%s/crops/%d/stock", baseURL, listing.Id))
	require.Equal(t, http.StatusOK, status)

	var stock struct {
		AvailableQuantity float64 `json:"availableQuantity"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &stock))
	assert.InDelta(t, 0.0, stock.AvailableQuantity, 0.001)

	status, resp = getJSON(t, baseURL+"/orders")
	require.Equal(t, http.StatusOK, status)

	var orders []struct {
		QuantityPurchased float64 `json:"quantityPurchased"`
		TotalPrice        float64 `json:"totalPrice"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &orders))
	require.Len(t, orders, 1)
	assert.InDelta(t, 5.0, orders[0].QuantityPurchased, 0.001)
	assert.InDelta(t, 6.0, orders[0].TotalPrice, 0.001)
}
