//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/ordermanager/order-manager-api/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type orderPosition struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type createOrderPayload struct {
	CustomerID int             `json:"customerId"`
	Positions  []orderPosition `json:"positions"`
}

type orderPayload struct {
	ID          int    `json:"id"`
	OrderNumber string `json:"orderNumber"`
	TotalPrice  string `json:"totalPrice"`
	OrderStatus string `json:"orderStatus"`
}

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type apiError struct {
	status int
	title  string
	detail string
}

func (e apiError) Error() string {
	msg := e.title
	if msg == "" {
		msg = "api error"
	}
	if e.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.status)
}

func (e apiError) Status() int {
	return e.status
}

func TestOrderPortalContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	createRequest := createOrderPayload{
		CustomerID: pacttest.SeedCustomerID,
		Positions:  []orderPosition{{ProductID: pacttest.SeedProductID, Quantity: 2}},
	}
	orderBodyMatcher := matchers.Map{
		"id":          matchers.Like(pacttest.ExistingOrderID),
		"orderNumber": matchers.Like("abc1234567"),
		"totalPrice":  matchers.Like("16000"),
		"orderStatus": matchers.Term("new", "new|in_progress|completed"),
		"positions": matchers.ArrayMinLike(matchers.Map{
			"productId": matchers.Like(pacttest.SeedProductID),
			"quantity":  matchers.Like(2),
			"price":     matchers.Like("8000"),
		}, 1),
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StateCatalogSeeded).
		UponReceiving("a request to place an order").
		WithRequest("POST", "/api/orders", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"customerId": matchers.Like(createRequest.CustomerID),
				"positions": matchers.ArrayMinLike(matchers.Map{
					"productId": matchers.Like(pacttest.SeedProductID),
					"quantity":  matchers.Like(2),
				}, 1),
			})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(orderBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderExists).
		UponReceiving("a request to fetch an existing order").
		WithRequest("GET", fmt.Sprintf("/api/orders/%d", pacttest.ExistingOrderID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(orderBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderMissing).
		UponReceiving("a request for a missing order").
		WithRequest("GET", fmt.Sprintf("/api/orders/%d", pacttest.MissingOrderID)).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/not-found"),
				"title":  matchers.S("Resource Not Found"),
				"status": matchers.Like(http.StatusNotFound),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newOrderClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		created, err := client.CreateOrder(ctx, createRequest)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if created == nil || created.ID == 0 {
			return fmt.Errorf("expected created order ID to be set")
		}

		fetched, err := client.GetOrder(ctx, pacttest.ExistingOrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if fetched == nil || fetched.ID != pacttest.ExistingOrderID {
			return fmt.Errorf("expected order id %d, got %+v", pacttest.ExistingOrderID, fetched)
		}

		if _, err := client.GetOrder(ctx, pacttest.MissingOrderID); err == nil {
			return fmt.Errorf("expected 404 for order %d", pacttest.MissingOrderID)
		} else if apiErr, ok := err.(apiError); ok && apiErr.Status() != http.StatusNotFound {
			return fmt.Errorf("expected 404, got %d", apiErr.Status())
		}

		return nil
	})
	require.NoError(t, err)
}

type orderClient struct {
	baseURL    string
	httpClient *http.Client
}

func newOrderClient(config pactconsumer.MockServerConfig) *orderClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &orderClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *orderClient) CreateOrder(ctx context.Context, payload createOrderPayload) (*orderPayload, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var order orderPayload
	if err := json.NewDecoder(res.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *orderClient) GetOrder(ctx context.Context, id int) (*orderPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/orders/%d", c.baseURL, id), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, decodeAPIError(res)
	}

	var order orderPayload
	if err := json.NewDecoder(res.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func decodeAPIError(res *http.Response) error {
	var problem problemDetail
	_ = json.NewDecoder(res.Body).Decode(&problem)
	status := problem.Status
	if status == 0 {
		status = res.StatusCode
	}
	return apiError{
		status: status,
		title:  problem.Title,
		detail: problem.Detail,
	}
}
