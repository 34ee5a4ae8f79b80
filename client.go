package tableside

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"tableside/internal/metrics"
	"tableside/orders"
	"tableside/reservations"
)

// Client talks to the Tableside API. It is stateless across calls and safe
// for concurrent use; the transport's connection pool is the only shared
// resource.
type Client struct {
	http      *http.Client
	apiURL    string
	retries   int
	collector *metrics.Collector
}

// Option customizes a Client beyond its Config.
type Option func(*Client)

// WithHTTPClient substitutes the HTTP transport, e.g. for testing. The
// Config timeouts are ignored when a custom client is supplied.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithMetrics enables RPC metrics recording into the given collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(c *Client) {
		c.collector = collector
	}
}

// NewClient creates a client from config. Timeouts and retry count are
// fixed for the client's lifetime.
func NewClient(config Config, opts ...Option) *Client {
	config.applyDefaults()

	client := &Client{
		http: &http.Client{
			Timeout: config.ReadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: config.ConnectTimeout}).DialContext,
			},
		},
		apiURL:  config.APIURL,
		retries: config.Retries,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// call serializes a request, performs the HTTP round trip with bounded
// retries, and decodes the envelope into out (which may be nil when no
// payload is expected).
//
// Retries apply to transport-level failures only. A well-formed error
// envelope is authoritative and is never retried: retrying a non-idempotent
// submit could duplicate an order.
func (c *Client) call(ctx context.Context, requestType string, request, out any) error {
	started := time.Now()
	err := c.dispatch(ctx, request, out)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		var typed *Error
		if errors.As(err, &typed) {
			outcome = typed.Kind.String()
		}
	}
	c.collector.RecordRequest(requestType, outcome, time.Since(started))
	return err
}

func (c *Client) dispatch(ctx context.Context, request, out any) error {
	body, err := json.Marshal(request)
	if err != nil {
		return &Error{Kind: KindInvalidData, Message: fmt.Sprintf("encode request: %v", err), cause: err}
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			c.collector.RecordRetry()
		}

		respBody, transportErr := c.roundTrip(ctx, body)
		if transportErr != nil {
			lastErr = transportErr
			if ctx.Err() != nil {
				break
			}
			continue
		}

		var env envelope
		if err := json.Unmarshal(respBody, &env); err != nil {
			return communicationError(fmt.Sprintf("malformed response envelope: %v", err), err)
		}

		if !env.OK {
			if env.Error == nil {
				return communicationError("error envelope without error detail", nil)
			}
			return translateError(env.Error.Code, env.Error.Message)
		}

		if out != nil {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return communicationError(fmt.Sprintf("decode response data: %v", err), err)
			}
		}
		return nil
	}

	return communicationError(
		fmt.Sprintf("request failed after %d attempts: %v", c.retries+1, lastErr), lastErr)
}

func (c *Client) roundTrip(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// The envelope, not the HTTP status, decides success; a truncated body
	// is a transport failure like any other.
	return io.ReadAll(resp.Body)
}

// RetrieveRestaurantInfo fetches a restaurant together with its current
// menu snapshot.
func (c *Client) RetrieveRestaurantInfo(ctx context.Context, restaurantID string) (*RestaurantFullInfo, error) {
	request := getRestaurantRequest{
		Type:         "get_organization_full",
		RestaurantID: restaurantID,
	}

	var response RestaurantFullInfo
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SubmitOrder submits an assembled order. The access token is optional;
// anonymous submissions receive an owner token in the returned order.
func (c *Client) SubmitOrder(ctx context.Context, accessToken string, order *orders.Order) (*orders.Order, error) {
	request := submitOrderRequest{
		Type:        "submit_order",
		AccessToken: accessToken,
		Order:       order,
	}

	var response orderConfirmation
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return response.Order, nil
}

// RetrieveOrderAsOwner fetches an order using the owner token issued at
// submission.
func (c *Client) RetrieveOrderAsOwner(ctx context.Context, orderID, ownerToken string) (*orders.Order, error) {
	request := getOrderRequest{
		Type:       "get_order",
		OrderID:    orderID,
		OwnerToken: ownerToken,
		ViewMode:   ViewModeCustomer,
	}

	var response orders.Order
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// RetrieveOrderAsRestaurant fetches an order as restaurant staff.
func (c *Client) RetrieveOrderAsRestaurant(ctx context.Context, accessToken, orderID string) (*orders.Order, error) {
	request := getOrderRequest{
		Type:        "get_order",
		AccessToken: accessToken,
		OrderID:     orderID,
		ViewMode:    ViewModeRestaurant,
	}

	var response orders.Order
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// RetrieveNewOrders fetches all unhandled orders for a restaurant, oldest
// first.
func (c *Client) RetrieveNewOrders(ctx context.Context, accessToken, restaurantID string) ([]*orders.Order, error) {
	return c.QueryOrders(ctx, accessToken, []string{restaurantID}, orders.StatusNew, OrderingAsc, 0)
}

// QueryOrders fetches orders for the given restaurants, filtered by status.
// A zero limit means no limit.
func (c *Client) QueryOrders(ctx context.Context, accessToken string, restaurantIDs []string, status, ordering string, limit int) ([]*orders.Order, error) {
	request := queryOrdersRequest{
		Type:          "query_orders",
		AccessToken:   accessToken,
		RestaurantIDs: restaurantIDs,
		ViewMode:      ViewModeRestaurant,
		Status:        status,
		Ordering:      ordering,
		Limit:         limit,
	}

	var response ordersResponse
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

// AcceptOrder marks an order accepted. When the order is forwarded to an
// external system such as a point-of-sale, its identifiers should be
// reported via externalIDs; pass nil otherwise.
func (c *Client) AcceptOrder(ctx context.Context, accessToken, orderID string, externalIDs map[string]string) (*orders.Order, error) {
	request := setOrderStatusRequest{
		Type:        "set_order_status",
		AccessToken: accessToken,
		OrderID:     orderID,
		Status:      orders.StatusAccepted,
		ExternalIDs: externalIDs,
	}

	var response orders.Order
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// RejectOrder cancels an order with an explanatory comment.
func (c *Client) RejectOrder(ctx context.Context, accessToken, orderID, comment string) (*orders.Order, error) {
	request := setOrderStatusRequest{
		Type:        "set_order_status",
		AccessToken: accessToken,
		OrderID:     orderID,
		Status:      orders.StatusCanceled,
		Comment:     comment,
	}

	var response orders.Order
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Search returns venues matching the filter, available and closed alike.
func (c *Client) Search(ctx context.Context, filter Filter, limit int) ([]SearchResult, error) {
	request := searchRequest{
		Type:   "search",
		Filter: filter,
		Limit:  limit,
	}

	var response searchResponse
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

// SubmitReservation submits a table reservation.
func (c *Client) SubmitReservation(ctx context.Context, accessToken string, reservation *reservations.Reservation) (*reservations.Reservation, error) {
	request := submitReservationRequest{
		Type:        "submit_reservation",
		AccessToken: accessToken,
		Reservation: reservation,
	}

	var response reservations.Reservation
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// RetrieveReservationAsOwner fetches a reservation using its owner token.
func (c *Client) RetrieveReservationAsOwner(ctx context.Context, reservationID, ownerToken string) (*reservations.Reservation, error) {
	request := getReservationRequest{
		Type:          "get_reservation",
		ReservationID: reservationID,
		OwnerToken:    ownerToken,
		ViewMode:      ViewModeCustomer,
	}

	var response reservations.Reservation
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// RetrieveReservationAsRestaurant fetches a reservation as restaurant staff.
func (c *Client) RetrieveReservationAsRestaurant(ctx context.Context, accessToken, reservationID string) (*reservations.Reservation, error) {
	request := getReservationRequest{
		Type:          "get_reservation",
		AccessToken:   accessToken,
		ReservationID: reservationID,
		ViewMode:      ViewModeRestaurant,
	}

	var response reservations.Reservation
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// RetrieveUnhandledReservations fetches all reservations awaiting a
// decision.
func (c *Client) RetrieveUnhandledReservations(ctx context.Context, accessToken, restaurantID string) ([]*reservations.Reservation, error) {
	request := queryUnhandledReservationsRequest{
		Type:         "query_unhandled_reservations",
		AccessToken:  accessToken,
		RestaurantID: restaurantID,
		ViewMode:     ViewModeRestaurant,
	}

	var response reservationsResponse
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

// SetReservationStatusAsRestaurant updates a reservation's status as
// restaurant staff.
func (c *Client) SetReservationStatusAsRestaurant(ctx context.Context, accessToken, reservationID, status, comment string) (*reservations.Reservation, error) {
	request := setReservationStatusRequest{
		Type:          "set_reservation_status",
		AccessToken:   accessToken,
		ReservationID: reservationID,
		Status:        status,
		ActingAs:      ViewModeRestaurant,
		Comment:       comment,
	}

	var response reservations.Reservation
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SetReservationStatusAsOwner updates a reservation's status as its owner.
func (c *Client) SetReservationStatusAsOwner(ctx context.Context, ownerToken, reservationID, status, comment string) (*reservations.Reservation, error) {
	request := setReservationStatusRequest{
		Type:          "set_reservation_status",
		OwnerToken:    ownerToken,
		ReservationID: reservationID,
		Status:        status,
		ActingAs:      ViewModeCustomer,
		Comment:       comment,
	}

	var response reservations.Reservation
	if err := c.call(ctx, request.Type, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
