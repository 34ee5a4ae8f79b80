package tableside

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/customers"
	"tableside/menu"
	"tableside/money"
	"tableside/orders"
)

// flakyTransport fails the first n round trips at the transport level, then
// delegates to handler.
type flakyTransport struct {
	failures int
	calls    int
	handler  func(req *http.Request) *http.Response
}

func (t *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	if t.calls <= t.failures {
		return nil, errors.New("connection reset by peer")
	}
	return t.handler(req), nil
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func okHandler(data string) func(req *http.Request) *http.Response {
	return func(req *http.Request) *http.Response {
		return jsonResponse(fmt.Sprintf(`{"ok":true,"data":%s}`, data))
	}
}

func clientWithTransport(t *testing.T, transport http.RoundTripper, retries int) *Client {
	t.Helper()
	return NewClient(
		Config{APIURL: "http://api.test/v2", Retries: retries},
		WithHTTPClient(&http.Client{Transport: transport}),
	)
}

func TestRetriesExhaustedYieldsCommunicationError(t *testing.T) {
	transport := &flakyTransport{failures: 100}
	client := clientWithTransport(t, transport, 2)

	_, err := client.Search(context.Background(), Filter{}, 10)
	require.Error(t, err)

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, KindCommunication, typed.Kind)
	assert.ErrorContains(t, typed.Unwrap(), "connection reset")

	// Exactly retries+1 attempts.
	assert.Equal(t, 3, transport.calls)
}

func TestSuccessAfterTransientFailures(t *testing.T) {
	transport := &flakyTransport{failures: 2, handler: okHandler(`{"results":[]}`)}
	client := clientWithTransport(t, transport, 3)

	results, err := client.Search(context.Background(), Filter{}, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 3, transport.calls)
}

func TestZeroRetriesMeansSingleAttempt(t *testing.T) {
	transport := &flakyTransport{failures: 100}
	client := clientWithTransport(t, transport, 0)

	_, err := client.Search(context.Background(), Filter{}, 10)
	require.Error(t, err)
	assert.Equal(t, 1, transport.calls)
}

func TestErrorEnvelopeIsNeverRetried(t *testing.T) {
	transport := &flakyTransport{handler: func(req *http.Request) *http.Response {
		return jsonResponse(fmt.Sprintf(`{"ok":false,"error":{"code":%q,"message":"try later"}}`,
			ErrCodeTemporarilyUnavailable))
	}}
	client := clientWithTransport(t, transport, 5)

	_, err := client.Search(context.Background(), Filter{}, 10)
	require.Error(t, err)

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, KindTemporarilyUnavailable, typed.Kind)

	// The envelope is authoritative: one attempt, no retries.
	assert.Equal(t, 1, transport.calls)
}

func TestErrorTranslation(t *testing.T) {
	tests := []struct {
		code string
		want Kind
	}{
		{ErrCodeInvalidData, KindInvalidData},
		{ErrCodeNoPermission, KindNoPermission},
		{ErrCodeInternal, KindInternal},
		{ErrCodeNotFound, KindNotFound},
		{ErrCodeDeprecated, KindDeprecated},
		{ErrCodeCannotSubmitOrder, KindCannotSubmitOrder},
		{ErrCodeOutOfStock, KindOutOfStock},
		{ErrCodePaymentRejected, KindPaymentRejected},
	}

	for _, tc := range tests {
		transport := &flakyTransport{handler: func(req *http.Request) *http.Response {
			return jsonResponse(fmt.Sprintf(`{"ok":false,"error":{"code":%q,"message":"boom"}}`, tc.code))
		}}
		client := clientWithTransport(t, transport, 0)

		_, err := client.Search(context.Background(), Filter{}, 1)
		var typed *Error
		require.ErrorAs(t, err, &typed, tc.code)
		assert.Equal(t, tc.want, typed.Kind, tc.code)
		assert.Equal(t, tc.code, typed.Code)
		assert.Equal(t, "boom", typed.Message)
	}
}

func TestUnknownErrorCodeSurfacesVerbatim(t *testing.T) {
	const newCode = "https://www.tableside.dev/errors/something_new"
	transport := &flakyTransport{handler: func(req *http.Request) *http.Response {
		return jsonResponse(fmt.Sprintf(`{"ok":false,"error":{"code":%q,"message":"future failure"}}`, newCode))
	}}
	client := clientWithTransport(t, transport, 0)

	_, err := client.Search(context.Background(), Filter{}, 1)
	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, KindUnknown, typed.Kind)
	assert.Equal(t, newCode, typed.Code)
	assert.Equal(t, "future failure", typed.Message)
}

func TestMalformedEnvelopeIsNotRetried(t *testing.T) {
	transport := &flakyTransport{handler: func(req *http.Request) *http.Response {
		return jsonResponse(`<html>gateway error</html>`)
	}}
	client := clientWithTransport(t, transport, 4)

	_, err := client.Search(context.Background(), Filter{}, 1)
	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, KindCommunication, typed.Kind)
	assert.Equal(t, 1, transport.calls)
}

func TestContextCancellationStopsRetrying(t *testing.T) {
	transport := &flakyTransport{failures: 100}
	client := clientWithTransport(t, transport, 50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, Filter{}, 1)
	require.Error(t, err)
	assert.Less(t, transport.calls, 50)
}

func TestRequestHeadersAndBody(t *testing.T) {
	var captured *http.Request
	var capturedBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		capturedBody, _ = io.ReadAll(r.Body)
		fmt.Fprint(w, `{"ok":true,"data":{"results":[]}}`)
	}))
	defer server.Close()

	client := NewClient(Config{APIURL: server.URL})
	_, err := client.QueryOrders(context.Background(), "token-1", []string{"rest-1"},
		orders.StatusNew, OrderingAsc, 100)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.NotEmpty(t, captured.Header.Get("X-Request-ID"))

	var request map[string]any
	require.NoError(t, json.Unmarshal(capturedBody, &request))
	assert.Equal(t, "query_orders", request["type"])
	assert.Equal(t, "token-1", request["accessToken"])
	assert.Equal(t, "restaurant", request["viewMode"])
	assert.Equal(t, "new", request["status"])
}

func buildTestOrder(t *testing.T) *orders.Order {
	t.Helper()

	variation := menu.Variation{
		ID:      "size",
		ItemIDs: []string{"small", "large"},
		Prices:  map[string]money.Amount{"large": 300},
	}
	coke := menu.Item{ID: "coke", Variations: []menu.Variation{variation}}
	large := menu.Item{ID: "large", Price: 1100}
	carpaccio := menu.Item{ID: "carpaccio", Price: 5900}

	choice, err := orders.NewChoiceBuilder(&large, &variation).Build()
	require.NoError(t, err)
	cokeItem, err := orders.NewItemBuilder(&coke).AddChoice(0, choice).Build()
	require.NoError(t, err)
	carpaccioItem, err := orders.NewItemBuilder(&carpaccio).Comment("extra cheese").Build()
	require.NoError(t, err)

	return orders.NewOrderBuilder().
		Developer("org.example").
		Restaurant("rest-1").
		Locale("en_US").
		Currency("USD").
		Contact(customers.NewContactBuilder().FirstName("John").Phone("+12024561111").Build()).
		Dispatch(orders.NewTakeoutBuilder().Build()).
		AddItem(carpaccioItem).
		AddItem(cokeItem).
		AddPayment(orders.NewCashPaymentBuilder().Amount(6200).Build()).
		Build()
}

func TestSubmitOrderRoundTrip(t *testing.T) {
	// The server echoes the submitted order with server-assigned fields;
	// everything the client sent must come back field-for-field equal.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request struct {
			Order *orders.Order `json:"order"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		request.Order.ID = "order-42"
		request.Order.Status = orders.StatusNew
		request.Order.OwnerToken = "owner-token-42"

		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"ok":   true,
			"data": map[string]any{"order": request.Order},
		}))
	}))
	defer server.Close()

	client := NewClient(Config{APIURL: server.URL})
	submitted := buildTestOrder(t)

	returned, err := client.SubmitOrder(context.Background(), "", submitted)
	require.NoError(t, err)

	assert.Equal(t, "order-42", returned.ID)
	assert.Equal(t, orders.StatusNew, returned.Status)
	assert.Equal(t, "owner-token-42", returned.OwnerToken)

	// Strip server-assigned fields and compare the rest to the original.
	echoed := *returned
	echoed.ID = ""
	echoed.Status = ""
	echoed.OwnerToken = ""
	assert.Equal(t, submitted, &echoed)
}
