package tableside

import (
	"encoding/json"

	"tableside/orders"
	"tableside/reservations"
)

// Every request is a JSON object with a "type" discriminator, POSTed to the
// fixed API endpoint. Requests carry at most one of accessToken/ownerToken,
// depending on whether the caller acts as restaurant staff or as the
// submission's anonymous owner.

type getRestaurantRequest struct {
	Type         string `json:"type"`
	RestaurantID string `json:"organizationId"`
}

type submitOrderRequest struct {
	Type        string        `json:"type"`
	AccessToken string        `json:"accessToken,omitempty"`
	Order       *orders.Order `json:"order"`
}

type getOrderRequest struct {
	Type        string `json:"type"`
	AccessToken string `json:"accessToken,omitempty"`
	OwnerToken  string `json:"ownerToken,omitempty"`
	OrderID     string `json:"orderId"`
	ViewMode    string `json:"viewMode"`
}

type queryOrdersRequest struct {
	Type          string   `json:"type"`
	AccessToken   string   `json:"accessToken"`
	RestaurantIDs []string `json:"restaurantIds"`
	ViewMode      string   `json:"viewMode"`
	Status        string   `json:"status,omitempty"`
	Ordering      string   `json:"ordering,omitempty"`
	Limit         int      `json:"limit,omitempty"`
}

type setOrderStatusRequest struct {
	Type        string            `json:"type"`
	AccessToken string            `json:"accessToken"`
	OrderID     string            `json:"orderId"`
	Status      string            `json:"status"`
	ExternalIDs map[string]string `json:"externalIds,omitempty"`
	Comment     string            `json:"comment,omitempty"`
}

type searchRequest struct {
	Type   string `json:"type"`
	Filter Filter `json:"filter"`
	Limit  int    `json:"limit"`
}

type submitReservationRequest struct {
	Type        string                    `json:"type"`
	AccessToken string                    `json:"accessToken,omitempty"`
	Reservation *reservations.Reservation `json:"reservation"`
}

type getReservationRequest struct {
	Type          string `json:"type"`
	AccessToken   string `json:"accessToken,omitempty"`
	OwnerToken    string `json:"ownerToken,omitempty"`
	ReservationID string `json:"reservationId"`
	ViewMode      string `json:"viewMode"`
}

type queryUnhandledReservationsRequest struct {
	Type         string `json:"type"`
	AccessToken  string `json:"accessToken"`
	RestaurantID string `json:"organizationId"`
	ViewMode     string `json:"viewMode"`
}

type setReservationStatusRequest struct {
	Type          string `json:"type"`
	AccessToken   string `json:"accessToken,omitempty"`
	OwnerToken    string `json:"ownerToken,omitempty"`
	ReservationID string `json:"reservationId"`
	Status        string `json:"status"`
	ActingAs      string `json:"actingAs"`
	Comment       string `json:"comment,omitempty"`
}

// Response payloads.

type orderConfirmation struct {
	Order *orders.Order `json:"order"`
}

type ordersResponse struct {
	Results []*orders.Order `json:"results"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

type reservationsResponse struct {
	Results []*reservations.Reservation `json:"results"`
}

// Wire envelope: {"ok":true,"data":...} or {"ok":false,"error":{...}}.

type wireError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error *wireError      `json:"error,omitempty"`
}
