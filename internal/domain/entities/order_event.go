package entities

import (
	"fmt"
	"time"
)

// Order lifecycle statuses recognized by the analytics receiver. Other gateway
// states (refunds, chargebacks) are deliberately not forwarded.
const (
	OrderStatusWaitingPayment = "waiting_payment"
	OrderStatusPaid           = "paid"
)

// EventTime serializes as the receiver's "YYYY-MM-DD HH:MM:SS" UTC layout.
type EventTime struct {
	time.Time
}

const eventTimeLayout = "2006-01-02 15:04:05"

func NewEventTime(t time.Time) *EventTime {
	return &EventTime{Time: t.UTC()}
}

func (t EventTime) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.UTC().Format(eventTimeLayout))), nil
}

func (t *EventTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.Parse(eventTimeLayout, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// OrderCustomer is the customer sub-record of an analytics order event.
type OrderCustomer struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Document *string `json:"document"`
	Country  string  `json:"country"`
	IP       string  `json:"ip"`
}

// OrderProduct describes the single promotional bundle sold by the storefront.
type OrderProduct struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PlanID       *string `json:"planId"`
	PlanName     *string `json:"planName"`
	Quantity     int     `json:"quantity"`
	PriceInCents int     `json:"priceInCents"`
}

// TrackingParameters carries attribution values copied from the storefront
// request query string. All fields are nullable.
type TrackingParameters struct {
	Src         *string `json:"src"`
	Sck         *string `json:"sck"`
	UTMSource   *string `json:"utm_source"`
	UTMCampaign *string `json:"utm_campaign"`
	UTMMedium   *string `json:"utm_medium"`
	UTMContent  *string `json:"utm_content"`
	UTMTerm     *string `json:"utm_term"`
}

// OrderEvent is the order-state payload delivered to the analytics receiver.
type OrderEvent struct {
	OrderID            string             `json:"orderId"`
	Platform           string             `json:"platform"`
	PaymentMethod      string             `json:"paymentMethod"`
	Status             string             `json:"status"`
	CreatedAt          *EventTime         `json:"createdAt"`
	ApprovedDate       *EventTime         `json:"approvedDate"`
	RefundedAt         *EventTime         `json:"refundedAt"`
	Customer           OrderCustomer      `json:"customer"`
	Products           []OrderProduct     `json:"products"`
	TrackingParameters TrackingParameters `json:"trackingParameters"`
	Commission         Commission         `json:"commission"`
	IsTest             bool               `json:"isTest"`
}

// BundleProduct builds the fixed single-item product list for a total in cents.
func BundleProduct(priceInCents int) []OrderProduct {
	return []OrderProduct{{
		ID:           ProductID,
		Name:         ProductName,
		Quantity:     1,
		PriceInCents: priceInCents,
	}}
}
