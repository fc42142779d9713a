package request

import (
	"strings"
)

type ConfirmPayoutRequest struct {
	ProviderPaymentID string `json:"provider_payment_id" example:"1234567890"`
}

type FailPayoutRequest struct {
	Reason string `json:"reason" example:"recipient account closed"`
}

// PayoutWebhookRequest is the Mercado Pago notification body:
//
//	{"type":"payment","action":"payment.updated","data":{"id":"123"}}
type PayoutWebhookRequest struct {
	Type   string `json:"type" example:"payment"`
	Action string `json:"action" example:"payment.updated"`
	Data   struct {
		ID string `json:"id" example:"1234567890"`
	} `json:"data"`
}

// ResolvePaymentID picks the payment id from the body, falling back to the
// query parameters older notifications carry (?topic=payment&id=123 or
// ?type=payment&data.id=123). Non-payment notifications yield "".
func (r PayoutWebhookRequest) ResolvePaymentID(query func(string) string) string {
	kind := strings.TrimSpace(r.Type)
	if kind == "" {
		kind = strings.TrimSpace(query("type"))
	}
	if kind == "" {
		kind = strings.TrimSpace(query("topic"))
	}
	if kind != "" && kind != "payment" {
		return ""
	}
	for _, v := range []string{r.Data.ID, query("data.id"), query("id")} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
