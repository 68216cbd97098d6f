package transfer

// BillingEvent is the payment provider's webhook envelope, trimmed to the
// fields the billing sync consumes.
type BillingEvent struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object struct {
			ID                 string `json:"id"`
			Customer           string `json:"customer"`
			Subscription       string `json:"subscription"`
			Status             string `json:"status"`
			CurrentPeriodStart int64  `json:"current_period_start"`
			CurrentPeriodEnd   int64  `json:"current_period_end"`
			Items              struct {
				Data []struct {
					Price struct {
						LookupKey string `json:"lookup_key"`
					} `json:"price"`
				} `json:"data"`
			} `json:"items"`
			Metadata struct {
				BusinessID string `json:"business_id"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
	EventInvoicePaid         = "invoice.paid"
	EventInvoiceFailed       = "invoice.payment_failed"
)
