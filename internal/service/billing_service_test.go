package service

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/maheshrc27/brandpulse/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func billingEvent(eventType, customer string) *transfer.BillingEvent {
	var e transfer.BillingEvent
	e.Type = eventType
	e.Data.Object.Customer = customer
	return &e
}

func TestBilling_CheckoutCompletedActivates(t *testing.T) {
	repo := newFakeBusinessRepo(&models.Business{ID: 7, SubscriptionTier: models.TierStarter})
	svc := NewBillingService(repo)

	e := billingEvent(transfer.EventCheckoutCompleted, "cus_123")
	e.Data.Object.Subscription = "sub_456"
	e.Data.Object.Metadata.BusinessID = "7"

	require.NoError(t, svc.HandleEvent(context.Background(), e))

	b := repo.businesses[7]
	assert.Equal(t, "cus_123", b.StripeCustomerID)
	assert.Equal(t, "sub_456", b.StripeSubscriptionID)
	assert.Equal(t, models.SubscriptionActive, b.SubscriptionStatus)
}

func TestBilling_SubscriptionUpdatedSetsTierAndPeriod(t *testing.T) {
	repo := newFakeBusinessRepo(&models.Business{
		ID:               7,
		SubscriptionTier: models.TierStarter,
		StripeCustomerID: "cus_123",
	})
	svc := NewBillingService(repo)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	e := billingEvent(transfer.EventSubscriptionUpdated, "cus_123")
	e.Data.Object.ID = "sub_789"
	e.Data.Object.Status = models.SubscriptionActive
	e.Data.Object.CurrentPeriodStart = start.Unix()
	e.Data.Object.CurrentPeriodEnd = end.Unix()
	e.Data.Object.Items.Data = []struct {
		Price struct {
			LookupKey string `json:"lookup_key"`
		} `json:"price"`
	}{{}}
	e.Data.Object.Items.Data[0].Price.LookupKey = models.TierProfessional

	require.NoError(t, svc.HandleEvent(context.Background(), e))

	b := repo.businesses[7]
	assert.Equal(t, models.TierProfessional, b.SubscriptionTier)
	assert.Equal(t, "sub_789", b.StripeSubscriptionID)
	assert.True(t, b.PeriodStart.Equal(start))
	assert.True(t, b.PeriodEnd.Equal(end))
}

func TestBilling_SubscriptionDeletedDowngradesToStarter(t *testing.T) {
	repo := newFakeBusinessRepo(&models.Business{
		ID:               7,
		SubscriptionTier: models.TierProfessional,
		StripeCustomerID: "cus_123",
	})
	svc := NewBillingService(repo)

	require.NoError(t, svc.HandleEvent(context.Background(), billingEvent(transfer.EventSubscriptionDeleted, "cus_123")))

	b := repo.businesses[7]
	assert.Equal(t, models.TierStarter, b.SubscriptionTier)
	assert.Equal(t, models.SubscriptionCanceled, b.SubscriptionStatus)
}

func TestBilling_InvoiceEventsFlipStatus(t *testing.T) {
	repo := newFakeBusinessRepo(&models.Business{ID: 7, StripeCustomerID: "cus_123"})
	svc := NewBillingService(repo)

	require.NoError(t, svc.HandleEvent(context.Background(), billingEvent(transfer.EventInvoiceFailed, "cus_123")))
	assert.Equal(t, models.SubscriptionPastDue, repo.statuses[7])

	require.NoError(t, svc.HandleEvent(context.Background(), billingEvent(transfer.EventInvoicePaid, "cus_123")))
	assert.Equal(t, models.SubscriptionActive, repo.statuses[7])
}

func TestBilling_UnknownEventAcknowledged(t *testing.T) {
	repo := newFakeBusinessRepo()
	svc := NewBillingService(repo)

	assert.NoError(t, svc.HandleEvent(context.Background(), billingEvent("charge.refunded", "cus_123")))
}

func TestBilling_UnknownCustomerAcknowledged(t *testing.T) {
	repo := newFakeBusinessRepo()
	svc := NewBillingService(repo)

	assert.NoError(t, svc.HandleEvent(context.Background(), billingEvent(transfer.EventSubscriptionUpdated, "cus_missing")))
}

func TestBilling_UnknownLookupKeyFallsBackToStarter(t *testing.T) {
	assert.Equal(t, models.TierStarter, tierFromLookupKey("enterprise_annual"))
	assert.Equal(t, models.TierProfessional, tierFromLookupKey(models.TierProfessional))
}
