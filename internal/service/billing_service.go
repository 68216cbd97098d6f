package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/maheshrc27/brandpulse/internal/models"
	"github.com/maheshrc27/brandpulse/internal/repository"
	"github.com/maheshrc27/brandpulse/internal/transfer"
)

type BillingService interface {
	HandleEvent(ctx context.Context, event *transfer.BillingEvent) error
}

type billingService struct {
	br repository.BusinessRepository
}

func NewBillingService(br repository.BusinessRepository) BillingService {
	return &billingService{br: br}
}

func tierFromLookupKey(key string) string {
	if key == models.TierProfessional {
		return models.TierProfessional
	}
	return models.TierStarter
}

// HandleEvent maps provider webhook deliveries to tier/status updates on
// the business row. Unknown event types are acknowledged and dropped.
func (s *billingService) HandleEvent(ctx context.Context, event *transfer.BillingEvent) error {
	obj := event.Data.Object

	switch event.Type {
	case transfer.EventCheckoutCompleted:
		businessID, err := strconv.ParseInt(obj.Metadata.BusinessID, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: checkout metadata has no business_id", ErrValidation)
		}

		business, isExist, err := s.br.GetByID(ctx, businessID)
		if err != nil {
			return err
		}
		if !isExist {
			return fmt.Errorf("business %d: %w", businessID, ErrNotFound)
		}

		business.StripeCustomerID = obj.Customer
		business.StripeSubscriptionID = obj.Subscription
		business.SubscriptionStatus = models.SubscriptionActive
		return s.br.UpdateSubscription(ctx, business)

	case transfer.EventSubscriptionUpdated:
		business, isExist, err := s.br.GetByStripeCustomer(ctx, obj.Customer)
		if err != nil {
			return err
		}
		if !isExist {
			slog.Info(fmt.Sprintf("billing: no business for customer %s", obj.Customer))
			return nil
		}

		if len(obj.Items.Data) > 0 {
			business.SubscriptionTier = tierFromLookupKey(obj.Items.Data[0].Price.LookupKey)
		}
		business.SubscriptionStatus = obj.Status
		business.StripeSubscriptionID = obj.ID
		business.PeriodStart = time.Unix(obj.CurrentPeriodStart, 0).UTC()
		business.PeriodEnd = time.Unix(obj.CurrentPeriodEnd, 0).UTC()
		return s.br.UpdateSubscription(ctx, business)

	case transfer.EventSubscriptionDeleted:
		business, isExist, err := s.br.GetByStripeCustomer(ctx, obj.Customer)
		if err != nil {
			return err
		}
		if !isExist {
			return nil
		}

		business.SubscriptionTier = models.TierStarter
		business.SubscriptionStatus = models.SubscriptionCanceled
		return s.br.UpdateSubscription(ctx, business)

	case transfer.EventInvoicePaid:
		business, isExist, err := s.br.GetByStripeCustomer(ctx, obj.Customer)
		if err != nil {
			return err
		}
		if !isExist {
			return nil
		}
		return s.br.UpdateStatus(ctx, business.ID, models.SubscriptionActive)

	case transfer.EventInvoiceFailed:
		business, isExist, err := s.br.GetByStripeCustomer(ctx, obj.Customer)
		if err != nil {
			return err
		}
		if !isExist {
			return nil
		}
		return s.br.UpdateStatus(ctx, business.ID, models.SubscriptionPastDue)
	}

	slog.Info(fmt.Sprintf("billing: ignoring event type %s", event.Type))
	return nil
}
