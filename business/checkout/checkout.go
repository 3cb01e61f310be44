package checkout

import (
	"context"
	"errors"
	"regexp"
	"urbankicks/domain"
	"urbankicks/pkg/logger"
)

// Payment methods accepted at checkout.
const (
	PaymentCreditCard = "Credit Card"
	PaymentUPI        = "UPI"
	PaymentPayPal     = "PayPal"
)

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
	upiRe        = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)
)

// Form is everything the checkout page collects before submission.
type Form struct {
	CustomerInfo    domain.CustomerInfo
	ShippingAddress domain.Address
	BillingAddress  domain.Address
	SameAsShipping  bool
	Items           []domain.CartItem
	ShippingMethod  string
	PaymentInfo     domain.PaymentInfo
	PromoCode       string
	AgreedToTerms   bool
}

// Validate runs the full pre-submission rule set and returns the first
// failure, mirroring the order the form checks them in.
func (f *Form) Validate() error {
	if !f.AgreedToTerms {
		return errors.New("please agree to the terms and conditions")
	}

	if f.CustomerInfo.FullName == "" || !emailRe.MatchString(f.CustomerInfo.Email) {
		return errors.New("please enter a valid name and email")
	}

	if !addressComplete(f.ShippingAddress) {
		return errors.New("please fill out all required shipping address fields")
	}

	if !f.SameAsShipping && !addressComplete(f.BillingAddress) {
		return errors.New("please fill out all required billing address fields")
	}

	switch f.PaymentInfo.Method {
	case PaymentCreditCard:
		if f.PaymentInfo.NameOnCard == "" ||
			!cardNumberRe.MatchString(f.PaymentInfo.CardNumber) ||
			!expiryRe.MatchString(f.PaymentInfo.Expiry) ||
			!cvvRe.MatchString(f.PaymentInfo.CVV) {
			return errors.New("please enter valid credit card details")
		}
	case PaymentUPI:
		if !upiRe.MatchString(f.PaymentInfo.UPIID) {
			return errors.New("please enter a valid UPI ID (e.g. name@bank)")
		}
	case PaymentPayPal:
		if !emailRe.MatchString(f.PaymentInfo.PayPalEmail) {
			return errors.New("please enter a valid PayPal email")
		}
	default:
		return errors.New("please select a valid payment method")
	}

	return nil
}

func addressComplete(a domain.Address) bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.Zip != "" && a.Country != ""
}

// BuildOrder assembles the order payload from the validated form. The
// billing address collapses onto shipping when flagged equal, and the
// item list is a snapshot priced right here.
func (f *Form) BuildOrder() domain.Order {
	billing := f.BillingAddress
	if f.SameAsShipping {
		billing = f.ShippingAddress
	}

	items := make([]domain.OrderItem, 0, len(f.Items))
	for _, it := range f.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
			Image:     it.Image,
		})
	}

	return domain.Order{
		CustomerInfo:    f.CustomerInfo,
		ShippingAddress: f.ShippingAddress,
		BillingAddress:  billing,
		Items:           items,
		ShippingMethod:  f.ShippingMethod,
		PaymentInfo:     f.PaymentInfo,
		PromoCode:       f.PromoCode,
		Totals:          ComputeTotals(f.Items, f.ShippingMethod, f.PromoCode),
	}
}

// Confirmation is what the shopper sees on the order-success page.
type Confirmation struct {
	OrderID         string
	ShippingAddress domain.Address
	Total           float64
}

// OrderPlacer submits an assembled order to the order service.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, order domain.Order) (Confirmation, error)
}

type Service struct {
	placer OrderPlacer
}

func NewService(placer OrderPlacer) *Service {
	return &Service{
		placer: placer,
	}
}

// Submit validates the form and places the order. On any error the form
// is left untouched so the shopper can correct and retry.
func (s *Service) Submit(ctx context.Context, form *Form) (Confirmation, error) {
	if err := form.Validate(); err != nil {
		return Confirmation{}, err
	}

	confirmation, err := s.placer.PlaceOrder(ctx, form.BuildOrder())
	if err != nil {
		logger.Error("Failed to place order", err)
		return Confirmation{}, errors.New("failed to place order, please try again")
	}

	return confirmation, nil
}
