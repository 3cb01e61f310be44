package checkout

import (
	"context"
	"errors"
	"testing"
	"urbankicks/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() Form {
	return Form{
		CustomerInfo: domain.CustomerInfo{
			FullName: "Asha Rao",
			Email:    "asha@example.com",
		},
		ShippingAddress: domain.Address{
			Street:  "14 Lake View Rd",
			City:    "Pune",
			State:   "MH",
			Zip:     "411001",
			Country: "India",
		},
		SameAsShipping: true,
		Items: []domain.CartItem{
			{ProductID: 1, Title: "Street Runner", Price: 650, Quantity: 2, Size: "10"},
		},
		ShippingMethod: ShippingStandard,
		PaymentInfo: domain.PaymentInfo{
			Method:     PaymentCreditCard,
			NameOnCard: "Asha Rao",
			CardNumber: "4111111111111111",
			Expiry:     "08/27",
			CVV:        "123",
		},
		AgreedToTerms: true,
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	form := validForm()
	assert.NoError(t, form.Validate())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *Form)
		wantErr string
	}{
		{
			name:    "terms not agreed",
			mutate:  func(f *Form) { f.AgreedToTerms = false },
			wantErr: "please agree to the terms and conditions",
		},
		{
			name:    "missing name",
			mutate:  func(f *Form) { f.CustomerInfo.FullName = "" },
			wantErr: "please enter a valid name and email",
		},
		{
			name:    "malformed email",
			mutate:  func(f *Form) { f.CustomerInfo.Email = "asha@" },
			wantErr: "please enter a valid name and email",
		},
		{
			name:    "incomplete shipping address",
			mutate:  func(f *Form) { f.ShippingAddress.Zip = "" },
			wantErr: "please fill out all required shipping address fields",
		},
		{
			name: "separate billing address incomplete",
			mutate: func(f *Form) {
				f.SameAsShipping = false
				f.BillingAddress = domain.Address{Street: "1 Main St"}
			},
			wantErr: "please fill out all required billing address fields",
		},
		{
			name:    "short card number",
			mutate:  func(f *Form) { f.PaymentInfo.CardNumber = "4111" },
			wantErr: "please enter valid credit card details",
		},
		{
			name:    "invalid expiry month",
			mutate:  func(f *Form) { f.PaymentInfo.Expiry = "13/27" },
			wantErr: "please enter valid credit card details",
		},
		{
			name:    "bad cvv",
			mutate:  func(f *Form) { f.PaymentInfo.CVV = "12" },
			wantErr: "please enter valid credit card details",
		},
		{
			name: "bad upi id",
			mutate: func(f *Form) {
				f.PaymentInfo = domain.PaymentInfo{Method: PaymentUPI, UPIID: "no-handle"}
			},
			wantErr: "please enter a valid UPI ID (e.g. name@bank)",
		},
		{
			name: "bad paypal email",
			mutate: func(f *Form) {
				f.PaymentInfo = domain.PaymentInfo{Method: PaymentPayPal, PayPalEmail: "not-an-email"}
			},
			wantErr: "please enter a valid PayPal email",
		},
		{
			name:    "unknown payment method",
			mutate:  func(f *Form) { f.PaymentInfo.Method = "Cheque" },
			wantErr: "please select a valid payment method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := form.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateAcceptsUPIAndPayPal(t *testing.T) {
	form := validForm()
	form.PaymentInfo = domain.PaymentInfo{Method: PaymentUPI, UPIID: "asha@okbank"}
	assert.NoError(t, form.Validate())

	form.PaymentInfo = domain.PaymentInfo{Method: PaymentPayPal, PayPalEmail: "asha@example.com"}
	assert.NoError(t, form.Validate())

	form.PaymentInfo = domain.PaymentInfo{Method: PaymentCreditCard, NameOnCard: "Asha Rao", CardNumber: "4111111111111111", Expiry: "01/30", CVV: "1234"}
	assert.NoError(t, form.Validate())
}

func TestBuildOrderCollapsesBillingOntoShipping(t *testing.T) {
	form := validForm()

	order := form.BuildOrder()

	assert.Equal(t, form.ShippingAddress, order.BillingAddress)
	require.Len(t, order.Items, 1)
	assert.Equal(t, uint64(1), order.Items[0].ProductID)
	assert.Equal(t, 1454.0, order.Totals.Total)
}

func TestBuildOrderKeepsSeparateBillingAddress(t *testing.T) {
	form := validForm()
	form.SameAsShipping = false
	form.BillingAddress = domain.Address{
		Street:  "88 Hill St",
		City:    "Mumbai",
		State:   "MH",
		Zip:     "400001",
		Country: "India",
	}

	order := form.BuildOrder()

	assert.Equal(t, "88 Hill St", order.BillingAddress.Street)
	assert.NotEqual(t, order.ShippingAddress, order.BillingAddress)
}

type fakePlacer struct {
	placeFn func(ctx context.Context, order domain.Order) (Confirmation, error)
}

func (f *fakePlacer) PlaceOrder(ctx context.Context, order domain.Order) (Confirmation, error) {
	return f.placeFn(ctx, order)
}

func TestSubmitPlacesValidOrder(t *testing.T) {
	var placed domain.Order
	svc := NewService(&fakePlacer{
		placeFn: func(ctx context.Context, order domain.Order) (Confirmation, error) {
			placed = order
			return Confirmation{OrderID: "abc-123", ShippingAddress: order.ShippingAddress, Total: order.Totals.Total}, nil
		},
	})

	form := validForm()
	confirmation, err := svc.Submit(context.Background(), &form)

	require.NoError(t, err)
	assert.Equal(t, "abc-123", confirmation.OrderID)
	assert.Equal(t, 1454.0, confirmation.Total)
	assert.Equal(t, form.ShippingAddress, placed.ShippingAddress)
}

func TestSubmitRejectsInvalidFormWithoutPlacing(t *testing.T) {
	called := false
	svc := NewService(&fakePlacer{
		placeFn: func(ctx context.Context, order domain.Order) (Confirmation, error) {
			called = true
			return Confirmation{}, nil
		},
	})

	form := validForm()
	form.AgreedToTerms = false

	_, err := svc.Submit(context.Background(), &form)

	require.Error(t, err)
	assert.False(t, called)
}

func TestSubmitWrapsPlacerError(t *testing.T) {
	svc := NewService(&fakePlacer{
		placeFn: func(ctx context.Context, order domain.Order) (Confirmation, error) {
			return Confirmation{}, errors.New("connection refused")
		},
	})

	form := validForm()
	_, err := svc.Submit(context.Background(), &form)

	require.Error(t, err)
	assert.Equal(t, "failed to place order, please try again", err.Error())
	assert.True(t, form.AgreedToTerms)
	assert.Len(t, form.Items, 1)
}
