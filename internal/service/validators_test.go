package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{
			name:    "valid amount",
			amount:  decimal.NewFromInt(1000),
			wantErr: false,
		},
		{
			name:    "fractional amount valid",
			amount:  decimal.RequireFromString("0.01"),
			wantErr: false,
		},
		{
			name:    "zero amount invalid",
			amount:  decimal.Zero,
			wantErr: true,
		},
		{
			name:    "negative amount invalid",
			amount:  decimal.NewFromInt(-100),
			wantErr: true,
		},
		{
			name:    "large valid amount",
			amount:  decimal.NewFromInt(2_000_000_000),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		wantErr  bool
	}{
		{
			name:     "valid currency",
			currency: "VND",
			wantErr:  false,
		},
		{
			name:     "another valid currency",
			currency: "USD",
			wantErr:  false,
		},
		{
			name:     "lowercase rejected",
			currency: "vnd",
			wantErr:  true,
		},
		{
			name:     "too short",
			currency: "VN",
			wantErr:  true,
		},
		{
			name:     "too long",
			currency: "DONG",
			wantErr:  true,
		},
		{
			name:     "empty",
			currency: "",
			wantErr:  true,
		},
		{
			name:     "digits rejected",
			currency: "V1D",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCurrency(tt.currency)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCardNumber(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		wantErr    bool
	}{
		{
			name:       "valid card number",
			cardNumber: "123456789012",
			wantErr:    false,
		},
		{
			name:       "too short",
			cardNumber: "12345678901",
			wantErr:    true,
		},
		{
			name:       "too long",
			cardNumber: "1234567890123",
			wantErr:    true,
		},
		{
			name:       "non-numeric",
			cardNumber: "12345678901a",
			wantErr:    true,
		},
		{
			name:       "empty",
			cardNumber: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCardNumber(tt.cardNumber)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
