package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveBillingStatus(t *testing.T) {
	cases := []struct {
		name       string
		amount     float64
		amountPaid float64
		want       string
	}{
		{"fully paid", 100, 100, BillingStatusPaid},
		{"overpaid", 100, 150, BillingStatusPaid},
		{"partial", 100, 40, BillingStatusPartial},
		// Nothing paid still derives Partial, never Pending: the derivation
		// has no Pending branch.
		{"nothing paid", 100, 0, BillingStatusPartial},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveBillingStatus(tc.amount, tc.amountPaid))
		})
	}
}
