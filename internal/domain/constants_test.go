package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{PaymentInitiated, PaymentPending, true},
		{PaymentInitiated, PaymentPaid, true},
		{PaymentInitiated, PaymentFailed, true},
		{PaymentInitiated, PaymentExpired, true},
		{PaymentPending, PaymentPaid, true},
		{PaymentPending, PaymentFailed, true},
		{PaymentPending, PaymentExpired, true},
		// never backwards
		{PaymentPending, PaymentInitiated, false},
		{PaymentPaid, PaymentPending, false},
		// terminal states are sticky
		{PaymentPaid, PaymentFailed, false},
		{PaymentPaid, PaymentExpired, false},
		{PaymentFailed, PaymentPaid, false},
		{PaymentExpired, PaymentPaid, false},
		// self transition is a no-op
		{PaymentPaid, PaymentPaid, false},
		{PaymentPending, PaymentPending, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TransitionAllowed(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}
