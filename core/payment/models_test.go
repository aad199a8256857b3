package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPayment_Validate(t *testing.T) {
	np := NewPayment{StudentID: "s1001", Amount: 5000, PaymentMode: ModeCash}
	assert.NoError(t, np.Validate())

	tests := []struct {
		name string
		data NewPayment
	}{
		{"missing student", NewPayment{Amount: 5000, PaymentMode: ModeCash}},
		{"zero amount", NewPayment{StudentID: "s1", PaymentMode: ModeCash}},
		{"negative amount", NewPayment{StudentID: "s1", Amount: -100, PaymentMode: ModeCash}},
		{"bad mode", NewPayment{StudentID: "s1", Amount: 100, PaymentMode: "barter"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.data.Validate())
		})
	}
}

func TestNewReceiptNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		rcpt := NewReceiptNumber()

		assert.True(t, strings.HasPrefix(rcpt, "RCP-"), "got %q", rcpt)
		assert.Len(t, rcpt, len("RCP-")+12)
		assert.Equal(t, strings.ToUpper(rcpt), rcpt)

		assert.False(t, seen[rcpt], "receipt numbers must not repeat: %q", rcpt)
		seen[rcpt] = true
	}
}
