package core

import (
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailMessage_Render_Receipt(t *testing.T) {
	msg := &EmailMessage{
		To:           []mail.Address{{Name: "Kiran Rao", Address: "kiran.rao@example.com"}},
		Subject:      "Payment received - RCP-ABC123DEF456",
		TemplateName: "receipt",
		TemplateData: struct {
			StudentName   string
			ReceiptNumber string
			Amount        string
			PaymentMode   string
			PaymentDate   string
			Outstanding   string
		}{
			StudentName:   "Kiran Rao",
			ReceiptNumber: "RCP-ABC123DEF456",
			Amount:        "5000.00",
			PaymentMode:   "online",
			PaymentDate:   "2026-08-29",
			Outstanding:   "10000.00",
		},
	}
	require.NoError(t, msg.Render())

	assert.True(t, msg.HasRecipients())
	assert.True(t, msg.HasContent())

	assert.Contains(t, msg.TextContent, "Hi Kiran Rao,")
	assert.Contains(t, msg.TextContent, "RCP-ABC123DEF456")
	assert.Contains(t, msg.TextContent, "5000.00")
	assert.Contains(t, msg.TextContent, Conf.AppName)
	assert.Contains(t, msg.HTMLContent, "<td>RCP-ABC123DEF456</td>")
}

func TestEmailMessage_Render_BodyStr(t *testing.T) {
	msg := &EmailMessage{
		To:      []mail.Address{{Address: "kiran.rao@example.com"}},
		Subject: "Hello",
		BodyStr: "plain content",
	}
	require.NoError(t, msg.Render())
	assert.Equal(t, "plain content", msg.TextContent)
	assert.Empty(t, msg.HTMLContent)
}

func TestEmailMessage_Render_UnknownTemplate(t *testing.T) {
	// an unknown template renders nothing, and the message never goes out
	msg := &EmailMessage{
		To:           []mail.Address{{Address: "kiran.rao@example.com"}},
		TemplateName: "nope",
	}
	require.NoError(t, msg.Render())
	assert.False(t, msg.HasContent())
}
