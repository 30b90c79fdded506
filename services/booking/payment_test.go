package booking

import (
	"context"
	"crypto/aes"
	"encoding/base64"
	"testing"

	"crickbox/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormPostGateway(t *testing.T) {
	ctx := context.Background()
	gateway := NewFormPostGateway("https://pay.example.com/submit", "CB001", "merchant-secret")

	req := models.PaymentRequest{
		BookingID:     "bk-1",
		Amount:        1600,
		ContactNumber: "9876543210",
	}

	t.Run("payload carries redirect material", func(t *testing.T) {
		payload, err := gateway.InitiatePayment(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, "https://pay.example.com/submit", payload.SPURL)
		assert.Equal(t, "CB001", payload.ClientCode)
		assert.Equal(t, "bk-1", payload.BookingID)
		assert.NotEmpty(t, payload.EncData)
	})

	t.Run("encData is iv plus whole cipher blocks", func(t *testing.T) {
		payload, err := gateway.InitiatePayment(ctx, req)
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(payload.EncData)
		require.NoError(t, err)
		assert.Greater(t, len(raw), aes.BlockSize)
		assert.Zero(t, len(raw)%aes.BlockSize)
	})

	t.Run("fresh iv per initiation", func(t *testing.T) {
		a, err := gateway.InitiatePayment(ctx, req)
		require.NoError(t, err)
		b, err := gateway.InitiatePayment(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, a.EncData, b.EncData)
	})

	t.Run("unconfigured gateway fails payment init", func(t *testing.T) {
		bare := NewFormPostGateway("", "", "")
		_, err := bare.InitiatePayment(ctx, req)
		assert.Equal(t, CodePaymentInit, ErrorCode(err))
	})

	t.Run("invalid request fails payment init", func(t *testing.T) {
		_, err := gateway.InitiatePayment(ctx, models.PaymentRequest{BookingID: "bk-1", Amount: 0})
		assert.Equal(t, CodePaymentInit, ErrorCode(err))
	})
}

func TestPkcs7Pad(t *testing.T) {
	padded := pkcs7Pad([]byte("abc"), 16)
	assert.Len(t, padded, 16)
	assert.Equal(t, byte(13), padded[15])

	// already aligned input gains a full padding block
	padded = pkcs7Pad(make([]byte, 16), 16)
	assert.Len(t, padded, 32)
	assert.Equal(t, byte(16), padded[31])
}
