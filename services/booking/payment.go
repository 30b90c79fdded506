package booking

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"crickbox/models"
	"crickbox/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/pbkdf2"
)

// FormPostGateway produces the form-post handoff payload for the external
// payment processor: the request parameters are sealed into encData and
// travel as a POST body together with the client code.
type FormPostGateway struct {
	SPURL      string
	ClientCode string
	Secret     string
}

func NewFormPostGateway(spURL, clientCode, secret string) *FormPostGateway {
	return &FormPostGateway{SPURL: spURL, ClientCode: clientCode, Secret: secret}
}

func (g *FormPostGateway) InitiatePayment(ctx context.Context, req models.PaymentRequest) (*models.HandoffPayload, error) {
	if req.BookingID == "" || req.Amount <= 0 {
		return nil, NewPaymentInitError("invalid payment request")
	}
	if g.SPURL == "" || g.ClientCode == "" || g.Secret == "" {
		return nil, NewPaymentInitError("payment gateway is not configured")
	}

	values := url.Values{}
	values.Set("bookingId", req.BookingID)
	values.Set("amount", strconv.FormatFloat(req.Amount, 'f', 2, 64))
	values.Set("contact", req.ContactNumber)
	values.Set("ts", strconv.FormatInt(time.Now().Unix(), 10))

	encData, err := g.seal(values.Encode())
	if err != nil {
		return nil, NewPaymentInitError(fmt.Sprintf("failed to seal gateway payload: %v", err))
	}

	utils.GetLogger().Info("payment initiated",
		zap.String("bookingID", req.BookingID), zap.Float64("amount", req.Amount))

	return &models.HandoffPayload{
		SPURL:      g.SPURL,
		EncData:    encData,
		ClientCode: g.ClientCode,
		BookingID:  req.BookingID,
	}, nil
}

// seal encrypts the plaintext parameters with AES-CBC under a key derived
// from the merchant secret, IV prepended, base64 encoded.
func (g *FormPostGateway) seal(plain string) (string, error) {
	key := pbkdf2.Key([]byte(g.Secret), []byte(g.ClientCode), 4096, 32, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plain), aes.BlockSize)
	sealed := make([]byte, len(iv)+len(padded))
	copy(sealed, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(sealed[len(iv):], padded)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	pad := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+pad)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(pad)
	}
	return padded
}
