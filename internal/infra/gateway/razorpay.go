package gateway

import (
	"github.com/razorpay/razorpay-go/utils"
)

// RazorpayVerifier checks the X-Razorpay-Signature header of gateway webhooks.
type RazorpayVerifier struct {
	secret string
}

func NewRazorpayVerifier(secret string) *RazorpayVerifier {
	return &RazorpayVerifier{secret: secret}
}

func (v *RazorpayVerifier) Verify(body []byte, signature string) bool {
	if v.secret == "" || signature == "" {
		return false
	}
	return utils.VerifyWebhookSignature(string(body), signature, v.secret)
}
