package prober

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strconv"
	"time"
)

const (
	HeaderConsID    = "X-cons-id"
	HeaderTimestamp = "X-timestamp"
	HeaderSignature = "X-signature"
	HeaderUserKey   = "user_key"
)

// Signer produces authentication headers for the signed API.
// Sign must be called once per outgoing request since the timestamp is part of the signature.
type Signer interface {
	Sign(header http.Header)
}

type hmacSigner struct {
	consID    string
	secretKey string
	userKey   string
	now       func() time.Time
}

func (s *hmacSigner) Sign(header http.Header) {
	ts := strconv.FormatInt(s.now().Unix(), 10)
	header.Set(HeaderConsID, s.consID)
	header.Set(HeaderTimestamp, ts)
	header.Set(HeaderSignature, Signature(s.consID, ts, s.secretKey))
	if s.userKey != "" {
		header.Set(HeaderUserKey, s.userKey)
	}
	header.Set("Content-Type", "application/json")
}

// Signature returns base64(HMAC-SHA256(consID&timestamp, secretKey)).
func Signature(consID, timestamp, secretKey string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(consID + "&" + timestamp))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// NewSigner returns nil when credentials are missing, which disables signing.
func NewSigner(consID, secretKey, userKey string, now func() time.Time) Signer {
	if consID == "" || secretKey == "" {
		return nil
	}
	if now == nil {
		now = time.Now
	}
	return &hmacSigner{
		consID:    consID,
		secretKey: secretKey,
		userKey:   userKey,
		now:       now,
	}
}
