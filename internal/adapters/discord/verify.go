package discord

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
)

// ParsePublicKey decodes the application's hex-encoded ed25519 public
// key as published in the platform's developer portal.
func ParsePublicKey(hexKey string) (ed25519.PublicKey, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid public key encoding: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid public key length %d", len(key))
	}
	return ed25519.PublicKey(key), nil
}

// VerifyMiddleware authenticates webhook requests: the platform signs
// timestamp+body with the application's ed25519 key and the signature
// must verify before any payload is processed.
func VerifyMiddleware(publicKey ed25519.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			signature := r.Header.Get("X-Signature-Ed25519")
			timestamp := r.Header.Get("X-Signature-Timestamp")
			if signature == "" || timestamp == "" {
				http.Error(w, "missing request signature", http.StatusUnauthorized)
				return
			}

			sig, err := hex.DecodeString(signature)
			if err != nil || len(sig) != ed25519.SignatureSize {
				http.Error(w, "malformed request signature", http.StatusUnauthorized)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "failed to read request body", http.StatusBadRequest)
				return
			}
			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(body))

			signed := make([]byte, 0, len(timestamp)+len(body))
			signed = append(signed, timestamp...)
			signed = append(signed, body...)

			if !ed25519.Verify(publicKey, signed, sig) {
				http.Error(w, "invalid request signature", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
