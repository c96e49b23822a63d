package checkout

import (
	"crypto/rand"
	"math/big"
)

const (
	orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orderNumberLength   = 9
)

// NewOrderNumber generates a short opaque order token: nine uppercase
// base36 characters. Callers only rely on it being unique in practice.
func NewOrderNumber() string {
	max := big.NewInt(int64(len(orderNumberAlphabet)))
	out := make([]byte, orderNumberLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken.
			panic(err)
		}
		out[i] = orderNumberAlphabet[n.Int64()]
	}
	return string(out)
}
