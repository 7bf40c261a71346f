package services

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

// TokenPrefix starts every issued token.
const TokenPrefix = "token_"

// tokenRandBytes is hex encoded, so the random part is twice as long.
const tokenRandBytes = 5

// NewToken returns an opaque display token of the form
// token_<random hex>_<unix milliseconds>. Nothing ever verifies it.
func NewToken(now time.Time) (string, error) {
	r, err := common.MakeRandHexString(tokenRandBytes)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s_%d", TokenPrefix, r, now.UnixMilli()), nil
}
