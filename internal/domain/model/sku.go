package model

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

// SKU format: ECO-XXX-NNNNNN where XXX is three A-Z/0-9 characters
// derived from the product name and NNNNNN is a six digit number.
var skuPattern = regexp.MustCompile(`^ECO-[A-Z0-9]{3}-\d{6}$`)

// GenerateSKU builds a new SKU from a product name.
// Names shorter than three usable characters are padded with X.
func GenerateSKU(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if b.Len() == 3 {
			break
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	for b.Len() < 3 {
		b.WriteByte('X')
	}

	return fmt.Sprintf("ECO-%s-%06d", b.String(), rand.Intn(1_000_000))
}

// IsValidSKU reports whether s matches the SKU format exactly.
func IsValidSKU(s string) bool {
	return skuPattern.MatchString(s)
}
