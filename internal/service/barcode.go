package service

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// MintBarcode generates the customer-facing order identifier printed on the
// physical label: the current timestamp in milliseconds with a random
// three-digit suffix. Collisions are practically impossible at shop order
// rates but not provably so; the unique index on orders.barcode is the real
// backstop, and a collision surfaces as a conflict instead of being retried
// here.
func MintBarcode() string {
	return fmt.Sprintf("%d%d", time.Now().UnixMilli(), rand.IntN(1000))
}
