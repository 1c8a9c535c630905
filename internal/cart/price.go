package cart

import "math"

// MockPrice derives a deterministic stand-in price from an item name:
// the character codes are summed, folded into a 0-15.9 range, offset
// by a 5.00 base, and rounded to cents. Identical names always price
// identically. This is a display placeholder, not a pricing service.
func MockPrice(name string) float64 {
	sum := 0
	for _, r := range name {
		sum += int(r)
	}
	price := 5 + float64(sum%160)/10
	return math.Round(price*100) / 100
}
