package notebook

import (
	"strings"

	"github.com/maruel/natural"
)

// CompareNames orders item names the way people read them: case-insensitive,
// with digit runs compared by value ("item2" before "item10"). Names that are
// equal under that rule fall back to a byte-wise comparison so the order is
// total.
func CompareNames(a, b string) int {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	switch {
	case natural.Less(la, lb):
		return -1
	case natural.Less(lb, la):
		return 1
	}
	return strings.Compare(a, b)
}
