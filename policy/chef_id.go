package policy

import (
	"fmt"
	"math/rand"
)

// NewChefID generates a chef identifier of the form "chef-" followed by a
// random 4-digit number in [1000, 9999]. Collisions across the 9000 possible
// values are not guarded against.
func NewChefID() string {
	return fmt.Sprintf("chef-%d", 1000+rand.Intn(9000))
}
