// Package savestore persists raw save documents by slot name, either as files
// on disk or as rows in PostgreSQL.
package savestore

import (
	"fmt"
	"regexp"

	"github.com/osse101/TextMaple_Go/internal/domain"
)

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateSlot rejects names that are empty, too long or could escape the save directory
func ValidateSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return fmt.Errorf(ErrMsgInvalidSlotFmt, slot, domain.ErrInvalidInput)
	}
	return nil
}
