package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValidateBackupFields checks the top-level fields of a backup document.
// Only "subjects" is required and it must be an array; everything else is
// optional. Returns a slice of all validation errors found.
func ValidateBackupFields(fields map[string]json.RawMessage) []error {
	var errs []error

	raw, ok := fields["subjects"]
	switch {
	case !ok:
		errs = append(errs, fmt.Errorf("subjects is required"))
	case !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")):
		errs = append(errs, fmt.Errorf("subjects must be an array"))
	}

	return errs
}
