// internal/domain/homework/homework.go
package homework

import "fmt"

// Record is a single homework entry as reported by the status API.
// Fields are pointers so a missing key can be told apart from an empty one.
type Record struct {
	Name   *string `json:"homework_name"`
	Status *string `json:"status"`
}

// FormatStatus renders the notification text for one record.
func FormatStatus(r Record) (string, error) {
	if r.Name == nil {
		return "", schemaError("key %q is missing", "homework_name")
	}
	if r.Status == nil {
		return "", schemaError("key %q is missing", "status")
	}

	verdict, ok := Verdict(*r.Status)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVerdict, *r.Status)
	}

	return fmt.Sprintf(`Status changed for work "%s". %s`, *r.Name, verdict), nil
}
