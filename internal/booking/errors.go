package booking

import "fmt"

// ValidationError reports malformed or missing reservation input. It is
// raised before any storage access and carries a user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports that a valid reservation collides with existing
// reservations for the same salon and date.
type ConflictError struct {
	Salon   string
	Start   string
	End     string
	Windows []string // deduplicated "HH:MM - HH:MM" labels, sorted by start
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s salonunda %s - %s saatleri için başka bir rezervasyon bulundu (%s).",
		e.Salon, e.Start, e.End, joinWindows(e.Windows))
}

func joinWindows(windows []string) string {
	out := ""
	for i, w := range windows {
		if i > 0 {
			out += ", "
		}
		out += w
	}
	return out
}

// StorageError wraps a persistence failure surfaced from the repository.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("Rezervasyon kaydedilemedi: %v", e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
