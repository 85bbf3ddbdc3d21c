package models

import "github.com/google/uuid"

// CheckOwner сравнивает UID вызывающего и владельца ресурса как UUID.
// Несовпадение или некорректный UID возвращают ErrForbidden.
func CheckOwner(callerUID, targetUID string) error {
	caller, err := uuid.Parse(callerUID)
	if err != nil {
		return ErrForbidden
	}
	target, err := uuid.Parse(targetUID)
	if err != nil || caller != target {
		return ErrForbidden
	}
	return nil
}
