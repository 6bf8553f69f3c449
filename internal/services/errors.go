// Package services implements the business rules on top of the identity
// registry: the registration state machine and technician queries. This
// file centralizes the sentinel errors returned by service methods so the
// bot router and the HTTP layer can branch on them with errors.Is.
//
// AlreadyPending and AlreadyApproved are not failures from the end user's
// point of view; callers render them as informative status messages.
package services

import "errors"

var (
	// ErrAlreadyPending is returned when a chat id registers while a
	// pending registration for it already exists. The existing record is
	// returned alongside the error so retries observe the same id.
	ErrAlreadyPending = errors.New("registration already pending approval")

	// ErrAlreadyApproved is returned when a chat id registers but is
	// already linked to an approved technician.
	ErrAlreadyApproved = errors.New("already approved as technician")

	// ErrPendingNotFound is returned by Approve and Reject when no pending
	// registration carries the given id. The caller cannot distinguish
	// "already decided" from "never existed"; that keeps the operations
	// safe against double submission.
	ErrPendingNotFound = errors.New("pending registration not found")

	// ErrTechnicianNotFound is returned when a technician id does not
	// resolve to an approved technician.
	ErrTechnicianNotFound = errors.New("technician not found")
)
