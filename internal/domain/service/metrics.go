package service

// RegistrationMetrics records workflow outcomes. Outcome labels are business
// error codes, or "OK" on success.
type RegistrationMetrics interface {
	ObserveSubmission(outcome string)
	ObserveConfirmation(outcome string)
	ObserveRejection(outcome string)
	ObserveExpired(count int64)
	ObserveDispatch(outcome string)
}
