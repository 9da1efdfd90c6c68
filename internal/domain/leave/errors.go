package leave

import "errors"

var (
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrPolicyNotFound      = errors.New("leave policy not found")
	ErrAlreadyProcessed    = errors.New("leave request already processed")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
	ErrInProbation         = errors.New("probation period not completed")
	ErrExceedsMaxDays      = errors.New("request exceeds the maximum days allowed per request")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrUnknownCategory     = errors.New("unknown leave category")
)
