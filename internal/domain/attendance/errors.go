package attendance

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("an open session already exists for today")
	ErrNoOpenSession    = errors.New("no open session to act on")
	ErrRecordNotFound   = errors.New("attendance record not found")
)
