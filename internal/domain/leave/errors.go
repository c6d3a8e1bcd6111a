package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("Leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("Leave request already processed")
	ErrInvalidStatus                = errors.New("Invalid leave status")
	ErrInvalidTransition            = errors.New("Leave status transition not allowed")
	ErrRelieverRequired             = errors.New("Please select a reliever before approving")
	ErrUnknownReliever              = errors.New("Reliever is not on the roster")
	ErrNotRequestOwner              = errors.New("Leave request belongs to another user")
	ErrInvalidDateRange             = errors.New("fromDate must not be after toDate")
)
