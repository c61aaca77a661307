package errs

// Sentinels shared by the command and query sides
var (
	// Lookup errors
	ErrRoomNotFound        = New("room not found")
	ErrReservationNotFound = New("reservation not found")
	ErrUserNotFound        = New("user not found")

	// Access errors
	ErrForbidden = New("staff access required")

	// Validation errors
	ErrValidation = New("validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
