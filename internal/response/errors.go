package response

// ErrCode is a typed error code enum for consistent error identification.
type ErrCode string

const (
	// ─── Not found ─────────────────────────────────────────────────────
	ErrStudentNotFound ErrCode = "STUDENT_NOT_FOUND"
	ErrInvalidRoll     ErrCode = "INVALID_ROLL"
	ErrInvalidSubject  ErrCode = "INVALID_SUBJECT"
	ErrNoStudents      ErrCode = "NO_STUDENTS"
	ErrNoSubjects      ErrCode = "NO_SUBJECTS"

	// ─── Duplicate ─────────────────────────────────────────────────────
	ErrStudentExists ErrCode = "STUDENT_EXISTS"
	ErrSubjectExists ErrCode = "SUBJECT_EXISTS"

	// ─── Validation ────────────────────────────────────────────────────
	ErrInvalidMarks  ErrCode = "INVALID_MARKS"
	ErrInvalidChoice ErrCode = "INVALID_CHOICE"

	// ─── Persistence ───────────────────────────────────────────────────
	ErrDataCorrupt ErrCode = "DATA_CORRUPT"
	ErrSaveFailed  ErrCode = "SAVE_FAILED"

	// ─── Internal ──────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Not found ─────────────────────────────────────────────────────
	case ErrStudentNotFound:
		return "Student not found!"
	case ErrInvalidRoll:
		return "Invalid Roll Number!"
	case ErrInvalidSubject:
		return "Invalid Subject Code!"
	case ErrNoStudents:
		return "Add students first!"
	case ErrNoSubjects:
		return "Add subjects first!"

	// ─── Duplicate ─────────────────────────────────────────────────────
	case ErrStudentExists:
		return "Student already exists!"
	case ErrSubjectExists:
		return "Subject already exists!"

	// ─── Validation ────────────────────────────────────────────────────
	case ErrInvalidMarks:
		return "Invalid marks! Must be 0-100."
	case ErrInvalidChoice:
		return "Invalid choice! Try again."

	// ─── Persistence ───────────────────────────────────────────────────
	case ErrDataCorrupt:
		return "Corrupted data file. Starting fresh."
	case ErrSaveFailed:
		return "Failed to save data"

	// ─── Internal ──────────────────────────────────────────────────────
	case ErrInternal:
		return "An unexpected error occurred."
	default:
		return "An unexpected error occurred."
	}
}
