package errCode

type ErrCode int

const (
	UNKNOWN            ErrCode = iota // "unknown"
	INVALID_VALUE                     // "invalid_value"
	INVALID_ARGUMENT                  // "invalid_argument"
	INVALID_BIN_COUNT                 // "invalid_bin_count"
	NON_FINITE_INPUT                  // "non_finite_input"
	INDEX_OUT_OF_RANGE                // "index_out_of_range"
)

func (c ErrCode) String() string {
	switch c {
	case INVALID_VALUE:
		return "invalid_value"
	case INVALID_ARGUMENT:
		return "invalid_argument"
	case INVALID_BIN_COUNT:
		return "invalid_bin_count"
	case NON_FINITE_INPUT:
		return "non_finite_input"
	case INDEX_OUT_OF_RANGE:
		return "index_out_of_range"
	default:
		return "unknown"
	}
}
