package npBincount

// index -> bin 的映射策略
type TruncPolicy int

const (
	TRUNC_TOWARD_ZERO  TruncPolicy = iota // "trunc"  bin = trunc(v-1), (0,1) 落入 bin 0
	STRICT_ONE_BASED                      // "strict" v < 1 视为越界
	TRUNC_POLICY_ERROR                    // "ERROR"
)

func (p TruncPolicy) String() string {
	switch p {
	case TRUNC_TOWARD_ZERO:
		return "trunc"
	case STRICT_ONE_BASED:
		return "strict"
	default:
		return "ERROR"
	}
}

func GetMyTruncPolicy(s string) TruncPolicy {
	switch s {
	case "trunc", "":
		return TRUNC_TOWARD_ZERO
	case "strict":
		return STRICT_ONE_BASED
	default:
		return TRUNC_POLICY_ERROR
	}
}

func (p TruncPolicy) valid() bool {
	return p == TRUNC_TOWARD_ZERO || p == STRICT_ONE_BASED
}
