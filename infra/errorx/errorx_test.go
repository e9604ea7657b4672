package errorx

import (
	"fmt"
	"os"
	"testing"

	"bincount/infra/errorx/errCode"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	err := New(errCode.INDEX_OUT_OF_RANGE, "bin 4 outside [0, 2]")
	require.Equal(t, errCode.INDEX_OUT_OF_RANGE, CodeOf(err))
	require.EqualError(t, err, "[index_out_of_range] bin 4 outside [0, 2]")

	// 多层包装后错误码不丢
	wrapped := Wrap(Wrap(err, "count"), "mexFunction")
	require.True(t, Is(wrapped, errCode.INDEX_OUT_OF_RANGE))
	require.False(t, Is(wrapped, errCode.NON_FINITE_INPUT))

	var e *Error
	require.True(t, errors.As(errors.Cause(wrapped), &e))
	require.Equal(t, "bin 4 outside [0, 2]", e.Msg)
}

func TestCodeOfForeignError(t *testing.T) {
	require.Equal(t, errCode.UNKNOWN, CodeOf(nil))
	require.Equal(t, errCode.UNKNOWN, CodeOf(fmt.Errorf("plain")))
	require.False(t, Is(nil, errCode.UNKNOWN))
	require.Nil(t, Wrap(nil, "nothing"))
}

func TestNewf(t *testing.T) {
	err := Newf(errCode.INVALID_BIN_COUNT, "bin count %d with %d indices", 0, 3)
	require.EqualError(t, err, "[invalid_bin_count] bin count 0 with 3 indices")
}

func TestWrapCode(t *testing.T) {
	require.Nil(t, WrapCode(nil, errCode.INVALID_ARGUMENT, "read yaml"))

	base := fmt.Errorf("open cfg.yaml: %w", os.ErrNotExist)
	err := WrapCode(base, errCode.INVALID_ARGUMENT, "read yaml")
	require.Equal(t, errCode.INVALID_ARGUMENT, CodeOf(err))
	require.True(t, errors.Is(err, os.ErrNotExist))
	require.EqualError(t, err, "[invalid_argument] read yaml: open cfg.yaml: file does not exist")

	// 外层 Wrap 不改变错误码
	require.True(t, Is(Wrap(err, "config"), errCode.INVALID_ARGUMENT))
}
