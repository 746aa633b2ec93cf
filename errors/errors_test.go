package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidInput, "name must not be empty")

	require.Equal(t, CodeInvalidInput, err.Code())
	require.Equal(t, "name must not be empty", err.Message())
	require.Empty(t, err.Op())
	require.Empty(t, err.Path())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[INVALID_INPUT] name must not be empty", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "unknown location %q", "Desktop")
	require.Equal(t, `unknown location "Desktop"`, err.Message())
}

func TestError_Format(t *testing.T) {
	cause := stderrors.New("no such file or directory")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "message only",
			err:  New(CodeIO, "disk full"),
			want: "[IO_ERROR] disk full",
		},
		{
			name: "with op and path",
			err:  WithOp(New(CodeNotFound, "file does not exist"), "read", "/docs/a.txt"),
			want: "[NOT_FOUND] read /docs/a.txt: file does not exist",
		},
		{
			name: "with op only",
			err:  WithOp(New(CodeInvalidInput, "bad name"), "join", ""),
			want: "[INVALID_INPUT] join: bad name",
		},
		{
			name: "with cause",
			err:  WithOp(Wrap(cause, CodeNotFound, "file does not exist"), "delete", "/tmp/x"),
			want: "[NOT_FOUND] delete /tmp/x: file does not exist: no such file or directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		require.Nil(t, Wrap(nil, CodeIO, "ignored"))
		require.Nil(t, Wrapf(nil, CodeIO, "ignored %d", 1))
	})

	t.Run("preserves op path and context", func(t *testing.T) {
		inner := WithContext(WithOp(New(CodeNotFound, "missing"), "copy", "/a"), "destination", "/b")
		outer := Wrapf(inner, CodeIO, "copy of %s failed", "a")

		require.Equal(t, CodeIO, outer.Code())
		require.Equal(t, "copy", outer.Op())
		require.Equal(t, "/a", outer.Path())
		require.Equal(t, "/b", outer.Context()["destination"])
		require.Equal(t, "copy of a failed", outer.Message())
		require.True(t, Is(outer, inner))
	})
}

func TestWithOp(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		require.Nil(t, WithOp(nil, "read", "/a"))
	})

	t.Run("does not mutate original", func(t *testing.T) {
		orig := New(CodeNotFound, "missing")
		withOp := WithOp(orig, "read", "/a")

		require.Empty(t, orig.Op())
		require.Equal(t, "read", withOp.Op())
		require.Equal(t, "/a", withOp.Path())
	})

	t.Run("standard error becomes unknown", func(t *testing.T) {
		std := stderrors.New("boom")
		err := WithOp(std, "list", "/a")

		require.Equal(t, CodeUnknown, err.Code())
		require.Equal(t, "boom", err.Message())
		require.True(t, stderrors.Is(err, std))
	})
}

func TestWithContext(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		require.Nil(t, WithContext(nil, "k", "v"))
	})

	t.Run("accumulates fields", func(t *testing.T) {
		err := New(CodeInvalidEncoding, "content is not valid UTF-8")
		err = WithContext(err, "charset", "ISO-8859-1")
		err = WithContext(err, "confidence", 80)

		ctx := err.Context()
		require.Len(t, ctx, 2)
		require.Equal(t, "ISO-8859-1", ctx["charset"])
		require.Equal(t, 80, ctx["confidence"])
	})

	t.Run("context map is a copy", func(t *testing.T) {
		err := WithContext(New(CodeIO, "x"), "k", "v")
		ctx := err.Context()
		ctx["k"] = "changed"

		require.Equal(t, "v", err.Context()["k"])
	})

	t.Run("previous value is unchanged", func(t *testing.T) {
		first := WithContext(New(CodeIO, "x"), "a", 1)
		second := WithContext(first, "b", 2)

		require.Len(t, first.Context(), 1)
		require.Len(t, second.Context(), 2)
	})
}
