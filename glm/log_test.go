package glm

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogValue(t *testing.T) {
	value := TranslationMat4[float32](1, 2, 3).LogValue()
	require.Equal(t, slog.KindGroup, value.Kind())

	attrs := value.Group()
	require.Len(t, attrs, 4)
	require.Equal(t, "row4", attrs[3].Key)
	require.Equal(t, [4]float32{1, 2, 3, 1}, attrs[3].Value.Any())
}

func TestLogValueHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("projection", slog.Any("matrix", IdentityMat4[int32]()))
	require.Contains(t, buf.String(), "matrix.row1=\"[1 0 0 0]\"")
	require.Contains(t, buf.String(), "matrix.row4=\"[0 0 0 1]\"")
}
