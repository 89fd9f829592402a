package glm

import "log/slog"

// LogValue renders the matrix as a group of its four rows.
func (lhs Mat4[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("row1", lhs.Row(0)),
		slog.Any("row2", lhs.Row(1)),
		slog.Any("row3", lhs.Row(2)),
		slog.Any("row4", lhs.Row(3)),
	)
}
