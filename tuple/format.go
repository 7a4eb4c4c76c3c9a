package tuple

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// format renders slots as "(p1, p2, ...)".
func format(slots ...any) string {
	var sb strings.Builder

	sb.WriteByte('(')

	for i, slot := range slots {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprint(&sb, slot)
	}

	sb.WriteByte(')')

	return sb.String()
}

// logValue renders slots as an slog group with keys p1, p2, ...
func logValue(slots ...any) slog.Value {
	attrs := make([]slog.Attr, len(slots))

	for i, slot := range slots {
		attrs[i] = slog.Any("p"+strconv.Itoa(i+1), slot)
	}

	return slog.GroupValue(attrs...)
}

func (t I1[T1]) LogValue() slog.Value             { return logValue(t.p1) }
func (t I2[T1, T2]) LogValue() slog.Value         { return logValue(t.p1, t.p2) }
func (t I3[T1, T2, T3]) LogValue() slog.Value     { return logValue(t.p1, t.p2, t.p3) }
func (t I4[T1, T2, T3, T4]) LogValue() slog.Value { return logValue(t.p1, t.p2, t.p3, t.p4) }

func (t *M1[T1]) LogValue() slog.Value             { return logValue(t.p1) }
func (t *M2[T1, T2]) LogValue() slog.Value         { return logValue(t.p1, t.p2) }
func (t *M3[T1, T2, T3]) LogValue() slog.Value     { return logValue(t.p1, t.p2, t.p3) }
func (t *M4[T1, T2, T3, T4]) LogValue() slog.Value { return logValue(t.p1, t.p2, t.p3, t.p4) }
