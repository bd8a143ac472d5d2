//go:build rp2040 || rp2350

package fmtx

import (
	"errors"
	"io"

	"thermistor-go/x/conv"
)

// DefaultOutput is used by Printf on MCU builds.
// Set this from your platform bootstrap (e.g. a UART writer).
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// MCU builds carry a deliberately small formatter: the verbs this module
// actually prints (%s, %d, %f, %v) with no width/precision syntax beyond
// what telemetry needs. Everything else renders as "%!".

func Sprintf(format string, a ...any) string {
	var buf [96]byte
	return string(appendFormat(buf[:0], format, a...))
}

func Printf(format string, a ...any) (int, error) {
	var buf [96]byte
	return DefaultOutput.Write(appendFormat(buf[:0], format, a...))
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	var buf [96]byte
	return w.Write(appendFormat(buf[:0], format, a...))
}

func Errorf(format string, a ...any) error {
	return errors.New(Sprintf(format, a...))
}

func appendFormat(out []byte, format string, a ...any) []byte {
	var tmp [24]byte
	ai := 0
	next := func() (any, bool) {
		if ai >= len(a) {
			return nil, false
		}
		v := a[ai]
		ai++
		return v, true
	}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			out = append(out, c)
			continue
		}
		i++
		switch format[i] {
		case '%':
			out = append(out, '%')
		case 's':
			if v, ok := next(); ok {
				out = appendAny(out, tmp[:], v)
			}
		case 'd':
			if v, ok := next(); ok {
				out = append(out, conv.Itoa(tmp[:], toInt64(v))...)
			}
		case 'f':
			if v, ok := next(); ok {
				out = append(out, conv.Ftoa(tmp[:], toFloat64(v), 2)...)
			}
		case 'v':
			if v, ok := next(); ok {
				out = appendAny(out, tmp[:], v)
			}
		default:
			out = append(out, '%', '!')
		}
	}
	return out
}

func appendAny(out, tmp []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(out, x...)
	case error:
		return append(out, x.Error()...)
	case bool:
		if x {
			return append(out, "true"...)
		}
		return append(out, "false"...)
	case float32:
		return append(out, conv.Ftoa(tmp, float64(x), 2)...)
	case float64:
		return append(out, conv.Ftoa(tmp, x, 2)...)
	default:
		return append(out, conv.Itoa(tmp, toInt64(v))...)
	}
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return float64(toInt64(v))
	}
}
