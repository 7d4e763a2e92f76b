package matfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// loadMAT4 reads a named variable from a Level 4 MAT-file: a flat
// sequence of matrices, each a 20-byte MOPT header, a NUL-terminated
// name, and column-major data.
func loadMAT4(path, variable string) (*Array, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}

	off := 0
	for off+20 <= len(buf) {
		order := binary.ByteOrder(binary.LittleEndian)
		mopt := int(int32(order.Uint32(buf[off:])))
		if mopt < 0 || mopt > 9999 {
			// M digit 1 marks big-endian storage
			order = binary.BigEndian
			mopt = int(int32(order.Uint32(buf[off:])))
		}
		if mopt < 0 || mopt > 9999 {
			return nil, fmt.Errorf("matfile: %s is not a level 4 MAT-file", path)
		}

		rows := int(int32(order.Uint32(buf[off+4:])))
		cols := int(int32(order.Uint32(buf[off+8:])))
		imagf := int(int32(order.Uint32(buf[off+12:])))
		nameLen := int(int32(order.Uint32(buf[off+16:])))
		off += 20

		if rows < 0 || cols < 0 || nameLen <= 0 || off+nameLen > len(buf) {
			return nil, fmt.Errorf("matfile: malformed level 4 matrix header in %s", path)
		}
		name := string(bytes.TrimRight(buf[off:off+nameLen], "\x00"))
		off += nameLen

		prec := (mopt / 10) % 10
		mtype := mopt % 10
		width, ok := mat4Width(prec)
		if !ok || mtype != 0 {
			return nil, fmt.Errorf("%w: level 4 type %d", ErrUnsupportedClass, mopt)
		}

		n := rows * cols
		total := n * width * (1 + imagf)
		if off+total > len(buf) {
			return nil, fmt.Errorf("matfile: truncated data for %q in %s", name, path)
		}
		if name != variable {
			off += total
			continue
		}

		vals := make([]float64, n)
		for i := range vals {
			vals[i] = mat4Value(buf[off+i*width:], prec, order)
		}
		// the imaginary block, when present, is ignored by skipping it
		return fromColumnMajor(rows, cols, vals), nil
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrVariableNotFound, variable, path)
}

// mat4Width maps the MOPT precision digit to its storage width.
func mat4Width(prec int) (int, bool) {
	switch prec {
	case 0: // float64
		return 8, true
	case 1: // float32
		return 4, true
	case 2: // int32
		return 4, true
	case 3: // int16
		return 2, true
	case 4: // uint16
		return 2, true
	case 5: // uint8
		return 1, true
	default:
		return 0, false
	}
}

func mat4Value(b []byte, prec int, order binary.ByteOrder) float64 {
	switch prec {
	case 0:
		return math.Float64frombits(order.Uint64(b))
	case 1:
		return float64(math.Float32frombits(order.Uint32(b)))
	case 2:
		return float64(int32(order.Uint32(b)))
	case 3:
		return float64(int16(order.Uint16(b)))
	case 4:
		return float64(order.Uint16(b))
	default:
		return float64(b[0])
	}
}
