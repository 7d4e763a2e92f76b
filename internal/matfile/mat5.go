package matfile

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Level 5 MAT-file data element types.
const (
	miInt8       = 1
	miUint8      = 2
	miInt16      = 3
	miUint16     = 4
	miInt32      = 5
	miUint32     = 6
	miSingle     = 7
	miDouble     = 9
	miInt64      = 12
	miUint64     = 13
	miMatrix     = 14
	miCompressed = 15
)

// Level 5 array classes. Numeric classes occupy 6..15.
const (
	mxDoubleClass = 6
	mxUint64Class = 15
)

const flagComplex = 0x0800

// cursor walks a MAT-file buffer one tagged element at a time.
type cursor struct {
	buf   []byte
	off   int
	order binary.ByteOrder
}

func (c *cursor) remaining() int { return len(c.buf) - c.off }

func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, fmt.Errorf("matfile: truncated element (want %d bytes, have %d)", n, c.remaining())
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// element reads one tagged data element, handling the packed small-data
// format and the 8-byte alignment of full elements.
func (c *cursor) element() (typ uint32, data []byte, err error) {
	head, err := c.take(4)
	if err != nil {
		return 0, nil, err
	}
	word := c.order.Uint32(head)
	if word>>16 != 0 {
		// small data element: type and length share the tag word,
		// payload lives in the second word
		n := int(word >> 16)
		raw, err := c.take(4)
		if err != nil {
			return 0, nil, err
		}
		if n > 4 {
			return 0, nil, fmt.Errorf("matfile: small element claims %d bytes", n)
		}
		return word & 0xffff, raw[:n], nil
	}

	sz, err := c.take(4)
	if err != nil {
		return 0, nil, err
	}
	n := int(c.order.Uint32(sz))
	data, err = c.take(n)
	if err != nil {
		return 0, nil, err
	}
	// payloads are padded to the next 8-byte boundary, except that a
	// compressed element may end the file unpadded
	if pad := (8 - n%8) % 8; pad > 0 && word != miCompressed && c.remaining() >= pad {
		c.off += pad
	}
	return word, data, nil
}

// loadMAT5 reads a named variable from a Level 5 MAT-file (MATLAB v6/v7).
// Compressed (v7) top-level elements are inflated transparently.
func loadMAT5(path, variable string) (*Array, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}
	if len(buf) < 128 {
		return nil, fmt.Errorf("matfile: %s: truncated level 5 header", path)
	}
	var order binary.ByteOrder
	switch string(buf[126:128]) {
	case "IM":
		order = binary.LittleEndian
	case "MI":
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("matfile: %s is not a level 5 MAT-file", path)
	}

	c := &cursor{buf: buf, off: 128, order: order}
	for c.remaining() >= 8 {
		typ, data, err := c.element()
		if err != nil {
			return nil, err
		}
		if typ == miCompressed {
			zr, err := zlib.NewReader(bytes.NewReader(data))
			if err != nil {
				return nil, fmt.Errorf("matfile: inflating element: %w", err)
			}
			inflated, err := io.ReadAll(zr)
			zr.Close()
			if err != nil {
				return nil, fmt.Errorf("matfile: inflating element: %w", err)
			}
			zc := &cursor{buf: inflated, order: order}
			typ, data, err = zc.element()
			if err != nil {
				return nil, err
			}
		}
		if typ != miMatrix {
			continue
		}
		arr, name, err := parseMatrix(data, order)
		if name != variable {
			continue
		}
		if err != nil {
			return nil, err
		}
		return arr, nil
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrVariableNotFound, variable, path)
}

// parseMatrix decodes a miMATRIX element. The name comes back even when
// the array itself is unsupported, so callers can skip variables they
// were not asked for.
func parseMatrix(data []byte, order binary.ByteOrder) (*Array, string, error) {
	c := &cursor{buf: data, order: order}

	ftyp, fdata, err := c.element()
	if err != nil {
		return nil, "", err
	}
	if ftyp != miUint32 || len(fdata) < 8 {
		return nil, "", fmt.Errorf("matfile: malformed array flags element")
	}
	flags := order.Uint32(fdata[:4])
	class := flags & 0xff

	dtyp, ddata, err := c.element()
	if err != nil {
		return nil, "", err
	}
	if dtyp != miInt32 || len(ddata)%4 != 0 {
		return nil, "", fmt.Errorf("matfile: malformed dimensions element")
	}
	dims := make([]int, len(ddata)/4)
	for i := range dims {
		dims[i] = int(int32(order.Uint32(ddata[4*i : 4*i+4])))
	}

	_, ndata, err := c.element()
	if err != nil {
		return nil, "", err
	}
	name := string(ndata)

	if class < mxDoubleClass || class > mxUint64Class {
		return nil, name, fmt.Errorf("%w: class %d", ErrUnsupportedClass, class)
	}
	if flags&flagComplex != 0 {
		return nil, name, fmt.Errorf("%w: complex data", ErrUnsupportedClass)
	}
	if len(dims) != 2 {
		return nil, name, fmt.Errorf("%w: %d-dimensional array", ErrUnsupportedClass, len(dims))
	}

	rtyp, rdata, err := c.element()
	if err != nil {
		return nil, name, err
	}
	vals, err := decodeNumeric(rtyp, rdata, order)
	if err != nil {
		return nil, name, err
	}
	if len(vals) < dims[0]*dims[1] {
		return nil, name, fmt.Errorf("matfile: %q holds %d values for a %dx%d array",
			name, len(vals), dims[0], dims[1])
	}
	return fromColumnMajor(dims[0], dims[1], vals), name, nil
}

// decodeNumeric widens a raw numeric element to float64.
func decodeNumeric(typ uint32, data []byte, order binary.ByteOrder) ([]float64, error) {
	switch typ {
	case miDouble:
		out := make([]float64, len(data)/8)
		for i := range out {
			out[i] = math.Float64frombits(order.Uint64(data[8*i:]))
		}
		return out, nil
	case miSingle:
		out := make([]float64, len(data)/4)
		for i := range out {
			out[i] = float64(math.Float32frombits(order.Uint32(data[4*i:])))
		}
		return out, nil
	case miInt8:
		out := make([]float64, len(data))
		for i := range out {
			out[i] = float64(int8(data[i]))
		}
		return out, nil
	case miUint8:
		out := make([]float64, len(data))
		for i := range out {
			out[i] = float64(data[i])
		}
		return out, nil
	case miInt16:
		out := make([]float64, len(data)/2)
		for i := range out {
			out[i] = float64(int16(order.Uint16(data[2*i:])))
		}
		return out, nil
	case miUint16:
		out := make([]float64, len(data)/2)
		for i := range out {
			out[i] = float64(order.Uint16(data[2*i:]))
		}
		return out, nil
	case miInt32:
		out := make([]float64, len(data)/4)
		for i := range out {
			out[i] = float64(int32(order.Uint32(data[4*i:])))
		}
		return out, nil
	case miUint32:
		out := make([]float64, len(data)/4)
		for i := range out {
			out[i] = float64(order.Uint32(data[4*i:]))
		}
		return out, nil
	case miInt64:
		out := make([]float64, len(data)/8)
		for i := range out {
			out[i] = float64(int64(order.Uint64(data[8*i:])))
		}
		return out, nil
	case miUint64:
		out := make([]float64, len(data)/8)
		for i := range out {
			out[i] = float64(order.Uint64(data[8*i:]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: element type %d", ErrUnsupportedClass, typ)
	}
}
