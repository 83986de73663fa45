package png

import "fmt"

// Scanline filter types. Each decompressed row starts with one of these
// bytes, naming the byte predictor its samples were filtered with.
const (
	FilterNone    = 0
	FilterSub     = 1
	FilterUp      = 2
	FilterAverage = 3
	FilterPaeth   = 4
)

// ScanlineBytes returns the packed byte length of one row of samples.
func ScanlineBytes(width, bitsPerPixel int) int {
	return (width*bitsPerPixel + 7) / 8
}

// DecodeScanlines reconstructs raw samples from filtered rows.
//
// Rows are 1 + ScanlineBytes(width, bitsPerPixel) bytes: the filter type,
// then the filtered samples. Reconstruction is strictly sequential. Each
// byte's predictors are the previously reconstructed output at distance bpp
// (the "left" sample, read from the flat output so far), the byte directly
// above it in the previous row, and the byte above-left; all arithmetic is
// modulo 256. A filter type outside 0..4, or data that does not divide into
// whole rows, is fatal: no lenient fallback exists because the inverse
// transform is undefined.
func DecodeScanlines(filtered []byte, width, bitsPerPixel int) ([]byte, error) {
	if width <= 0 || bitsPerPixel <= 0 {
		return nil, fmt.Errorf("cannot decode %d px rows at %d bits per pixel: %w", width, bitsPerPixel, ErrFormat)
	}
	scanlineBytes := ScanlineBytes(width, bitsPerPixel)
	// Byte distance to the "left" sample; at least one even for sub-byte
	// depths.
	bpp := (bitsPerPixel + 7) / 8

	stride := 1 + scanlineBytes
	if len(filtered)%stride != 0 {
		return nil, fmt.Errorf("%d bytes do not divide into %d-byte rows: %w", len(filtered), stride, ErrFormat)
	}

	rows := len(filtered) / stride
	out := make([]byte, 0, rows*scanlineBytes)
	var prev []byte
	for row := 0; row < rows; row++ {
		line := filtered[row*stride : (row+1)*stride]
		filterType := line[0]
		if filterType > FilterPaeth {
			return nil, fmt.Errorf("row %d has filter type %d: %w", row, filterType, ErrFormat)
		}

		filt := line[1:]
		for i := 0; i < scanlineBytes; i++ {
			pos := len(out)
			var a, b, c int
			if pos >= bpp {
				a = int(out[pos-bpp])
			}
			if prev != nil {
				b = int(prev[i])
				if i >= bpp {
					c = int(prev[i-bpp])
				}
			}

			v := int(filt[i])
			switch filterType {
			case FilterNone:
			case FilterSub:
				v += a
			case FilterUp:
				v += b
			case FilterAverage:
				v += (a + b) / 2
			case FilterPaeth:
				v += paethPredictor(a, b, c)
			}
			out = append(out, byte(v))
		}
		prev = out[len(out)-scanlineBytes:]
	}
	return out, nil
}

// EncodeScanlines produces filtered rows from raw samples using the identity
// (None) filter: every scanlineBytes-long row is prefixed with a zero type
// byte and copied unchanged. A final partial row is kept. Choosing a
// predictive filter per row would only improve compression, which decodable
// output does not require.
func EncodeScanlines(raw []byte, scanlineBytes int) ([]byte, error) {
	if scanlineBytes <= 0 {
		return nil, fmt.Errorf("cannot encode %d-byte rows: %w", scanlineBytes, ErrFormat)
	}
	rows := (len(raw) + scanlineBytes - 1) / scanlineBytes
	out := make([]byte, 0, len(raw)+rows)
	for start := 0; start < len(raw); start += scanlineBytes {
		end := start + scanlineBytes
		if end > len(raw) {
			end = len(raw)
		}
		out = append(out, FilterNone)
		out = append(out, raw[start:end]...)
	}
	return out, nil
}

// paethPredictor picks whichever of left, above and above-left deviates
// least from a + b - c, breaking ties in the order a, b, c.
func paethPredictor(a, b, c int) int {
	p := a + b - c
	pa := abs(p - a)
	pb := abs(p - b)
	pc := abs(p - c)
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
