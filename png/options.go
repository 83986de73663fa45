package png

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LoadOption configures stream decoding.
type LoadOption func(*loadOptions)

type loadOptions struct {
	lenient bool
	log     logrus.FieldLogger
}

func defaultLoadOptions() *loadOptions {
	return &loadOptions{
		log: discardLogger(),
	}
}

// WithLenient downgrades per-chunk validation failures (name, length, CRC,
// variant payload shape) to logged warnings. The best-effort chunk, with the
// raw or declared values substituted for the failed check, is kept so a
// partially trusted stream can still be inspected. Signature mismatches stay
// fatal.
func WithLenient() LoadOption {
	return func(o *loadOptions) {
		o.lenient = true
	}
}

// WithDiagnostics routes decode warnings and progress to log. Without it the
// diagnostics are discarded.
func WithDiagnostics(log logrus.FieldLogger) LoadOption {
	return func(o *loadOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// EncodeOption configures chunk encoding.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	frozen bool
}

func applyEncodeOptions(opts []EncodeOption) *encodeOptions {
	o := &encodeOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFrozen suppresses the recomputation of the length and CRC fields during
// encoding, serializing whatever values the chunk currently holds. This
// permits constructing deliberately malformed streams for testing.
func WithFrozen() EncodeOption {
	return func(o *encodeOptions) {
		o.frozen = true
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
