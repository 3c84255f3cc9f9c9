package header

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// bytesPerLine is the number of array entries per line, matching xxd -i.
const bytesPerLine = 16

// TimestampFormat is the layout of the generation timestamp comment.
const TimestampFormat = time.DateTime

// Page is a compressed payload ready to be rendered as a C header.
type Page struct {
	SafeBase string // Sanitized base name used for the guard and symbols
	Payload  []byte // Gzip-compressed page content
}

// Render writes p as a C header to w.
func Render(w io.Writer, p Page, generatedAt time.Time) error {
	bw := bufio.NewWriter(w)

	guard := GuardName(p.SafeBase)
	symbol := SymbolName(p.SafeBase)

	fmt.Fprintf(bw, "#ifndef %s\n", guard)
	fmt.Fprintf(bw, "#define %s\n\n", guard)
	bw.WriteString("// This file was generated using pagegen (gzip -> C array)\n")
	fmt.Fprintf(bw, "// Gzip generated on: %s\n\n", generatedAt.Format(TimestampFormat))

	fmt.Fprintf(bw, "unsigned char %s[] = {\n", symbol)
	writeHexArray(bw, p.Payload)
	bw.WriteString("\n};\n\n")
	fmt.Fprintf(bw, "unsigned int %s_len = %d;\n\n", symbol, len(p.Payload))
	bw.WriteString("#endif\n")

	return bw.Flush()
}

// writeHexArray writes data as comma-separated 0xHH literals, indented by two
// spaces, with no separator after the final byte.
func writeHexArray(bw *bufio.Writer, data []byte) {
	last := len(data) - 1
	for i, b := range data {
		if i%bytesPerLine == 0 {
			bw.WriteString("  ")
		}
		fmt.Fprintf(bw, "0x%02X", b)
		if i != last {
			bw.WriteString(", ")
		}
		if (i+1)%bytesPerLine == 0 {
			bw.WriteByte('\n')
		}
	}
}
