package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cleodb/godbc"
	"github.com/cleodb/godbc/appbuf"
)

func main() {
	var (
		typeName    = flag.String("type", "char", "Target buffer type (see -types)")
		size        = flag.Int64("size", 64, "Buffer capacity in bytes")
		value       = flag.String("value", "", "Value to store")
		as          = flag.String("as", "auto", "Interpret value as: auto, int, float, string, decimal, uuid, timestamp, null")
		listTypes   = flag.Bool("types", false, "List buffer types and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			appbuf.SetLogger(l)
		}
	}

	if *listTypes {
		for _, name := range typeNames() {
			fmt.Println(name)
		}
		return
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*typeName, *size, *value, *as); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(typeName string, size int64, value, as string) error {
	typ, err := parseType(typeName)
	if err != nil {
		return err
	}

	data := godbc.NewRegion(int(size))
	ind := godbc.NewRegion(8)
	buf := appbuf.New(typ, data, size, ind)

	res, err := storeValue(buf, value, as)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}

	fmt.Println(describe(buf, data, res))
	return nil
}

// storeValue pushes value into buf, interpreting it per the as mode.
func storeValue(buf *appbuf.DataBuffer, value, as string) (appbuf.ConvRes, error) {
	switch as {
	case "null":
		return buf.PutNull()
	case "int":
		v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0, err
		}
		return buf.PutInt64(v)
	case "float":
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, err
		}
		return buf.PutDouble(v)
	case "decimal":
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return 0, err
		}
		return buf.PutDecimal(d)
	case "uuid":
		u, err := uuid.Parse(strings.TrimSpace(value))
		if err != nil {
			return 0, err
		}
		return buf.PutUUID(u)
	case "timestamp":
		t, err := time.Parse("2006-01-02 15:04:05", strings.TrimSpace(value))
		if err != nil {
			return 0, err
		}
		return buf.PutTimestamp(t)
	case "string":
		return buf.PutString(value)
	case "auto":
		return storeAuto(buf, value)
	default:
		return 0, fmt.Errorf("unknown value mode %q", as)
	}
}

// storeAuto guesses the value kind from its shape.
func storeAuto(buf *appbuf.DataBuffer, value string) (appbuf.ConvRes, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return buf.PutNull()
	}
	if v, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return buf.PutInt64(v)
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return buf.PutDouble(v)
	}
	if u, err := uuid.Parse(trimmed); err == nil {
		return buf.PutUUID(u)
	}
	if t, err := time.Parse("2006-01-02 15:04:05", trimmed); err == nil {
		return buf.PutTimestamp(t)
	}
	return buf.PutString(value)
}

// describe renders the buffer state after a put: outcome, decoded
// indicator and a hex dump of the touched bytes.
func describe(buf *appbuf.DataBuffer, data *godbc.Region, res appbuf.ConvRes) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Type:      %s (element size %d)\n", buf.Type(), buf.ElementSize())
	fmt.Fprintf(&b, "Outcome:   %s\n", res)
	if res.Truncated() {
		fmt.Fprintf(&b, "           value stored with data loss\n")
	}

	indVal := buf.InputSize()
	switch {
	case indVal == godbc.NullData:
		fmt.Fprintf(&b, "Indicator: NULL\n")
	case buf.IsDataAtExec():
		fmt.Fprintf(&b, "Indicator: data at exec, %d bytes declared\n", buf.DataAtExecSize())
	default:
		fmt.Fprintf(&b, "Indicator: %d\n", indVal)
	}

	b.WriteString("Data:\n")
	b.WriteString(hexDump(data.Bytes()))
	return b.String()
}

func hexDump(data []byte) string {
	var b strings.Builder
	for base := 0; base < len(data); base += 16 {
		end := base + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[base:end]

		fmt.Fprintf(&b, "  %04x  ", base)
		for i, c := range row {
			fmt.Fprintf(&b, "%02x ", c)
			if i == 7 {
				b.WriteByte(' ')
			}
		}
		for i := len(row); i < 16; i++ {
			b.WriteString("   ")
			if i == 7 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(" |")
		for _, c := range row {
			if c >= 0x20 && c < 0x7F {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}

var nameToType = map[string]appbuf.TypeKind{
	"tinyint":   appbuf.TypeSignedTinyint,
	"bit":       appbuf.TypeBit,
	"utinyint":  appbuf.TypeUnsignedTinyint,
	"short":     appbuf.TypeSignedShort,
	"ushort":    appbuf.TypeUnsignedShort,
	"long":      appbuf.TypeSignedLong,
	"ulong":     appbuf.TypeUnsignedLong,
	"bigint":    appbuf.TypeSignedBigint,
	"ubigint":   appbuf.TypeUnsignedBigint,
	"float":     appbuf.TypeFloat,
	"double":    appbuf.TypeDouble,
	"char":      appbuf.TypeChar,
	"wchar":     appbuf.TypeWchar,
	"date":      appbuf.TypeDate,
	"time":      appbuf.TypeTime,
	"timestamp": appbuf.TypeTimestamp,
	"numeric":   appbuf.TypeNumeric,
	"binary":    appbuf.TypeBinary,
	"guid":      appbuf.TypeGUID,
	"default":   appbuf.TypeDefault,
}

func parseType(name string) (appbuf.TypeKind, error) {
	typ, ok := nameToType[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown type %q, see -types", name)
	}
	return typ, nil
}

func typeNames() []string {
	return []string{
		"tinyint", "bit", "utinyint", "short", "ushort", "long", "ulong",
		"bigint", "ubigint", "float", "double", "char", "wchar",
		"date", "time", "timestamp", "numeric", "binary", "guid", "default",
	}
}
