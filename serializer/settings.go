package serializer

// Quote selects which quote character value_string prefers when the
// setting is not overridden per call.
type Quote uint8

const (
	// Auto picks whichever quote character does not appear in the string
	// body, preferring Double on a tie.
	Auto Quote = iota
	Double
	Single
)

func (q Quote) rune() byte {
	switch q {
	case Single:
		return '\''
	default:
		return '"'
	}
}

// Settings controls the serializer's output shape. The zero value is not
// meaningful; use DefaultSettings or CompactSettings.
type Settings struct {
	PrettyPrint bool
	// TargetLineLength bounds how long a line may grow before the
	// serializer prefers a multi-line form (bytes literals); 0 disables
	// the check entirely.
	TargetLineLength      int32
	Indent                string
	Linebreak             string
	KeySeparator          string
	ValueSeparator        string
	DefaultQuote          Quote
	DefaultFloatPrecision int32
	FloatFixedPrecision   bool
}

// DefaultSettings returns the pretty-printing defaults from the format's
// reference settings table.
func DefaultSettings() Settings {
	return Settings{
		PrettyPrint:           true,
		TargetLineLength:      80,
		Indent:                "    ",
		Linebreak:             "\n",
		KeySeparator:          ": ",
		ValueSeparator:        ",\n",
		DefaultQuote:          Double,
		DefaultFloatPrecision: 12,
		FloatFixedPrecision:   false,
	}
}

// CompactSettings returns the "compact" preset: pretty-printing off, no
// indent or linebreak, minimal separators.
func CompactSettings() Settings {
	s := DefaultSettings()
	s.PrettyPrint = false
	s.Indent = ""
	s.Linebreak = ""
	s.KeySeparator = ":"
	s.ValueSeparator = ","
	return s
}
