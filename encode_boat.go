package marina

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// fieldSeparator separates the fields of a boat line.
const fieldSeparator = ","

// boatFields is the number of fields in a boat line:
//
//	name,length,category,extra,owed
const boatFields = 5

// Codec converts boats to and from their line representation.
//
// The zero value is the lenient codec in the default currency: numbers that
// cannot be read are taken as 0 and unknown categories as slips, the way the
// boat file has always been read. A Strict codec reports those fields as
// ErrInvalidField instead.
type Codec struct {
	Strict   bool
	Currency string // currency of the balances, DefaultCurrency if empty
}

// DefaultCodec is the lenient codec in the default currency.
var DefaultCodec = Codec{Currency: DefaultCurrency}

// ParseBoat parses a boat line with the DefaultCodec.
func ParseBoat(line string) (Boat, error) { return DefaultCodec.Parse(line) }

// FormatBoat formats a boat line with the DefaultCodec.
func FormatBoat(b Boat) string { return DefaultCodec.Format(b) }

func (c Codec) currency() string {
	if c.Currency == "" {
		return DefaultCurrency
	}
	return c.Currency
}

// splitFields splits a line on the field separator. Empty fields are dropped,
// so consecutive separators count as one.
func splitFields(line string) []string {
	fields := strings.Split(line, fieldSeparator)
	tokens := fields[:0]
	for _, f := range fields {
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// Parse parses a single line, without its line terminator, into a Boat.
//
// A line with fewer than five fields returns ErrMalformedRecord.
func (c Codec) Parse(line string) (Boat, error) {
	tokens := splitFields(line)
	if len(tokens) < boatFields {
		return Boat{}, fmt.Errorf("%w: %d fields in %q, want %d", ErrMalformedRecord, len(tokens), line, boatFields)
	}
	if c.Strict && len(tokens) > boatFields {
		return Boat{}, fmt.Errorf("%w: %d fields in %q, want %d", ErrMalformedRecord, len(tokens), line, boatFields)
	}
	name, lengthTok, categoryTok, extraTok, owedTok := tokens[0], tokens[1], tokens[2], tokens[3], tokens[4]

	if c.Strict && utf8.RuneCountInString(name) > MaxNameLen {
		return Boat{}, fmt.Errorf("%w: name %q is longer than %d characters", ErrInvalidField, name, MaxNameLen)
	}

	length, err := c.parseInt("length", lengthTok)
	if err != nil {
		return Boat{}, err
	}

	category, known := ParseCategory(categoryTok)
	if c.Strict && !known {
		return Boat{}, fmt.Errorf("%w: unknown category %q", ErrInvalidField, categoryTok)
	}

	loc, err := c.parseLocation(category, extraTok)
	if err != nil {
		return Boat{}, err
	}

	owed, err := c.parseMoney("owed", owedTok)
	if err != nil {
		return Boat{}, err
	}

	return Boat{
		Name:     truncate(name, MaxNameLen),
		Length:   length,
		Location: loc,
		Owed:     owed,
	}, nil
}

func (c Codec) parseLocation(category Category, tok string) (Location, error) {
	switch category {
	case CategoryLand:
		bay, size := utf8.DecodeRuneInString(tok)
		if bay == utf8.RuneError && size == 1 {
			if c.Strict {
				return nil, fmt.Errorf("%w: bay %q is not valid UTF-8", ErrInvalidField, tok)
			}
			// A byte outside UTF-8 reads as its Latin-1 letter.
			bay = rune(tok[0])
		}
		if c.Strict && utf8.RuneCountInString(tok) != 1 {
			return nil, fmt.Errorf("%w: bay %q is not a single letter", ErrInvalidField, tok)
		}
		return Land{Bay: bay}, nil
	case CategoryTrailer:
		if c.Strict && utf8.RuneCountInString(tok) > MaxTagLen {
			return nil, fmt.Errorf("%w: tag %q is longer than %d characters", ErrInvalidField, tok, MaxTagLen)
		}
		return Trailer{Tag: truncate(tok, MaxTagLen)}, nil
	case CategoryStorage:
		n, err := c.parseInt("storage number", tok)
		return Storage{Number: n}, err
	default:
		n, err := c.parseInt("slip number", tok)
		return Slip{Number: n}, err
	}
}

func (c Codec) parseInt(field, tok string) (int, error) {
	if !c.Strict {
		return atoi(tok), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(tok))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidField, field, tok)
	}
	return n, nil
}

func (c Codec) parseMoney(field, tok string) (Money, error) {
	if !c.Strict {
		return M(atof(tok), c.currency()), nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(tok))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %s %q is not an amount", ErrInvalidField, field, tok)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s %q is negative", ErrInvalidField, field, tok)
	}
	return M(d, c.currency()), nil
}

// writable returns an error if the line of the boat would not read back as
// the same boat: an empty name, or a separator or line break inside a field.
func writable(b Boat) error {
	const breaking = fieldSeparator + "\r\n"
	if b.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidField)
	}
	if strings.ContainsAny(b.Name, breaking) {
		return fmt.Errorf("%w: name %q contains a separator", ErrInvalidField, b.Name)
	}
	switch loc := b.location().(type) {
	case Land:
		if loc.Bay == 0 || strings.ContainsRune(breaking, loc.Bay) {
			return fmt.Errorf("%w: bay %q cannot be written", ErrInvalidField, loc.Bay)
		}
	case Trailer:
		if loc.Tag == "" || strings.ContainsAny(loc.Tag, breaking) {
			return fmt.Errorf("%w: tag %q cannot be written", ErrInvalidField, loc.Tag)
		}
	}
	return nil
}

// ParseAmount parses an amount of money in the codec currency, the way the
// owed field of a boat line is parsed.
func (c Codec) ParseAmount(tok string) (Money, error) {
	return c.parseMoney("amount", tok)
}

// Format returns the line representation of a boat, without line terminator.
// The balance is always written with two decimal digits.
func (c Codec) Format(b Boat) string {
	loc := b.location()
	return strings.Join([]string{
		b.Name,
		strconv.Itoa(b.Length),
		loc.Category().String(),
		loc.extra(),
		b.Owed.Fixed(),
	}, fieldSeparator)
}

// numeric prefixes accepted by the lenient codec, after optional leading white spaces.
var (
	intPrefix   = regexp.MustCompile(`^[ \t\n\v\f\r]*([+-]?\d+)`)
	floatPrefix = regexp.MustCompile(`^[ \t\n\v\f\r]*([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
)

// atoi converts the longest integer prefix of s, or returns 0.
func atoi(s string) int {
	subs := intPrefix.FindStringSubmatch(s)
	if subs == nil {
		return 0
	}
	n, err := strconv.Atoi(subs[1])
	if err != nil {
		return 0 // out of range
	}
	return n
}

// atof converts the longest decimal prefix of s, or returns 0.
func atof(s string) decimal.Decimal {
	subs := floatPrefix.FindStringSubmatch(s)
	if subs == nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(subs[1])
	if err != nil {
		return decimal.Zero
	}
	return d
}

func itoa(n int) string { return strconv.Itoa(n) }

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
