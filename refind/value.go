package refind

import (
	"github.com/go-errors/errors"
)

// Configuration keys with special handling.
const (
	KeyEnable             = "enable"
	KeySubmenuEntries     = "submenuEntries"
	KeyMenuEntries        = "menuEntries"
	KeyDefaultSelection   = "defaultSelection"
	KeyResolution         = "resolution"
	KeyOptions            = "options"
	KeyAddOptions         = "addOptions"
	KeyTheme              = "theme"
	KeyExtraIcons         = "extraIcons"
	KeyManageNixOSEntries = "manageNixOSEntries"
)

var (
	// ErrNestedSubmenu is returned when a sub entry carries submenu entries.
	ErrNestedSubmenu = errors.New("submenuEntries is not allowed in submenu entries")

	// ErrUnsupportedValue is returned for values a key cannot hold.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Kind tags the variant held by a Value.
type Kind int

// Value kinds. Map is only valid for extraIcons, Entries only for
// menuEntries and submenuEntries.
const (
	Null Kind = iota
	Bool
	String
	Int
	Float
	List
	Map
	Entries
)

var kindNames = map[Kind]string{
	Null:    "null",
	Bool:    "bool",
	String:  "string",
	Int:     "int",
	Float:   "float",
	List:    "list",
	Map:     "map",
	Entries: "entries",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Value is a configuration value.
type Value struct {
	kind    Kind
	b       bool
	s       string
	i       int64
	f       float64
	list    []string
	pairs   []Pair
	entries []Entry
}

// Pair is a name/path item of a Map value.
type Pair struct {
	Key   string
	Value string
}

// Entry is a named menu entry.
type Entry struct {
	Name   string
	Config Config
}

// Field is a configuration key and its value.
type Field struct {
	Key   string
	Value Value
}

// Config is an ordered set of fields. Order is the output order.
type Config []Field

// Get returns the value of key.
func (c Config) Get(key string) (Value, bool) {
	for _, f := range c {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// NullValue is an absent value, skipped on output.
func NullValue() Value { return Value{kind: Null} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: String, s: s} }

// IntValue wraps i.
func IntValue(i int64) Value { return Value{kind: Int, i: i} }

// FloatValue wraps f.
func FloatValue(f float64) Value { return Value{kind: Float, f: f} }

// ListValue wraps an ordered list of strings.
func ListValue(items ...string) Value { return Value{kind: List, list: items} }

// MapValue wraps ordered name/path pairs.
func MapValue(pairs ...Pair) Value { return Value{kind: Map, pairs: pairs} }

// MenuEntriesValue wraps top level menu entries.
func MenuEntriesValue(entries ...Entry) Value { return Value{kind: Entries, entries: entries} }

// SubmenuValue wraps sub entries, none of which may carry submenu entries
// of its own.
func SubmenuValue(entries ...Entry) (Value, error) {
	for _, e := range entries {
		if err := checkSubEntry(e.Name, e.Config); err != nil {
			return Value{}, err
		}
	}
	return Value{kind: Entries, entries: entries}, nil
}

// NewSubEntry builds a submenu entry, rejecting configs with submenu entries.
func NewSubEntry(name string, config Config) (Entry, error) {
	if err := checkSubEntry(name, config); err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Config: config}, nil
}

func checkSubEntry(name string, config Config) error {
	if _, ok := config.Get(KeySubmenuEntries); ok {
		return errors.Errorf("%w: %q", ErrNestedSubmenu, name)
	}
	return nil
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is absent.
func (v Value) IsNull() bool { return v.kind == Null }

// Bool returns the boolean variant.
func (v Value) Bool() bool { return v.b }

// Str returns the string variant.
func (v Value) Str() string { return v.s }

// Items returns the list variant.
func (v Value) Items() []string { return v.list }

// Pairs returns the map variant.
func (v Value) Pairs() []Pair { return v.pairs }

// Entries returns the entries variant.
func (v Value) Entries() []Entry { return v.entries }

func unsupported(key string, v Value) error {
	return errors.Errorf("%w: %s for key %s", ErrUnsupportedValue, v.kind, key)
}
