package refind

import (
	"math"
	"strconv"
	"strings"
)

const indentUnit = "    "

// FormatLine renders a single `key value` line. A defaultSelection list
// renders one line per item.
func FormatLine(key string, v Value, indent string) (string, error) {
	if key == KeyDefaultSelection && v.kind == List {
		var sb strings.Builder
		for _, item := range v.list {
			line, err := FormatLine(key, StringValue(item), indent)
			if err != nil {
				return "", err
			}
			sb.WriteString(line)
		}
		return sb.String(), nil
	}

	var formatted string
	switch v.kind {
	case Bool:
		formatted = strconv.FormatBool(v.b)
	case String:
		if key == KeyOptions || key == KeyAddOptions {
			formatted = quote(v.s)
		} else {
			formatted = v.s
		}
	case Int:
		formatted = strconv.FormatInt(v.i, 10)
	case Float:
		formatted = formatFloat(v.f)
	case List:
		if key == KeyResolution {
			formatted = strings.Join(v.list, " ")
		} else {
			formatted = strings.Join(v.list, ",")
		}
	default:
		return "", unsupported(key, v)
	}

	return indent + SnakeCase(key) + " " + formatted + "\n", nil
}

// FormatEntry renders a `menuentry` block, or a `submenuentry` block one
// level deeper when sub is set. Null values are skipped. Only an enable
// value of false writes anything.
func FormatEntry(name string, config Config, sub bool) (string, error) {
	var sb strings.Builder

	indent := indentUnit
	if sub {
		sb.WriteString(indentUnit + "sub")
		indent += indentUnit
	}
	sb.WriteString(`menuentry "` + name + `" {` + "\n")

	for _, field := range config {
		if field.Value.IsNull() {
			continue
		}

		switch field.Key {
		case KeyEnable:
			if field.Value.kind == Bool && !field.Value.b {
				sb.WriteString(indent + "disabled\n")
			}
		case KeySubmenuEntries:
			if sub {
				return "", checkSubEntry(name, config)
			}
			if field.Value.kind != Entries {
				return "", unsupported(field.Key, field.Value)
			}
			for _, entry := range field.Value.entries {
				block, err := FormatEntry(entry.Name, entry.Config, true)
				if err != nil {
					return "", err
				}
				sb.WriteString(block)
			}
		default:
			line, err := FormatLine(field.Key, field.Value, indent)
			if err != nil {
				return "", err
			}
			sb.WriteString(line)
		}
	}

	if sub {
		sb.WriteString(indentUnit)
	}
	sb.WriteString("}\n")

	return sb.String(), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatFloat uses the shortest representation, in exponent form below
// 1e-4 and from 1e16 on. Plain numbers always keep a fraction part so 2.0
// is not confused with an integer setting.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	exp := 0
	if f != 0 {
		e := strconv.FormatFloat(f, 'e', -1, 64)
		exp, _ = strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
		if exp < -4 || exp >= 16 {
			return e
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
