package refind

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-errors/errors"
	"gopkg.in/yaml.v2"
)

// ParseDocument converts the decoded refindConfig mapping into a Config.
// menuEntries becomes top level entries and extraIcons a name/path map;
// every other key must hold a scalar or a list of scalars.
func ParseDocument(doc yaml.MapSlice) (Config, error) {
	config := make(Config, 0, len(doc))

	for _, item := range doc {
		key := fmt.Sprint(item.Key)

		var value Value
		var err error
		switch key {
		case KeyMenuEntries:
			value, err = parseEntries(key, item.Value, false)
		case KeyExtraIcons:
			value, err = parsePairs(key, item.Value)
		default:
			value, err = parseScalar(key, item.Value)
		}
		if err != nil {
			return nil, err
		}

		config = append(config, Field{Key: key, Value: value})
	}

	return config, nil
}

// parseEntryConfig converts the config of a single menu entry. Sub entries
// may not carry submenuEntries.
func parseEntryConfig(name string, raw interface{}, sub bool) (Config, error) {
	ms, ok := toMapSlice(raw)
	if !ok {
		return nil, errors.Errorf("%w: menu entry %q must be a mapping", ErrUnsupportedValue, name)
	}

	config := make(Config, 0, len(ms))
	for _, item := range ms {
		key := fmt.Sprint(item.Key)

		var value Value
		var err error
		if key == KeySubmenuEntries {
			if sub {
				return nil, errors.Errorf("%w: %q", ErrNestedSubmenu, name)
			}
			value, err = parseEntries(key, item.Value, true)
		} else {
			value, err = parseScalar(key, item.Value)
		}
		if err != nil {
			return nil, err
		}

		config = append(config, Field{Key: key, Value: value})
	}

	return config, nil
}

func parseEntries(key string, raw interface{}, sub bool) (Value, error) {
	if raw == nil {
		return NullValue(), nil
	}

	ms, ok := toMapSlice(raw)
	if !ok {
		return Value{}, errors.Errorf("%w: %s must be a mapping", ErrUnsupportedValue, key)
	}

	entries := make([]Entry, 0, len(ms))
	for _, item := range ms {
		name := fmt.Sprint(item.Key)
		config, err := parseEntryConfig(name, item.Value, sub)
		if err != nil {
			return Value{}, err
		}
		entries = append(entries, Entry{Name: name, Config: config})
	}

	if sub {
		return SubmenuValue(entries...)
	}
	return MenuEntriesValue(entries...), nil
}

func parsePairs(key string, raw interface{}) (Value, error) {
	if raw == nil {
		return NullValue(), nil
	}

	ms, ok := toMapSlice(raw)
	if !ok {
		return Value{}, errors.Errorf("%w: %s must be a mapping", ErrUnsupportedValue, key)
	}

	pairs := make([]Pair, 0, len(ms))
	for _, item := range ms {
		path, ok := item.Value.(string)
		if !ok {
			return Value{}, errors.Errorf("%w: %s.%v must be a path", ErrUnsupportedValue, key, item.Key)
		}
		pairs = append(pairs, Pair{Key: fmt.Sprint(item.Key), Value: path})
	}

	return MapValue(pairs...), nil
}

func parseScalar(key string, raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(v), nil
	case string:
		return StringValue(v), nil
	case int:
		return IntValue(int64(v)), nil
	case int64:
		return IntValue(v), nil
	case uint64:
		return IntValue(int64(v)), nil
	case float64:
		return FloatValue(v), nil
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, err := listItem(key, item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, s)
		}
		return ListValue(items...), nil
	}

	return Value{}, errors.Errorf("%w: %T for key %s", ErrUnsupportedValue, raw, key)
}

func listItem(key string, raw interface{}) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return formatFloat(v), nil
	}
	return "", errors.Errorf("%w: list item %T for key %s", ErrUnsupportedValue, raw, key)
}

// toMapSlice accepts the ordered mappings yaml.v2 produces under a
// MapSlice, and plain maps with their keys sorted.
func toMapSlice(raw interface{}) (yaml.MapSlice, bool) {
	switch v := raw.(type) {
	case yaml.MapSlice:
		return v, true
	case map[interface{}]interface{}:
		ms := make(yaml.MapSlice, 0, len(v))
		for k, val := range v {
			ms = append(ms, yaml.MapItem{Key: k, Value: val})
		}
		sort.Slice(ms, func(i, j int) bool {
			return fmt.Sprint(ms[i].Key) < fmt.Sprint(ms[j].Key)
		})
		return ms, true
	}
	return nil, false
}
