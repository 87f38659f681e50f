package refind

import "strings"

// SnakeCase turns a camel case configuration key into the rEFInd token:
// every upper case letter but the first character gets an underscore in
// front of it, then the whole key is lower cased.
func SnakeCase(key string) string {
	var sb strings.Builder
	for i, c := range key {
		if i > 0 && c >= 'A' && c <= 'Z' {
			sb.WriteByte('_')
		}
		sb.WriteRune(c)
	}
	return strings.ToLower(sb.String())
}
