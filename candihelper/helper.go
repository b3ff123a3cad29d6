package candihelper

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
)

// StringYellow func
func StringYellow(str string) string {
	return fmt.Sprintf("\x1b[33;2m%s\x1b[0m", str)
}

// StringGreen func
func StringGreen(str string) string {
	return fmt.Sprintf("\x1b[32;2m%s\x1b[0m", str)
}

// ToFloatPtr helper
func ToFloatPtr(f float64) *float64 {
	return &f
}

// ToBytes convert all types to bytes
func ToBytes(i interface{}) (b []byte) {
	switch t := i.(type) {
	case []byte:
		b = t
	case string:
		b = []byte(t)
	default:
		b, _ = json.Marshal(i)
	}
	return
}

// StringInSlice function for checking whether string in slice
func StringInSlice(str string, list []string) bool {
	for _, v := range list {
		if v == str {
			return true
		}
	}
	return false
}

// SortedKeys return keys of a string set in ascending order
func SortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MaskingPasswordURL for hide plain text password from given URL format
func MaskingPasswordURL(stringURL string) string {
	u, err := url.Parse(stringURL)
	if err != nil {
		return stringURL
	}
	pass, ok := u.User.Password()
	if pass == "" || !ok {
		return stringURL
	}

	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}
