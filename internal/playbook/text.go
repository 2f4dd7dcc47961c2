package playbook

import "strings"

// joinLower joins items as a lower-case Czech list.
func joinLower(items []string) string {
	lowered := make([]string, len(items))
	for i, s := range items {
		lowered[i] = strings.ToLower(s)
	}
	switch len(lowered) {
	case 0:
		return ""
	case 1:
		return lowered[0]
	}
	return strings.Join(lowered[:len(lowered)-1], ", ") + " a " + lowered[len(lowered)-1]
}
