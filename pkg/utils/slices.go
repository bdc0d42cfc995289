package utils

import "strings"

func RemoveDuplicates[T comparable](in []T) []T {
	seen := make(map[T]bool)
	out := []T{}
	for _, v := range in {
		if _, ok := seen[v]; !ok {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// SplitValues flattens repeated and comma separated query values, dropping blanks.
func SplitValues(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return RemoveDuplicates(out)
}
