package mlog

import (
	"strings"
)

// formatLine renders a log line made up of labelled IDs, a fixed-width column
// of icons and any non-empty text fragments.
//
// Text fragments after the first are separated by SeparatorIcon.
func formatLine(
	ids []IconWithLabel,
	icons []Icon,
	text ...string,
) string {
	var b strings.Builder

	for _, v := range ids {
		v.WriteTo(&b) // nolint:errcheck
		b.Write(space2)
	}

	for _, v := range icons {
		v.WriteTo(&b) // nolint:errcheck
		b.Write(space1)
	}

	first := true
	for _, v := range text {
		if v == "" {
			continue
		}

		b.Write(space1)

		if !first {
			b.WriteString(SeparatorIcon.String())
			b.Write(space1)
		}

		b.WriteString(v)
		first = false
	}

	return b.String()
}

var (
	space1 = []byte{' '}
	space2 = []byte{' ', ' '}
)
