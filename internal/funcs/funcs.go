package funcs

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var TemplateFuncs = template.FuncMap{
	"titleCase":  titleCase,
	"upperCase":  strings.ToUpper,
	"lowerCase":  strings.ToLower,
	"formatInt":  formatInt[int],
	"formatDate": formatDate,
	"yn":         yesNo,
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// formatInt renders an integer with thousands separators, e.g. 12500 -> "12,500".
func formatInt[T constraints.Integer](n T) string {
	s := strconv.FormatInt(int64(n), 10)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func FormatCount(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
