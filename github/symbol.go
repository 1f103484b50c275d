package github

import (
	"regexp"
	"strings"
)

// SymbolInfo describes a class-like symbol found in Python source.
type SymbolInfo struct {
	// Description is the symbol's docstring, trimmed.
	Description string

	// Methods lists the exported (non-underscore) method names declared
	// after the symbol definition, in source order.
	Methods []string
}

var (
	docstringRe = regexp.MustCompile(`(?s)"""(.*?)"""`)
	methodRe    = regexp.MustCompile(`def (\w+)\(self`)
)

// ExtractSymbolInfo locates a class definition for symbol in Python source
// and pulls out its docstring and exported method names. A symbol without
// a class definition yields a zero SymbolInfo.
func ExtractSymbolInfo(source, symbol string) SymbolInfo {
	classRe := regexp.MustCompile(`class ` + regexp.QuoteMeta(symbol) + `\([^)]*\):`)
	loc := classRe.FindStringIndex(source)
	if loc == nil {
		return SymbolInfo{}
	}

	var info SymbolInfo

	if m := docstringRe.FindStringSubmatch(source[loc[1]:]); m != nil {
		info.Description = strings.TrimSpace(m[1])
	}

	for _, m := range methodRe.FindAllStringSubmatch(source[loc[0]:], -1) {
		name := m[1]
		if strings.HasPrefix(name, "_") {
			continue
		}
		info.Methods = append(info.Methods, name)
	}

	return info
}
