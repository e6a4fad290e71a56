package util

import (
	"strings"
	"unicode"
)

// NormalizeTags 去除空白与重复的标签名，保持原有顺序
func NormalizeTags(raw []string) []string {
	tagSet := make(map[string]struct{})
	var tags []string

	for _, name := range raw {
		name = strings.TrimSpace(strings.Trim(name, "#.,，。!?！？"))
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, exists := tagSet[key]; exists {
			continue
		}
		tagSet[key] = struct{}{}
		tags = append(tags, name)
	}

	return tags
}

// Slugify 生成保留 unicode 字母的 slug，空白与连字符折叠为单个 "-"
func Slugify(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			pendingDash = true
		}
	}
	return strings.Trim(b.String(), "-_")
}
