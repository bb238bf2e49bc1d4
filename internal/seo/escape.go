package seo

import "strings"

// xmlReplacer escapes the five reserved XML characters in a single pass, so
// replacement text is never rescanned and ampersands cannot double-escape.
// Callers own single-application discipline: EscapeXML once per string.
var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML makes text safe for embedding in XML text and attribute nodes.
func EscapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
