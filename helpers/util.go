package helpers

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigitRegex = regexp.MustCompile(`[^0-9]`)
	ageRegex      = regexp.MustCompile(`(\d+)\s*(주|개월|년|세|일)`)
	whitespace    = regexp.MustCompile(`\s+`)

	onclickLocationRegex = regexp.MustCompile(`location\.href\s*=\s*['"]([^'"]+)['"]`)
	onclickWindowRegex   = regexp.MustCompile(`window\.open\s*\(\s*['"]([^'"]+)['"]`)

	styleImageRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)background-image\s*:\s*url\s*\(\s*['"]?([^)'"]+)['"]?\s*\)`),
		regexp.MustCompile(`(?i)background\s*:\s*url\s*\(\s*['"]?([^)'"]+)['"]?\s*\)`),
	}
)

// ExtractPrice strips every non-digit character from the text and parses the
// remainder as an integer. Returns 0 when no digits are present.
func ExtractPrice(text string) int {
	digits := nonDigitRegex.ReplaceAllString(text, "")
	if digits == "" {
		return 0
	}
	price, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return price
}

// ExtractAge returns the first digits+unit token (주/개월/년/세/일) found in
// the text, or the trimmed original text when no such token exists.
func ExtractAge(text string) string {
	if match := ageRegex.FindString(text); match != "" {
		return strings.TrimSpace(match)
	}
	return strings.TrimSpace(text)
}

// ExtractGender infers gender from a feminine marker substring.
// Defaults to 수컷 when no marker is present.
func ExtractGender(text string) string {
	if strings.Contains(text, "암") {
		return "암컷"
	}
	return "수컷"
}

// CleanText collapses runs of whitespace into single spaces and trims
func CleanText(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// MakeAbsoluteURL resolves a possibly relative URL against a base URL
func MakeAbsoluteURL(href, baseURL string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// ExtractOnclickURL pulls a navigation target out of an onclick attribute,
// e.g. onclick="location.href='view.php?id=123'" -> "view.php?id=123"
func ExtractOnclickURL(onclick string) string {
	if onclick == "" {
		return ""
	}
	if m := onclickLocationRegex.FindStringSubmatch(onclick); m != nil {
		return m[1]
	}
	if m := onclickWindowRegex.FindStringSubmatch(onclick); m != nil {
		return m[1]
	}
	return ""
}

// ExtractStyleImageURL pulls an image URL out of a style attribute,
// e.g. style="background-image:url('image.jpg')" -> "image.jpg"
func ExtractStyleImageURL(style string) string {
	if style == "" {
		return ""
	}
	for _, re := range styleImageRegexes {
		if m := re.FindStringSubmatch(style); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
