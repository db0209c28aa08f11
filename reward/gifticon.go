package reward

import (
	"regexp"
	"strconv"
	"strings"
)

// Gifticon codes follow the grammar
//
//	{BRAND}(_{SEGMENT})*_GIFTICON(_{FACE_VALUE})?
//
// where BRAND and SEGMENT are alphanumeric tokens and FACE_VALUE is a run of
// digits, e.g. BAEMIN_GIFTICON_10000 or STARBUCKS_AMERICANO_GIFTICON.
var reGifticon = regexp.MustCompile(`^([A-Z0-9]+)(?:_[A-Z0-9]+)*_GIFTICON(?:_(\d+))?$`)

var brandNames = map[string]string{
	"BAEMIN":     "배민",
	"STARBUCKS":  "스타벅스",
	"CU":         "CU",
	"GS25":       "GS25",
	"OLIVEYOUNG": "올리브영",
	"KAKAO":      "카카오",
}

type Gifticon struct {
	// Brand is the display name, empty when the code has no parsable brand.
	Brand string
	// FaceValue is the value encoded in the code, 0 when absent.
	FaceValue int
}

func IsGifticon(code string) bool {
	return strings.Contains(strings.ToUpper(code), "GIFTICON")
}

// ParseGifticon reports whether code is a gifticon and extracts what the
// grammar allows. Codes that only contain GIFTICON yield a zero Gifticon.
func ParseGifticon(code string) (g Gifticon, ok bool) {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if !strings.Contains(upper, "GIFTICON") {
		return g, false
	}

	m := reGifticon.FindStringSubmatch(upper)
	if m == nil {
		return g, true
	}

	g.Brand = m[1]
	if name, found := brandNames[m[1]]; found {
		g.Brand = name
	}
	if m[2] != "" {
		if v, err := strconv.Atoi(m[2]); err == nil {
			g.FaceValue = v
		}
	}
	return g, true
}
