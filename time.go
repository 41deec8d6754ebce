// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package der

import (
	"time"
)

//region [UNIVERSAL 23] UTCTime

// ParseUTCTime decodes the content octets of a UTCTime value. The general
// format is "YYMMDDhhmm" followed by optional seconds and a mandatory zone
// indicator, either "Z" or a "±hhmm" offset. The two-digit year is resolved
// to 2000-2049 for values below 50 and to 1950-1999 otherwise. The returned
// time is normalized to UTC.
func ParseUTCTime(b []byte) (time.Time, error) {
	s := string(b)
	if len(s) < 11 || len(s) > 17 {
		return time.Time{}, &SyntaxError{Tag: TagUTCTime, Err: errInvalidTime}
	}
	year := atoiN(s, 0, 2)
	month := atoiN(s, 2, 2)
	day := atoiN(s, 4, 2)
	hour := atoiN(s, 6, 2)
	minute := atoiN(s, 8, 2)
	rest := s[10:]

	second := 0
	if len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
		if second = atoiN(rest, 0, 2); second < 0 {
			return time.Time{}, &SyntaxError{Tag: TagUTCTime, Err: errInvalidTime}
		}
		rest = rest[2:]
	}
	offset, ok := parseZoneOffset(rest)
	if !ok || year < 0 || month < 0 || day < 0 || hour < 0 || minute < 0 {
		return time.Time{}, &SyntaxError{Tag: TagUTCTime, Err: errInvalidTime}
	}
	if year < 50 {
		year += 2000
	} else {
		year += 1900
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	// time.Date normalizes out-of-range components, e.g. a 13th month. A
	// round trip detects such inputs.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, &SyntaxError{Tag: TagUTCTime, Err: errInvalidTime}
	}
	return t.Add(-time.Duration(offset) * time.Minute), nil
}

// EncodeUTCTime returns the content octets of a UTCTime value: t in UTC,
// formatted as "YYMMDDhhmmssZ".
func EncodeUTCTime(t time.Time) []byte {
	t = t.UTC()
	b := make([]byte, 0, 13)
	b = appendIntN(b, t.Year()%100, 2)
	b = appendIntN(b, int(t.Month()), 2)
	b = appendIntN(b, t.Day(), 2)
	b = appendIntN(b, t.Hour(), 2)
	b = appendIntN(b, t.Minute(), 2)
	b = appendIntN(b, t.Second(), 2)
	return append(b, 'Z')
}

//endregion

//region [UNIVERSAL 24] GeneralizedTime

// ParseGeneralizedTime decodes the content octets of a GeneralizedTime
// value: "YYYYMMDDhhmmss" followed by an optional fraction of a second and
// an optional zone indicator, either "Z" or a "±hhmm" offset. Fractions are
// truncated to millisecond precision. With a zone indicator the returned
// time is normalized to UTC; without one the value denotes local time.
func ParseGeneralizedTime(b []byte) (time.Time, error) {
	s := string(b)
	if len(s) < 14 {
		return time.Time{}, &SyntaxError{Tag: TagGeneralizedTime, Err: errInvalidTime}
	}
	year := atoiN(s, 0, 4)
	month := atoiN(s, 4, 2)
	day := atoiN(s, 6, 2)
	hour := atoiN(s, 8, 2)
	minute := atoiN(s, 10, 2)
	second := atoiN(s, 12, 2)
	if year < 0 || month < 0 || day < 0 || hour < 0 || minute < 0 || second < 0 {
		return time.Time{}, &SyntaxError{Tag: TagGeneralizedTime, Err: errInvalidTime}
	}
	rest := s[14:]

	nsec := 0
	if len(rest) > 0 && rest[0] == '.' {
		rest = rest[1:]
		unit := int(time.Second)
		for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' && unit > int(time.Millisecond) {
			unit /= 10
			nsec += int(rest[0]-'0') * unit
			rest = rest[1:]
		}
		// Digits beyond millisecond precision are parsed but dropped.
		for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
			rest = rest[1:]
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, nsec, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, &SyntaxError{Tag: TagGeneralizedTime, Err: errInvalidTime}
	}
	if len(rest) == 0 {
		// No zone indicator makes this a local time.
		return time.Date(year, time.Month(month), day, hour, minute, second, nsec, time.Local), nil
	}
	offset, ok := parseZoneOffset(rest)
	if !ok {
		return time.Time{}, &SyntaxError{Tag: TagGeneralizedTime, Err: errInvalidTime}
	}
	return t.Add(-time.Duration(offset) * time.Minute), nil
}

// EncodeGeneralizedTime returns the content octets of a GeneralizedTime
// value: t in UTC, formatted as "YYYYMMDDhhmmssZ". Fractional seconds are
// not emitted.
func EncodeGeneralizedTime(t time.Time) []byte {
	t = t.UTC()
	b := make([]byte, 0, 15)
	b = appendIntN(b, t.Year(), 4)
	b = appendIntN(b, int(t.Month()), 2)
	b = appendIntN(b, t.Day(), 2)
	b = appendIntN(b, t.Hour(), 2)
	b = appendIntN(b, t.Minute(), 2)
	b = appendIntN(b, t.Second(), 2)
	return append(b, 'Z')
}

//endregion

// atoiN decodes the n decimal digits of s starting at offset i. It returns
// -1 if s is too short or contains a non-digit in that range.
func atoiN(s string, i, n int) int {
	if len(s) < i+n {
		return -1
	}
	v := 0
	for _, c := range []byte(s[i : i+n]) {
		if c < '0' || c > '9' {
			return -1
		}
		v = v*10 + int(c-'0')
	}
	return v
}

// appendIntN appends v to b as exactly n decimal digits with leading zeros.
func appendIntN(b []byte, v, n int) []byte {
	for i := n - 1; i >= 0; i-- {
		b = append(b, byte('0'+v/pow10(i)%10))
	}
	return b
}

func pow10(n int) int {
	v := 1
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}

// parseZoneOffset decodes a time zone indicator: "Z" for UTC or a "±hhmm"
// offset. It returns the offset in minutes east of UTC.
func parseZoneOffset(s string) (minutes int, ok bool) {
	if s == "Z" {
		return 0, true
	}
	if len(s) != 5 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}
	hh := atoiN(s, 1, 2)
	mm := atoiN(s, 3, 2)
	if hh < 0 || mm < 0 {
		return 0, false
	}
	minutes = hh*60 + mm
	if s[0] == '-' {
		minutes = -minutes
	}
	return minutes, true
}
