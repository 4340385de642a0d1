package view

import (
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"opensy-web/internal/locale"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// now is replaced in tests.
var now = time.Now

func toInt64(v interface{}) int64 {
	switch vt := v.(type) {
	case int64:
		return vt
	case int32:
		return int64(vt)
	case uint32:
		return int64(vt)
	case uint64:
		return int64(vt)
	case int:
		return int64(vt)
	case float64:
		return int64(vt)
	case json.Number:
		n, _ := vt.Int64()
		return n
	default:
		return 0
	}
}

// FuncMap returns the helpers available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int64) int64 {
			return a + b
		},
		"subtract": func(a, b int64) int64 {
			return a - b
		},
		"intComma": func(v interface{}) string {
			return humanize.Comma(toInt64(v))
		},
		"bytes": func(v interface{}) string {
			n := toInt64(v)
			if n < 0 {
				return "0 B"
			}
			return humanize.Bytes(uint64(n))
		},
		"hashrate": func(hps float64) string {
			return humanize.SIWithDigits(hps, 2, "H/s")
		},
		"difficulty": func(d float64) string {
			return humanize.CommafWithDigits(d, 2)
		},
		"amount":    Amount,
		"shortHash": ShortHash,
		"unixTime":  UnixTime,
		"ago":       Ago,
	}
}

// Amount prints a coin value with all 8 decimals.
func Amount(d decimal.Decimal) string {
	return d.StringFixed(8)
}

// ShortHash keeps the first and last 8 characters of a long hash.
func ShortHash(h string) string {
	if len(h) <= 20 {
		return h
	}
	return h[:8] + "…" + h[len(h)-8:]
}

func UnixTime(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format("2006-01-02 15:04:05 UTC")
}

// Ago renders the age of a unix timestamp with the dictionary's words.
func Ago(sec int64, t *locale.Explorer) string {
	d := now().Sub(time.Unix(sec, 0))
	switch {
	case d < time.Minute:
		return t.JustNow
	case d < time.Hour:
		return fmt.Sprintf("%d %s", int(d/time.Minute), t.MinutesAgo)
	case d < 24*time.Hour:
		return fmt.Sprintf("%d %s", int(d/time.Hour), t.HoursAgo)
	default:
		return fmt.Sprintf("%d %s", int(d/(24*time.Hour)), t.DaysAgo)
	}
}
