// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"sync"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/lestrrat-go/strftime"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDateFormat is the strftime pattern used for date axes and labels,
// for example 28-Jan-86.
const DefaultDateFormat = "%d-%b-%y"

var english = message.NewPrinter(language.English)

// FormatNumber formats v with exactly decimals fraction digits,
// using English digit grouping, as in 1,234.50.
func FormatNumber(v float64, decimals int) string {
	decimals = max(0, decimals)
	return english.Sprint(number.Decimal(v, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

var (
	dateFormatsMu sync.Mutex
	dateFormats   = map[string]*strftime.Strftime{}
)

// DateFormatter returns a function formatting instants with the given
// strftime pattern. Compiled patterns are cached.
func DateFormatter(pattern string) (func(t time.Time) string, error) {
	dateFormatsMu.Lock()
	defer dateFormatsMu.Unlock()
	if f, ok := dateFormats[pattern]; ok {
		return f.FormatString, nil
	}
	f, err := strftime.New(pattern)
	if err != nil {
		return nil, err
	}
	dateFormats[pattern] = f
	return f.FormatString, nil
}

// FormatDate formats t with the given strftime pattern, falling back
// on [DefaultDateFormat] (and logging) if the pattern is invalid.
func FormatDate(t time.Time, pattern string) string {
	f, err := DateFormatter(pattern)
	if errors.Log(err) != nil {
		f = errors.Must1(DateFormatter(DefaultDateFormat))
	}
	return f(t)
}
