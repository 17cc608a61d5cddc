package verifier

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sp0x/certd/search"
	"github.com/sp0x/certd/sheets"
)

// Kind is the category of a failed lookup, as exposed to users.
type Kind string

const (
	KindKeyEmpty         Kind = "key_empty"
	KindKeyTooShort      Kind = "key_too_short"
	KindNotFound         Kind = "not_found"
	KindEmptyDataset     Kind = "empty_dataset"
	KindRateLimited      Kind = "rate_limited"
	KindAccessDenied     Kind = "access_denied"
	KindResourceNotFound Kind = "resource_not_found"
	KindGeneric          Kind = "error"
)

const (
	LocaleBengali = "bn"
	LocaleEnglish = "en"
	DefaultLocale = LocaleBengali
)

type catalog map[Kind]string

var messages = map[string]catalog{
	LocaleBengali: {
		KindKeyEmpty:         "অনুগ্রহ করে একটি এ্যাডমিট নাম্বার লিখুন।",
		KindKeyTooShort:      "এ্যাডমিট নাম্বার কমপক্ষে %s অক্ষরের হতে হবে।",
		KindNotFound:         "এই এ্যাডমিট নাম্বারের কোনো তথ্য পাওয়া যায়নি। %sটি শীটে মোট %sটি রেকর্ড অনুসন্ধান করা হয়েছে।",
		KindEmptyDataset:     "কোনো ডেটা পাওয়া যায়নি। অনুগ্রহ করে পরে আবার চেষ্টা করুন।",
		KindRateLimited:      "অনেক বেশি অনুরোধ। অনুগ্রহ করে কিছুক্ষণ পর আবার চেষ্টা করুন।",
		KindAccessDenied:     "API অ্যাক্সেস সমস্যা। অনুগ্রহ করে পরে আবার চেষ্টা করুন।",
		KindResourceNotFound: "Google Sheet খুঁজে পাওয়া যায়নি। অনুগ্রহ করে Sheet ID পরীক্ষা করুন।",
		KindGeneric:          "একটি ত্রুটি ঘটেছে। অনুগ্রহ করে পরে আবার চেষ্টা করুন।",
	},
	LocaleEnglish: {
		KindKeyEmpty:         "Please enter an admit number.",
		KindKeyTooShort:      "The admit number must be at least %s characters long.",
		KindNotFound:         "No record was found for this admit number. Searched %s records in %s sheets.",
		KindEmptyDataset:     "No data is available. Please try again later.",
		KindRateLimited:      "Too many requests. Please try again in a little while.",
		KindAccessDenied:     "The sheets API denied access. Please try again later.",
		KindResourceNotFound: "The Google Sheet wasn't found. Please check the sheet ID.",
		KindGeneric:          "Something went wrong. Please try again later.",
	},
}

// IsSupportedLocale checks if messages are available in the given locale.
func IsSupportedLocale(locale string) bool {
	_, ok := messages[locale]
	return ok
}

// ErrorKind categorizes a lookup failure.
func ErrorKind(err error) Kind {
	var validation *search.ValidationError
	var notFound *search.NotFoundError
	switch {
	case errors.As(err, &validation):
		if validation.Reason == search.KeyTooShort {
			return KindKeyTooShort
		}
		return KindKeyEmpty
	case errors.As(err, &notFound):
		return KindNotFound
	case errors.Is(err, search.ErrEmptyDataset):
		return KindEmptyDataset
	}
	code, ok := sheets.StatusCode(err)
	if !ok {
		return KindGeneric
	}
	switch code {
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindAccessDenied
	case http.StatusNotFound:
		return KindResourceNotFound
	}
	return KindGeneric
}

// Message translates a lookup failure into a message for the user.
// Unknown locales fall back to the default one.
func Message(err error, locale string) string {
	msgs, ok := messages[locale]
	if !ok {
		locale = DefaultLocale
		msgs = messages[DefaultLocale]
	}
	kind := ErrorKind(err)
	switch kind {
	case KindKeyTooShort:
		var validation *search.ValidationError
		errors.As(err, &validation)
		return fmt.Sprintf(msgs[kind], localizeNumber(validation.MinLength, locale))
	case KindNotFound:
		var notFound *search.NotFoundError
		errors.As(err, &notFound)
		if locale == LocaleBengali {
			return fmt.Sprintf(msgs[kind], localizeNumber(notFound.Tables, locale), localizeNumber(notFound.Records, locale))
		}
		return fmt.Sprintf(msgs[kind], localizeNumber(notFound.Records, locale), localizeNumber(notFound.Tables, locale))
	}
	return msgs[kind]
}

var bengaliDigits = []rune("০১২৩৪৫৬৭৮৯")

func localizeNumber(n int, locale string) string {
	s := strconv.Itoa(n)
	if locale != LocaleBengali {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return bengaliDigits[r-'0']
		}
		return r
	}, s)
}
