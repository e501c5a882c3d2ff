package l10n

// layoutSet holds the Go time layouts and currency placement for one
// language's conventions.
type layoutSet struct {
	dateShort     string
	dateMedium    string
	dateLong      string
	timeOfDay     string
	dateTime      string
	currencyAfter bool
}

// layoutsFor returns the layout set for a language code. Month and weekday
// names come from the Go time package and are therefore English; languages
// whose conventions rely on localized names use numeric layouts instead.
func layoutsFor(lang string) layoutSet {
	switch lang {
	case "de":
		return layoutSet{
			dateShort:     "02.01.06",
			dateMedium:    "02.01.2006",
			dateLong:      "02.01.2006",
			timeOfDay:     "15:04",
			dateTime:      "02.01.2006 15:04",
			currencyAfter: true,
		}
	case "fr", "es", "pt", "it":
		return layoutSet{
			dateShort:     "02/01/06",
			dateMedium:    "02/01/2006",
			dateLong:      "02/01/2006",
			timeOfDay:     "15:04",
			dateTime:      "02/01/2006 15:04",
			currencyAfter: true,
		}
	case "pl", "ru", "uk":
		return layoutSet{
			dateShort:     "02.01.06",
			dateMedium:    "02.01.2006",
			dateLong:      "02.01.2006",
			timeOfDay:     "15:04",
			dateTime:      "02.01.2006 15:04",
			currencyAfter: true,
		}
	case "ja", "zh":
		return layoutSet{
			dateShort:  "2006/01/02",
			dateMedium: "2006/01/02",
			dateLong:   "2006/01/02",
			timeOfDay:  "15:04",
			dateTime:   "2006/01/02 15:04",
		}
	case "ko":
		return layoutSet{
			dateShort:  "2006.01.02",
			dateMedium: "2006.01.02",
			dateLong:   "2006.01.02",
			timeOfDay:  "15:04",
			dateTime:   "2006.01.02 15:04",
		}
	default:
		return layoutSet{
			dateShort:  "1/2/06",
			dateMedium: "Jan 2, 2006",
			dateLong:   "January 2, 2006",
			timeOfDay:  "3:04 PM",
			dateTime:   "Jan 2, 2006 3:04 PM",
		}
	}
}
