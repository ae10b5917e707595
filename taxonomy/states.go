package taxonomy

import "strings"

// US state codes to full names (plus DC). Listing rows store the 2-letter
// code; the facet response resolves the display name and slug from here.
var stateNames = map[string]string{
	"AL": "Alabama",
	"AK": "Alaska",
	"AZ": "Arizona",
	"AR": "Arkansas",
	"CA": "California",
	"CO": "Colorado",
	"CT": "Connecticut",
	"DE": "Delaware",
	"DC": "District of Columbia",
	"FL": "Florida",
	"GA": "Georgia",
	"HI": "Hawaii",
	"ID": "Idaho",
	"IL": "Illinois",
	"IN": "Indiana",
	"IA": "Iowa",
	"KS": "Kansas",
	"KY": "Kentucky",
	"LA": "Louisiana",
	"ME": "Maine",
	"MD": "Maryland",
	"MA": "Massachusetts",
	"MI": "Michigan",
	"MN": "Minnesota",
	"MS": "Mississippi",
	"MO": "Missouri",
	"MT": "Montana",
	"NE": "Nebraska",
	"NV": "Nevada",
	"NH": "New Hampshire",
	"NJ": "New Jersey",
	"NM": "New Mexico",
	"NY": "New York",
	"NC": "North Carolina",
	"ND": "North Dakota",
	"OH": "Ohio",
	"OK": "Oklahoma",
	"OR": "Oregon",
	"PA": "Pennsylvania",
	"RI": "Rhode Island",
	"SC": "South Carolina",
	"SD": "South Dakota",
	"TN": "Tennessee",
	"TX": "Texas",
	"UT": "Utah",
	"VT": "Vermont",
	"VA": "Virginia",
	"WA": "Washington",
	"WV": "West Virginia",
	"WI": "Wisconsin",
	"WY": "Wyoming",
}

var stateSlugs = map[string]string{} // slug of full name -> code

func initStates() {
	for code, name := range stateNames {
		stateSlugs[Slugify(name)] = code
	}
}

// StateName resolves a 2-letter code (any casing) to the full state name.
func StateName(code string) (string, bool) {
	name, ok := stateNames[strings.ToUpper(code)]
	return name, ok
}

// ValidStateCode reports whether code is a known 2-letter state code.
func ValidStateCode(code string) bool {
	_, ok := stateNames[strings.ToUpper(code)]
	return ok
}

// StateBySlug resolves a state-name slug ("north-carolina") back to its code
// and full name, for inbound URL segments.
func StateBySlug(slug string) (code string, name string, ok bool) {
	code, ok = stateSlugs[slug]
	if !ok {
		return "", "", false
	}
	return code, stateNames[code], true
}
