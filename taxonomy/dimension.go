package taxonomy

// ═══════════════════════════════════════════════════════════
// Dimensions & canonical entries
// ═══════════════════════════════════════════════════════════

// Dimension identifies one facetable axis of a job listing.
type Dimension string

const (
	DimState      Dimension = "state"
	DimSpecialty  Dimension = "specialty"
	DimJobType    Dimension = "jobType"
	DimExperience Dimension = "experienceLevel"
	DimShift      Dimension = "shiftType"
	DimEmployer   Dimension = "employer"
)

// TaxonomyDimensions are the dimensions with synonym tables. State and
// employer facet too, but their values are canonical already (FK / 2-letter
// code) so they never go through the normalizer.
var TaxonomyDimensions = []Dimension{DimSpecialty, DimJobType, DimExperience, DimShift}

// entry is one canonical bucket plus every raw form the classifier has ever
// produced for it. Aliases are matched after folding, so casing and
// hyphen/underscore variants need not be enumerated separately.
type entry struct {
	Display string
	Aliases []string
}

// The tables below are the current taxonomy version. They must cover every
// legacy tag still present in the jobs table; folding "entry level" and
// "senior" into Experienced is a deliberate breaking migration, so there is
// no 1:1 mapping back to historical raw values.
var specialtyEntries = []entry{
	{Display: "General Nursing", Aliases: []string{"All Specialties", "General", "General Nursing", "RN"}},
	{Display: "ICU", Aliases: []string{"ICU", "Intensive Care", "Intensive Care Unit", "Critical Care"}},
	{Display: "ER", Aliases: []string{"ER", "Emergency", "Emergency Room", "Emergency Department", "ED"}},
	{Display: "OR", Aliases: []string{"OR", "Operating Room", "Perioperative", "Surgical Services"}},
	{Display: "Med Surg", Aliases: []string{"Med Surg", "Med-Surg", "Medical Surgical", "Medical-Surgical"}},
	{Display: "Labor & Delivery", Aliases: []string{"Labor & Delivery", "Labor and Delivery", "L&D"}},
	{Display: "NICU", Aliases: []string{"NICU", "Neonatal", "Neonatal ICU"}},
	{Display: "PACU", Aliases: []string{"PACU", "Post Anesthesia", "Recovery Room"}},
	{Display: "Telemetry", Aliases: []string{"Telemetry", "Tele"}},
	{Display: "Behavioral Health", Aliases: []string{"Behavioral Health", "Psych", "Psychiatric", "Mental Health"}},
	{Display: "Long Term Care", Aliases: []string{"LTC", "Long Term Care", "Long-Term Care", "Skilled Nursing"}},
	{Display: "Home Health", Aliases: []string{"Home Health", "Home Care"}},
	{Display: "Oncology", Aliases: []string{"Oncology", "Onc"}},
	{Display: "Pediatrics", Aliases: []string{"Pediatrics", "Pediatric", "Peds"}},
}

var jobTypeEntries = []entry{
	{Display: "Full Time", Aliases: []string{"Full-Time", "Full Time", "Fulltime", "FT"}},
	{Display: "Part Time", Aliases: []string{"Part-Time", "Part Time", "PT"}},
	{Display: "Per Diem", Aliases: []string{"PRN", "Per Diem", "Per-Diem", "Perdiem"}},
	{Display: "Travel", Aliases: []string{"Travel", "Travel Nursing", "Travel Contract", "Traveler"}},
	{Display: "Contract", Aliases: []string{"Contract", "Temporary", "Temp", "Locum"}},
}

var experienceEntries = []entry{
	{Display: "New Grad", Aliases: []string{"New Grad", "New-Grad", "New Graduate", "Graduate Nurse", "Student"}},
	{Display: "Experienced", Aliases: []string{"Experienced", "Entry Level", "Entry-Level", "Junior", "Mid Level", "Senior", "Any"}},
	{Display: "Leadership", Aliases: []string{"Leadership", "Manager", "Management", "Director", "Charge Nurse", "Supervisor"}},
}

var shiftEntries = []entry{
	{Display: "Day Shift", Aliases: []string{"Day", "Days", "Day Shift", "AM"}},
	{Display: "Night Shift", Aliases: []string{"Night", "Nights", "Night Shift", "NOC", "Overnight"}},
	{Display: "Evening Shift", Aliases: []string{"Evening", "Evenings", "Evening Shift", "PM"}},
	{Display: "Rotating", Aliases: []string{"Rotating", "Rotational", "Rotation"}},
	{Display: "Weekends", Aliases: []string{"Weekend", "Weekends", "Weekend Only", "Weekender"}},
}

// Clinical acronyms rendered upper-case by the Title Case fallback.
var acronyms = map[string]bool{
	"ICU":   true,
	"NICU":  true,
	"ER":    true,
	"OR":    true,
	"PACU":  true,
	"PCU":   true,
	"CCU":   true,
	"CVICU": true,
	"MICU":  true,
	"SICU":  true,
	"PICU":  true,
}

var entriesByDimension = map[Dimension][]entry{
	DimSpecialty:  specialtyEntries,
	DimJobType:    jobTypeEntries,
	DimExperience: experienceEntries,
	DimShift:      shiftEntries,
}

// Built once at init; read-only afterward, safe for concurrent requests.
var (
	synonyms   = map[Dimension]map[string]string{}   // folded alias -> canonical display
	aliasIndex = map[Dimension]map[string][]string{} // canonical display -> raw aliases
)

func init() {
	for dim, entries := range entriesByDimension {
		synonyms[dim] = make(map[string]string)
		aliasIndex[dim] = make(map[string][]string)
		for _, e := range entries {
			aliasIndex[dim][e.Display] = e.Aliases
			synonyms[dim][Fold(e.Display)] = e.Display
			for _, alias := range e.Aliases {
				synonyms[dim][Fold(alias)] = e.Display
			}
		}
	}
	initResolver()
	initStates()
}

// Aliases returns the known raw forms for a canonical display name, or nil if
// the value is not in the static taxonomy.
func Aliases(dim Dimension, display string) []string {
	return aliasIndex[dim][display]
}
