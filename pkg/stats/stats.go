package stats

import (
	"fmt"
	"strings"
)

// CancerType identifies one of the cancer-type death count columns of the
// dataset. The constants follow the column order of the source file.
type CancerType int

const (
	Liver CancerType = iota
	Kidney
	LipAndOral
	TrachealBronchusLung
	Larynx
	Gallbladder
	SkinMelanoma
	Leukemia
	HodgkinLymphoma
	MultipleMyeloma
	OtherNeoplasms
	Breast
	Prostate
	Thyroid
	Stomach
	Bladder
	Uterine
	Ovarian
	Cervical
	BrainCNS
	NonHodgkinLymphoma
	Pancreatic
	Esophageal
	Testicular
	Nasopharynx
	OtherPharynx
	ColonRectum
	NonMelanomaSkin
	Mesothelioma

	NumCancerTypes = int(Mesothelioma) + 1
)

var cancerTypeLabels = [NumCancerTypes]string{
	"Liver",
	"Kidney",
	"Lip and Oral",
	"Tracheal, bronchus, and lung",
	"Larynx",
	"Gallbladder and biliary tract",
	"Malignant skin melanoma",
	"Leukemia",
	"Hodgkin lymphoma",
	"Multiple myeloma",
	"Other neoplasms",
	"Breast",
	"Prostate",
	"Thyroid",
	"Stomach",
	"Bladder",
	"Uterine",
	"Ovarian",
	"Cervical",
	"Brain and central nervous system",
	"Non-Hodgkin lymphoma",
	"Pancreatic cancer",
	"Esophageal cancer",
	"Testicular",
	"Nasopharynx",
	"Other pharynx",
	"Colon and rectum",
	"Non-melanoma skin",
	"Mesothelioma",
}

// Identifier columns preceding the cancer-type columns.
var identifierColumns = [...]string{"Country", "Code", "Year"}

func (t CancerType) String() string {
	if t < 0 || int(t) >= NumCancerTypes {
		return fmt.Sprintf("CancerType(%d)", int(t))
	}
	return cancerTypeLabels[t]
}

// CancerTypes returns all cancer types in column order.
func CancerTypes() []CancerType {
	types := make([]CancerType, NumCancerTypes)
	for i := range types {
		types[i] = CancerType(i)
	}
	return types
}

// Columns returns the canonical column names of a loaded table.
func Columns() []string {
	cols := make([]string, 0, len(identifierColumns)+NumCancerTypes)
	cols = append(cols, identifierColumns[:]...)
	cols = append(cols, cancerTypeLabels[:]...)
	return cols
}

// ParseCancerType resolves a canonical label, ignoring case and surrounding space.
func ParseCancerType(label string) (CancerType, error) {
	label = strings.TrimSpace(label)
	for i, l := range cancerTypeLabels {
		if strings.EqualFold(l, label) {
			return CancerType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown cancer type %q", label)
}

// Deaths holds one death count per cancer type.
type Deaths [NumCancerTypes]float64

// Sum adds up all cancer types.
func (d Deaths) Sum() float64 {
	var sum float64
	for _, v := range d {
		sum += v
	}
	return sum
}

// Record is one (country, year) observation.
type Record struct {
	Country string
	Code    string
	Year    int
	Deaths  Deaths
}

// CohortRecord is a Record with the derived total across all cancer types.
type CohortRecord struct {
	Record
	Total float64
}

// TypeTotal is the death count of one cancer type (or group of types).
type TypeTotal struct {
	Label string
	Value float64
}

// TypeTotals is an ordered label -> total mapping.
type TypeTotals []TypeTotal

// Get returns the total for label.
func (tt TypeTotals) Get(label string) (float64, bool) {
	for _, t := range tt {
		if t.Label == label {
			return t.Value, true
		}
	}
	return 0, false
}

// Sum adds up all totals.
func (tt TypeTotals) Sum() float64 {
	var sum float64
	for _, t := range tt {
		sum += t.Value
	}
	return sum
}

// ProportionPair is one country's split between two cancer types.
type ProportionPair struct {
	Country string
	ValueA  float64
	ValueB  float64
	ShareA  float64
	ShareB  float64

	// Vertical midpoints of the two stacked segments, in share units.
	LabelYA float64
	LabelYB float64
}

// GroupedDistribution holds major cancer types plus a trailing "Others" bucket.
// Values and Labels are parallel.
type GroupedDistribution struct {
	Values []float64
	Labels []string
}

// Sum adds up all values.
func (g GroupedDistribution) Sum() float64 {
	var sum float64
	for _, v := range g.Values {
		sum += v
	}
	return sum
}

// Len returns the number of entries.
func (g GroupedDistribution) Len() int {
	return len(g.Values)
}
