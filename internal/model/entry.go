package model

// DimensionCount is the number of PETS scoring dimensions carried by every L2 entry
const DimensionCount = 10

// Dimension describes one PETS scoring dimension
type Dimension struct {
	Key   string // JSON key in pets_scores
	Label string // Column header used in the source workbook
}

// Dimensions lists the PETS dimensions in output order.
// The order here must match PetsScores.Slots.
var Dimensions = [DimensionCount]Dimension{
	{Key: "intelligent_driving", Label: "智能驾驶"},
	{Key: "intelligent_cockpit", Label: "智能座舱"},
	{Key: "safety", Label: "安全体验"},
	{Key: "exterior_design", Label: "外观设计及车身外部功能件"},
	{Key: "interior_design", Label: "内饰设计"},
	{Key: "driving_experience", Label: "驾驶体验"},
	{Key: "riding_experience", Label: "乘坐体验"},
	{Key: "space", Label: "空间体验"},
	{Key: "cabin_comfort", Label: "座舱环境与舒适"},
	{Key: "range_charging", Label: "续航 & 补能体验"},
}

// PetsScores holds the ten PETS scores of one L2 entry.
// A struct (not a map) keeps the JSON key order stable across runs.
type PetsScores struct {
	IntelligentDriving float64 `json:"intelligent_driving"`
	IntelligentCockpit float64 `json:"intelligent_cockpit"`
	Safety             float64 `json:"safety"`
	ExteriorDesign     float64 `json:"exterior_design"`
	InteriorDesign     float64 `json:"interior_design"`
	DrivingExperience  float64 `json:"driving_experience"`
	RidingExperience   float64 `json:"riding_experience"`
	Space              float64 `json:"space"`
	CabinComfort       float64 `json:"cabin_comfort"`
	RangeCharging      float64 `json:"range_charging"`
}

// Slots returns pointers to every score in Dimensions order
func (p *PetsScores) Slots() [DimensionCount]*float64 {
	return [DimensionCount]*float64{
		&p.IntelligentDriving,
		&p.IntelligentCockpit,
		&p.Safety,
		&p.ExteriorDesign,
		&p.InteriorDesign,
		&p.DrivingExperience,
		&p.RidingExperience,
		&p.Space,
		&p.CabinComfort,
		&p.RangeCharging,
	}
}

// Get returns the score for a dimension key and whether the key is known
func (p *PetsScores) Get(key string) (float64, bool) {
	slots := p.Slots()
	for i, d := range Dimensions {
		if d.Key == key {
			return *slots[i], true
		}
	}
	return 0, false
}

// Set stores the score for a dimension key. Unknown keys are ignored and reported as false.
func (p *PetsScores) Set(key string, value float64) bool {
	slots := p.Slots()
	for i, d := range Dimensions {
		if d.Key == key {
			*slots[i] = value
			return true
		}
	}
	return false
}

// ScoreValue pairs a dimension key with its score
type ScoreValue struct {
	Key   string
	Value float64
}

// NonZero returns the positive scores in Dimensions order
func (p *PetsScores) NonZero() []ScoreValue {
	var out []ScoreValue
	slots := p.Slots()
	for i, d := range Dimensions {
		if *slots[i] > 0 {
			out = append(out, ScoreValue{Key: d.Key, Value: *slots[i]})
		}
	}
	return out
}

// Entry is one L2 row of a vehicle's UVA matrix, with its L1 context filled in
type Entry struct {
	L1Name     string     `json:"l1_name"`
	L1Category string     `json:"l1_category"`
	L1Weight   float64    `json:"l1_weight"`
	L2Name     string     `json:"l2_name"`
	L2Weight   float64    `json:"l2_weight"`
	PetsScores PetsScores `json:"pets_scores"`
}

// Document is the parsed matrix of a single vehicle sheet
type Document struct {
	VehicleID string  // Output key, e.g. "sedanx"
	SheetName string  // Source sheet, e.g. "SedanX 数据底表"
	Entries   []Entry // Source row order
}

// L1Names returns the distinct L1 names in first-seen order
func (d *Document) L1Names() []string {
	return distinct(d.Entries, func(e Entry) string { return e.L1Name })
}

// Categories returns the distinct L1 categories in first-seen order
func (d *Document) Categories() []string {
	return distinct(d.Entries, func(e Entry) string { return e.L1Category })
}

func distinct(entries []Entry, key func(Entry) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		k := key(e)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
