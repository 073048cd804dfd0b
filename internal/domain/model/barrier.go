package model

// minTugWeight is the minimum visible weight for either side of the
// tug-of-war rendering so a side never fully collapses at zero.
const minTugWeight = 0.5

// BarrierStats holds the two opposing forces of the barrier balance.
// Load and Repair are non-negative.
type BarrierStats struct {
	Load   float64 `json:"load"`
	Repair float64 `json:"repair"`
}

// TugOfWarWeights returns the render weights for the load and repair sides.
// Each side is clamped to a minimum of 0.5 even when its true value is 0.
func (s BarrierStats) TugOfWarWeights() (load, repair float64) {
	load = s.Load
	if load < minTugWeight {
		load = minTugWeight
	}
	repair = s.Repair
	if repair < minTugWeight {
		repair = minTugWeight
	}
	return load, repair
}

// Offender is an ingredient group working against the barrier.
type Offender struct {
	Name    string   `json:"name"`
	Actives []string `json:"actives"`
}

// Defender is an ingredient group supporting the barrier.
type Defender struct {
	Name     string   `json:"name"`
	Builders []string `json:"builders"`
}

// ClinicalReport groups the offending and defending ingredient sets.
type ClinicalReport struct {
	Offenders []Offender `json:"offenders"`
	Defenders []Defender `json:"defenders"`
}

// Contraindication flags an ingredient conflicting with the user's profile.
type Contraindication struct {
	Name             string `json:"name"`
	Contraindication string `json:"contraindication"`
}

// BarrierReport is the externally computed chemical scoring result.
// This package consumes it for the display contract only; how the score is
// derived chemically is the backend's concern.
type BarrierReport struct {
	Score             int                `json:"score"`
	Status            string             `json:"status"`
	Stats             BarrierStats       `json:"stats"`
	ClinicalReport    ClinicalReport     `json:"clinicalReport"`
	Contraindications []Contraindication `json:"contraindications"`
}
