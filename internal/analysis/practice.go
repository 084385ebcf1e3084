package analysis

// Crop management practice vocabulary.
const (
	PracticeCropRotation   = "crop-rot"
	PracticeNitrogenFixing = "n-fix"
	PracticeResidueBurning = "residue-burning"
	PracticeCoverCrop      = "cover-crop"
	PracticeGreenManure    = "green-manure"
	PracticeImprovedFallow = "improved-fallow"
)

// Practices returns the controlled vocabulary for crop management practices.
func Practices() []string {
	return []string{
		PracticeCropRotation,
		PracticeNitrogenFixing,
		PracticeResidueBurning,
		PracticeCoverCrop,
		PracticeGreenManure,
		PracticeImprovedFallow,
	}
}

// CarbonInputPractices are the practices that raise carbon input to soil.
func CarbonInputPractices() []string {
	return []string{PracticeCoverCrop, PracticeGreenManure, PracticeImprovedFallow}
}

// IsPractice reports whether slug belongs to the vocabulary.
func IsPractice(slug string) bool {
	for _, p := range Practices() {
		if p == slug {
			return true
		}
	}
	return false
}
