package gender

// Label is one of the closed set of gender-inference outcomes.
type Label string

const (
	Male         Label = "male"
	Female       Label = "female"
	MostlyMale   Label = "mostly_male"
	MostlyFemale Label = "mostly_female"
	Andy         Label = "andy" // androgynous: about equally common for both
	Unknown      Label = "unknown"
)

// Detector guesses a gender label from a given name. Implementations never
// fail; a name the detector cannot place yields Unknown.
type Detector interface {
	Guess(firstName string) Label
}
