package gender

import (
	_ "embed"
	"strings"
)

//go:embed names.tsv
var namesTSV string

// DictionaryDetector is the default Detector, backed by an embedded
// name-frequency table in "name<TAB>label" format. Matching is
// case-insensitive.
type DictionaryDetector struct {
	names map[string]Label
}

func NewDictionaryDetector() *DictionaryDetector {
	names := make(map[string]Label)

	for _, line := range strings.Split(namesTSV, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, label, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		names[strings.ToLower(name)] = Label(label)
	}

	return &DictionaryDetector{names: names}
}

func (d *DictionaryDetector) Guess(firstName string) Label {
	if label, ok := d.names[strings.ToLower(firstName)]; ok {
		return label
	}
	return Unknown
}

// Size reports how many names the dictionary carries.
func (d *DictionaryDetector) Size() int {
	return len(d.names)
}
