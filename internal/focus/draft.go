package focus

import "unicode"

// Draft is the in-progress title typed in the add form.
type Draft struct {
	runes []rune
}

// Insert appends graphic runes, spaces included, and drops control runes.
func (d *Draft) Insert(rs ...rune) {
	for _, r := range rs {
		if unicode.IsGraphic(r) {
			d.runes = append(d.runes, r)
		}
	}
}

// Backspace removes the last character; no-op when empty.
func (d *Draft) Backspace() {
	if len(d.runes) > 0 {
		d.runes = d.runes[:len(d.runes)-1]
	}
}

func (d *Draft) String() string { return string(d.runes) }

func (d *Draft) Len() int { return len(d.runes) }
