package partition

// Label returns the alphabetic name of the num-th species (num ≥ 0):
// 0 → "A", 25 → "Z", 26 → "BA". The digits are base 26 with A as zero, so
// the result is left-padded with 'A' up to width characters; width ≤ 0
// disables padding.
func Label(num, width int) string {
	if num < 0 {
		num = 0
	}
	var buf []byte
	for {
		buf = append(buf, byte('A'+num%26))
		num /= 26
		if num == 0 {
			break
		}
	}
	for len(buf) < width {
		buf = append(buf, 'A')
	}
	// digits were produced least significant first
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Named labels the species common to all of ms (see Communes). Labels share
// one width, that of the last label, so they sort in species order.
func Named(ms ...Grouping) []NamedBlock {
	comm := Communes(ms...)
	if len(comm) == 0 {
		return nil
	}
	width := len(Label(len(comm)-1, 0))
	out := make([]NamedBlock, len(comm))
	for i, b := range comm {
		out[i] = NamedBlock{Label: Label(i, width), Block: b}
	}
	return out
}
