package domain

// MixupTable maps expected token to wrong token to occurrence count
type MixupTable map[string]map[string]int

// MixupRow is one flattened cell of a MixupTable
type MixupRow struct {
	Expected string `json:"expected"`
	Wrong    string `json:"wrong"`
	Count    int    `json:"count"`
}

// Clone returns a deep copy of the table
func (t MixupTable) Clone() MixupTable {
	out := make(MixupTable, len(t))
	for expected, wrongs := range t {
		inner := make(map[string]int, len(wrongs))
		for wrong, n := range wrongs {
			inner[wrong] = n
		}
		out[expected] = inner
	}
	return out
}
