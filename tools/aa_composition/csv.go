package aa_composition

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteFrequencyCSV writes one Code,Name,Count,Percent row per residue present.
func WriteFrequencyCSV(path string, c Composition) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write([]string{"Code", "Name", "Count", "Percent"}); err != nil {
		return err
	}
	for _, aa := range c.Codes() {
		name, _ := ResidueName(aa)
		row := []string{
			string(aa),
			name,
			strconv.Itoa(c.Frequencies[aa]),
			fmt.Sprintf("%.2f", Percent(c, aa)),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
