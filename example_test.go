package relvar_test

import (
	"fmt"
	"sort"

	"github.com/othiym23/relvar"
	"github.com/othiym23/relvar/checks"
)

// ExampleRelvar builds the parts relvar from Date's suppliers & parts
// database and shows candidates passing through the validation pipeline.
func ExampleRelvar() {
	readW, writeW := checks.SerializeFixnum(1)
	parts, err := relvar.New([]relvar.AttributeDef{
		{Name: "PNO", Type: checks.PNO},
		{Name: "PNAME", Type: checks.String},
		{Name: "COLOR", Type: checks.Color, Default: "Green"},
		{Name: "WEIGHT", Type: checks.Fixnum(1), Read: readW, Write: writeW},
		{Name: "CITY", Type: checks.String},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	// candidate keys are matched case-insensitively, and the weight arrives
	// in its encoded string form
	err = parts.Add(map[string]any{
		"pno": "P1", "PName": "Nut", "Color": "Red", "weight": "12.0", "CITY": "London",
	})
	fmt.Println(err)

	// no COLOR, so the declared default applies
	err = parts.Add(map[string]any{
		"PNO": "P2", "PNAME": "Bolt", "WEIGHT": "17.0", "CITY": "Paris",
	})
	fmt.Println(err)

	// a part without a number is not admissible
	err = parts.Add(map[string]any{
		"PNAME": "Screw", "WEIGHT": "17.0", "CITY": "Oslo",
	})
	fmt.Println(err)

	fmt.Println(parts, "with cardinality", parts.Card())

	var rows []string
	for tup := range parts.Tuples() {
		ext, _ := tup.External()
		rows = append(rows, fmt.Sprintf("%v %v %v %v %v",
			ext["PNO"], ext["PNAME"], ext["COLOR"], ext["WEIGHT"], ext["CITY"]))
	}
	sort.Strings(rows)
	for _, row := range rows {
		fmt.Println(row)
	}

	// Output:
	// <nil>
	// <nil>
	// relvar: candidate tuple is missing attribute "PNO"
	// Relation(PNO, PNAME, COLOR, WEIGHT, CITY) with cardinality 2
	// P1 Nut Red 12.0 London
	// P2 Bolt Green 17.0 Paris
}
