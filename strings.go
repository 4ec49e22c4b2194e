// strings deals with string representation of relvars

package relvar

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
)

// headingString returns the attribute names as a comma separated list.
func headingString(r *Relvar) string {
	names := r.Heading()
	strs := make([]string, len(names))
	for i, name := range names {
		strs[i] = string(name)
	}
	return strings.Join(strs, ", ")
}

// String returns the shorthand representation of the relvar, which is just
// its heading.
func (r *Relvar) String() string {
	return "Relation(" + headingString(r) + ")"
}

// GoString renders the relvar as a bordered table of its body, in the
// heading's declaration order.
func (r *Relvar) GoString() string {
	// use a buffer to write to and later turn into a string
	s := new(bytes.Buffer)

	w := new(tabwriter.Writer)
	// \xff is used as an escape delim; see the tabwriter docs
	// align elements to the right as well
	w.Init(s, 1, 1, 1, ' ', tabwriter.StripEscape|tabwriter.AlignRight)

	deg := r.Deg()

	// make a spacer, to be replaced later
	for i := 0; i < deg; i++ {
		fmt.Fprintf(w, "+\t ")
	}
	fmt.Fprintf(w, "\t+\n")

	// heading
	for _, name := range r.Heading() {
		fmt.Fprintf(w, "|\t \xff%s\xff ", name)
	}
	fmt.Fprintf(w, "\t|\n")

	// body
	for tup := range r.Tuples() {
		for _, name := range tup.Names() {
			v, _ := tup.Get(string(name))
			switch f := v.(type) {
			case string:
				fmt.Fprintf(w, "|\t \xff%s\xff ", f)
			case bool:
				fmt.Fprintf(w, "|\t %t ", f)
			case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
				fmt.Fprintf(w, "|\t %d ", f)
			case float32, float64:
				fmt.Fprintf(w, "|\t %g ", f)
			default:
				fmt.Fprintf(w, "|\t \xff%v\xff ", f)
			}
		}
		fmt.Fprintf(w, "\t|\n")
	}

	w.Flush()
	str := s.String()

	// replace the blanks in the spacers with "-"
	lineWidth := strings.Index(str, "\n")
	sep := " " + strings.Replace(str[1:lineWidth], " ", "-", -1)
	return sep + str[lineWidth:lineWidth*2+2] + sep + str[lineWidth*2+1:] + sep
}
