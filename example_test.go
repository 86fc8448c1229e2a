package cmdline

import (
	"fmt"
)

func Example() {
	verbose := NewBoolOption('v', "verbose", "enable verbose output")
	output := NewPathOption('o', "output", "file to write results to", "FILE").
		WithDefault("results.txt")

	fmt.Println(verbose.FormatShortName(), verbose.FormatLongName())
	fmt.Println(output.FormatShortName(), output.FormatLongName())

	raw := "out//results.txt"
	if err := output.Validate(raw); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(output.Convert(raw))
	// Output:
	// -v --verbose
	// -o FILE --output=FILE
	// out/results.txt
}

func ExamplePathOption_Validate() {
	output := NewPathOption('o', "output", "file to write results to", "FILE")

	err := output.Validate("")
	fmt.Println(err)
	// Output:
	// invalid value "" for option --output: path cannot be empty
}
