package cli

import (
	"fmt"
	"io"
)

const greeting = "Hi, this program processes a file containing a list of employees in JSON format. Call the -help command to get help."

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Usage: jsonconsole [global flags] <command> [Key:Value ...]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "The employee store file defaults to employees.json in the working directory.")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		_, _ = fmt.Fprintf(w, "  %s\n      %s\n", c.usage, c.short)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Parameters:")
	_, _ = fmt.Fprintln(w, "  Id         integer")
	_, _ = fmt.Fprintln(w, "  FirstName  string")
	_, _ = fmt.Fprintln(w, "  LastName   string")
	_, _ = fmt.Fprintln(w, "  Salary     decimal, delimiter '.'")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Examples:")
	_, _ = fmt.Fprintln(w, "  jsonconsole -add FirstName:John LastName:Doe Salary:100.50")
	_, _ = fmt.Fprintln(w, "  jsonconsole -update Id:1 FirstName:James")
	_, _ = fmt.Fprintln(w, "  jsonconsole --output json -getall")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Global flags:")
	_, _ = fmt.Fprint(w, globalFlagSet(&globalFlags{}).FlagUsages())
}
