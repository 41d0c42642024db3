// Command rosterprobe inspects a roster CSV's header and prints, as
// JSON, how each label maps onto the canonical schema. Unmapped labels
// come back with a folded identifier form that can be pasted into a job
// file's aliases table.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ferdo-djingga/client-data-cleaner/internal/datasource"
	"github.com/ferdo-djingga/client-data-cleaner/internal/datasource/file"
	"github.com/ferdo-djingga/client-data-cleaner/internal/datasource/httpds"
	"github.com/ferdo-djingga/client-data-cleaner/internal/probe"
	"github.com/ferdo-djingga/client-data-cleaner/internal/schema"
)

func main() {
	input := flag.String("input", "", "roster CSV path or URL")
	flag.Parse()

	if *input == "" {
		if flag.NArg() == 1 {
			*input = flag.Arg(0)
		} else {
			fatalf("usage: rosterprobe -input FILE")
		}
	}

	var src datasource.Source
	if httpds.IsURL(*input) {
		src = httpds.NewRemote(*input, httpds.Config{})
	} else {
		src = file.NewLocal(*input)
	}

	rc, err := src.Open(context.Background())
	if err != nil {
		fatalf("open %s: %v", *input, err)
	}
	defer rc.Close()

	res, err := probe.Probe(rc, schema.Aliases(nil))
	if err != nil {
		fatalf("probe %s: %v", *input, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		fatalf("encode result: %v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
