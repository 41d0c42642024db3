package transformer

import "github.com/ferdo-djingga/client-data-cleaner/pkg/records"

// Transformer consumes one record set and produces the next. Stages
// must not retain or mutate the input after returning; ownership of the
// table transfers stage to stage.
type Transformer interface {
	Apply(records.Table) records.Table
}

// Chain is an ordered list of transformers.
type Chain []Transformer

func (c Chain) Apply(in records.Table) records.Table {
	out := in
	for _, t := range c {
		out = t.Apply(out)
	}
	return out
}
