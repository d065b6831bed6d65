// Package exports lists the accessors that are exposed to host environments.
package exports

import (
	"github.com/maja42/packer/pair"
	"github.com/maja42/packer/single"
)

// Export is an accessor exposed under a host-visible name.
type Export struct {
	Name string        // Name as seen by the host environment
	Get  func() []byte // Returns an owned copy of the payload
}

// Table is a list of exports making up a host-facing artifact.
type Table []Export

// Single exposes the payload of the single-payload variant.
var Single = Table{
	{Name: "getData", Get: single.GetData},
}

// Pair exposes both payloads of the two-payload variant.
var Pair = Table{
	{Name: "getData", Get: pair.GetData},
	{Name: "getData2", Get: pair.GetData2},
}

// Names returns the host-visible names of all exports.
func (t Table) Names() []string {
	if len(t) == 0 {
		return nil
	}
	names := make([]string, len(t))
	for i, e := range t {
		names[i] = e.Name
	}
	return names
}
