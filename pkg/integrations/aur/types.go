package aur

// RPCVersion is the AUR RPC interface version the client speaks.
const RPCVersion = 5

// Response type tags sent by the RPC.
const (
	TypeMultiInfo = "multiinfo"
	TypeError     = "error"
)

// PackageInfo is one result entry of an info query.
// Fields not needed for dependency resolution are left out.
type PackageInfo struct {
	Name        string   `json:"Name"`
	PackageBase string   `json:"PackageBase,omitempty"`
	Version     string   `json:"Version,omitempty"`
	Description string   `json:"Description,omitempty"`
	URL         string   `json:"URL,omitempty"`
	Depends     []string `json:"Depends,omitempty"`
	MakeDepends []string `json:"MakeDepends,omitempty"`
}

// AllDepends returns Depends followed by MakeDepends.
// Entries are returned verbatim, version constraints included.
func (p PackageInfo) AllDepends() []string {
	deps := make([]string, 0, len(p.Depends)+len(p.MakeDepends))
	deps = append(deps, p.Depends...)
	return append(deps, p.MakeDepends...)
}

// InfoResponse is the envelope of every RPC answer.
type InfoResponse struct {
	Version     int           `json:"version"`
	Type        string        `json:"type"`
	ResultCount int           `json:"resultcount"`
	Results     []PackageInfo `json:"results"`
	Error       string        `json:"error,omitempty"`
}
