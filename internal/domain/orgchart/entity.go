package orgchart

// SyntheticRootID identifies the virtual organization node inserted when the
// manager graph has more than one top-level employee.
const SyntheticRootID = "virtual_root"

// Node is one laid-out org chart node. Synthetic is true only for the
// inserted organization root.
type Node struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Department string  `json:"department,omitempty"`
	Synthetic  bool    `json:"synthetic,omitempty"`
	Children   []*Node `json:"children,omitempty"`
}
